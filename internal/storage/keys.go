// Package storage is the object-store side of the warranty system: reading
// template assets, writing certificates, and presigning downloads.
package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/warrantycert/internal/timex"
)

// CertificateKey is the object key for a certificate generated at t:
// {productNumber}_{YYYY年MM月DD日HH時MM分SS秒}.pdf in UTC+9.
func CertificateKey(productNumber string, t time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", productNumber, timex.FormatStamp(t))
}

// ObjectURL is the virtual-hosted-style URL recorded on the warranty record.
func ObjectURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// KeyFromURL returns the trailing path segment of an object URL, which is how
// the retrieval function recovers the key.
func KeyFromURL(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
