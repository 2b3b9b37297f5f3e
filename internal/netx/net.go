// Package netx moves objects over presigned S3 URLs with a plain HTTP client,
// for tools that hold a link but no AWS credentials.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// IsURL reports whether src should be fetched rather than read from disk.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "https://") || strings.HasPrefix(src, "http://")
}

// Download GETs url and returns the body. Anything but 200 is an error that
// carries the response body, which for S3 is an XML error document.
func Download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(body))
	}
	return body, nil
}
