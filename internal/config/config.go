// Package config loads settings for the warranty functions.
//
// Values are layered: built-in defaults, then an optional JSON file (-c or
// -config), then an optional dotenv file (-env) together with the process
// environment, and finally command-line flags. Lambda deployments normally
// use the environment only.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/warrantycert/internal/common"
)

// Config holds runtime settings shared by every function binary.
//
// OwnerPassword protects generated certificates and is only required by the
// generate function and the certgen CLI; see Validate. The static key pair
// is for local S3/DynamoDB emulators; in Lambda the execution role is used.
type Config struct {
	Region             string
	TableName          string
	CertificateBucket  string
	AssetsBucket       string
	TemplateKey        string
	FontKey            string
	OwnerPassword      string
	PresignExpiry      time.Duration
	AllowedOrigin      string
	NotifySource       string
	NotifyRecipients   []string
	SpreadsheetID      string
	SheetName          string
	ServiceAccountFile string
	RetrievalEndpoint  string
	S3BaseEndpoint     string
	DynamoDBEndpoint   string
	StaticAccessKey    string
	StaticSecretKey    string
	LogLevel           string
}

// LoadDefaults populates Config with the production resource names.
func (c *Config) LoadDefaults() {
	c.Region = "ap-northeast-1"
	c.TableName = "WarrantyTable"
	c.CertificateBucket = "warranty-pdf-bucket"
	c.AssetsBucket = "warranty-assets-bucket"
	c.TemplateKey = "format/format.pdf"
	c.FontKey = "font/NotoSansJP-Light.ttf"
	c.PresignExpiry = time.Hour
	c.AllowedOrigin = "*"
	c.SheetName = "Warranty"
	c.ServiceAccountFile = "service-account.json"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults and then every overlay.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports configuration faults. An empty owner password is never
// silently accepted when the caller produces certificates.
func (c *Config) Validate(requireOwnerPassword bool) error {
	if requireOwnerPassword && c.OwnerPassword == "" {
		return common.ErrMissingOwnerPassword
	}
	for name, v := range map[string]string{
		"region":             c.Region,
		"table name":         c.TableName,
		"certificate bucket": c.CertificateBucket,
	} {
		if v == "" {
			return fmt.Errorf("%w: %s", common.ErrMissingSetting, name)
		}
	}
	if c.PresignExpiry <= 0 {
		return fmt.Errorf("%w: presign expiry", common.ErrMissingSetting)
	}
	return nil
}
