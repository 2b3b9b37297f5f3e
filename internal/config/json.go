package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/warrantycert/internal/flagx"
	"github.com/dmitrijs2005/warrantycert/internal/timex"
)

// JsonConfig mirrors Config for file decoding. Empty fields leave the current
// value untouched so a file may override only a few settings.
type JsonConfig struct {
	Region             string         `json:"region"`
	TableName          string         `json:"table_name"`
	CertificateBucket  string         `json:"certificate_bucket"`
	AssetsBucket       string         `json:"assets_bucket"`
	TemplateKey        string         `json:"template_key"`
	FontKey            string         `json:"font_key"`
	PresignExpiry      timex.Duration `json:"presign_expiry"`
	AllowedOrigin      string         `json:"allowed_origin"`
	NotifySource       string         `json:"notify_source"`
	NotifyRecipients   []string       `json:"notify_recipients"`
	SpreadsheetID      string         `json:"spreadsheet_id"`
	SheetName          string         `json:"sheet_name"`
	ServiceAccountFile string         `json:"service_account_file"`
	RetrievalEndpoint  string         `json:"retrieval_endpoint"`
	S3BaseEndpoint     string         `json:"s3_base_endpoint"`
	DynamoDBEndpoint   string         `json:"dynamodb_endpoint"`
	LogLevel           string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config. The owner
// password is deliberately not readable from a file. An unreadable or
// malformed file panics: the function cannot start with a half-read config.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.Region, c.Region)
	setString(&config.TableName, c.TableName)
	setString(&config.CertificateBucket, c.CertificateBucket)
	setString(&config.AssetsBucket, c.AssetsBucket)
	setString(&config.TemplateKey, c.TemplateKey)
	setString(&config.FontKey, c.FontKey)
	setString(&config.AllowedOrigin, c.AllowedOrigin)
	setString(&config.NotifySource, c.NotifySource)
	setString(&config.SpreadsheetID, c.SpreadsheetID)
	setString(&config.SheetName, c.SheetName)
	setString(&config.ServiceAccountFile, c.ServiceAccountFile)
	setString(&config.RetrievalEndpoint, c.RetrievalEndpoint)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.DynamoDBEndpoint, c.DynamoDBEndpoint)
	setString(&config.LogLevel, c.LogLevel)

	if c.PresignExpiry.Duration > 0 {
		config.PresignExpiry = c.PresignExpiry.Duration
	}
	if len(c.NotifyRecipients) > 0 {
		config.NotifyRecipients = c.NotifyRecipients
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
