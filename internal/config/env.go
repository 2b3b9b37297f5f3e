package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/warrantycert/internal/flagx"
)

// parseEnv overlays values from the environment. When -env names a dotenv
// file it is loaded first; godotenv never overrides variables that are
// already set, so the real environment keeps precedence.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	}

	envString(&config.Region, "AWS_REGION")
	envString(&config.TableName, "WARRANTY_TABLE")
	envString(&config.CertificateBucket, "CERTIFICATE_BUCKET")
	envString(&config.AssetsBucket, "ASSETS_BUCKET")
	envString(&config.TemplateKey, "TEMPLATE_KEY")
	envString(&config.FontKey, "FONT_KEY")
	envString(&config.OwnerPassword, "OWNER_PASSWORD")
	envString(&config.AllowedOrigin, "ALLOWED_ORIGIN")
	envString(&config.NotifySource, "NOTIFY_SOURCE")
	envString(&config.SpreadsheetID, "SPREADSHEET_ID")
	envString(&config.SheetName, "SHEET_NAME")
	envString(&config.ServiceAccountFile, "SERVICE_ACCOUNT_FILE")
	envString(&config.RetrievalEndpoint, "RETRIEVAL_ENDPOINT")
	envString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	envString(&config.DynamoDBEndpoint, "DYNAMODB_ENDPOINT")
	envString(&config.StaticAccessKey, "STATIC_ACCESS_KEY_ID")
	envString(&config.StaticSecretKey, "STATIC_SECRET_ACCESS_KEY")
	envString(&config.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("PRESIGN_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.PresignExpiry = d
	}

	if v := os.Getenv("NOTIFY_RECIPIENTS"); v != "" {
		config.NotifyRecipients = splitList(v)
	}
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
