package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/warrantycert/internal/flagx"
)

// parseFlags overlays selected fields from command-line flags. Only the
// flags listed here are parsed; everything else in os.Args is left for
// other flag sets (see flagx.FilterArgs).
//
//	-g string   AWS region
//	-t string   record table name
//	-b string   certificate bucket
//	-a string   assets bucket
//	-e string   S3 base endpoint override
//	-l string   log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-g", "-t", "-b", "-a", "-e", "-l"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	fs.StringVar(&config.Region, "g", config.Region, "AWS region")
	fs.StringVar(&config.TableName, "t", config.TableName, "warranty record table")
	fs.StringVar(&config.CertificateBucket, "b", config.CertificateBucket, "certificate bucket")
	fs.StringVar(&config.AssetsBucket, "a", config.AssetsBucket, "template/font bucket")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
