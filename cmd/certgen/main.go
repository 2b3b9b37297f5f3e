// Command certgen renders one encrypted warranty certificate from local files.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/warrantycert/internal/buildinfo"
	"github.com/dmitrijs2005/warrantycert/internal/certgen"
	"github.com/dmitrijs2005/warrantycert/internal/config"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()

	opts, err := certgen.ParseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	pw, err := certgen.GetOwnerPassword(cfg.OwnerPassword, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	g := certgen.NewGenerator(logging.NewJSONLogger(os.Stderr, cfg.LogLevel))
	path, err := g.Run(ctx, opts, pw)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(path)
}
