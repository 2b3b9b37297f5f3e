// Command notify mails staff when a certificate has been attached to a record.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/dmitrijs2005/warrantycert/internal/app"
	"github.com/dmitrijs2005/warrantycert/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	h, err := a.NotifyHandler()
	if err != nil {
		log.Fatalf("%v", err)
	}

	lambda.Start(h.Handle)
}
