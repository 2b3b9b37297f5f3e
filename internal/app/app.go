// Package app builds the AWS clients and services behind each function and
// hands back ready Lambda handlers.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/dmitrijs2005/warrantycert/internal/buildinfo"
	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/config"
	"github.com/dmitrijs2005/warrantycert/internal/handlers"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
	"github.com/dmitrijs2005/warrantycert/internal/mailer"
	"github.com/dmitrijs2005/warrantycert/internal/repositories/warranties"
	"github.com/dmitrijs2005/warrantycert/internal/services"
	"github.com/dmitrijs2005/warrantycert/internal/sheets"
	"github.com/dmitrijs2005/warrantycert/internal/storage"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig
	newDynamoDBClient    = dynamodb.NewFromConfig
	newSESClient         = sesv2.NewFromConfig
	newSheetsService     = sheets.NewService
)

type App struct {
	config *config.Config
	logger logging.Logger
	aws    aws.Config
}

// NewApp validates the shared settings and loads the AWS configuration. A
// static key pair, when configured, replaces the default credential chain.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	if err := c.Validate(false); err != nil {
		return nil, err
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(c.Region)}
	if c.StaticAccessKey != "" && c.StaticSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.StaticAccessKey, c.StaticSecretKey, "")))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	logger.Info(ctx, "function starting", buildinfo.Attrs()...)

	return &App{config: c, logger: logger, aws: awsCfg}, nil
}

func (a *App) Logger() logging.Logger { return a.logger }

func (a *App) records() *warranties.DynamoDBRepository {
	client := newDynamoDBClient(a.aws, func(o *dynamodb.Options) {
		if a.config.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(a.config.DynamoDBEndpoint)
		}
	})
	return warranties.NewDynamoDBRepository(client, a.config.TableName)
}

func (a *App) objects() *storage.S3Store {
	return storage.NewS3StoreFromConfig(a.aws, a.config.S3BaseEndpoint)
}

// GenerateHandler refuses to start without an owner password.
func (a *App) GenerateHandler() (*handlers.GenerateHandler, error) {
	if err := a.config.Validate(true); err != nil {
		return nil, err
	}
	svc := services.NewGeneratorService(a.objects(), a.records(), a.config, a.logger)
	return handlers.NewGenerateHandler(svc, a.logger), nil
}

func (a *App) IntakeHandler() (*handlers.IntakeHandler, error) {
	svc, err := services.NewIntakeService(a.records(), a.config, a.logger)
	if err != nil {
		return nil, err
	}
	return handlers.NewIntakeHandler(svc, a.config.AllowedOrigin, a.logger), nil
}

func (a *App) RetrieveHandler() *handlers.RetrieveHandler {
	svc := services.NewRetrievalService(a.records(), a.objects(), a.config, a.logger)
	return handlers.NewRetrieveHandler(svc, a.config.AllowedOrigin, a.logger)
}

func (a *App) NotifyHandler() (*handlers.CountingHandler, error) {
	if a.config.NotifySource == "" || len(a.config.NotifyRecipients) == 0 {
		return nil, fmt.Errorf("%w: NOTIFY_SOURCE and NOTIFY_RECIPIENTS", common.ErrMissingSetting)
	}
	m := mailer.NewSESMailer(newSESClient(a.aws))
	svc := services.NewNotifyService(m, a.config, a.logger)
	return handlers.NewCountingHandler("notify", svc, a.logger), nil
}

func (a *App) MirrorHandler(ctx context.Context) (*handlers.CountingHandler, error) {
	if a.config.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: SPREADSHEET_ID", common.ErrMissingSetting)
	}
	gs, err := newSheetsService(ctx, a.config.ServiceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	appender := sheets.NewAppender(gs, a.config.SpreadsheetID, a.config.SheetName)
	svc := services.NewMirrorService(appender, a.config, a.logger)
	return handlers.NewCountingHandler("mirror", svc, a.logger), nil
}
