package app

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/config"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.LogLevel = "error"
	return c
}

func stubAWS(t *testing.T, check func(lo awsconfig.LoadOptions)) {
	t.Helper()
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		if check != nil {
			check(lo)
		}
		return aws.Config{Region: lo.Region}, nil
	}
}

func TestNewApp_RegionAndDefaultCredentials(t *testing.T) {
	stubAWS(t, func(lo awsconfig.LoadOptions) {
		assert.Equal(t, "ap-northeast-1", lo.Region)
		assert.Nil(t, lo.Credentials)
	})

	a, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)
	assert.NotNil(t, a.Logger())
}

func TestNewApp_StaticCredentials(t *testing.T) {
	c := testConfig()
	c.StaticAccessKey, c.StaticSecretKey = "local", "local-secret"

	stubAWS(t, func(lo awsconfig.LoadOptions) {
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "local", creds.AccessKeyID)
		assert.Equal(t, "local-secret", creds.SecretAccessKey)
	})

	_, err := NewApp(context.Background(), c)
	require.NoError(t, err)
}

func TestNewApp_Errors(t *testing.T) {
	c := testConfig()
	c.TableName = ""
	_, err := NewApp(context.Background(), c)
	assert.ErrorIs(t, err, common.ErrMissingSetting)

	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no profile")
	}
	_, err = NewApp(context.Background(), testConfig())
	assert.ErrorContains(t, err, "no profile")
}

func TestGenerateHandler_RequiresOwnerPassword(t *testing.T) {
	stubAWS(t, nil)
	c := testConfig()

	a, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	_, err = a.GenerateHandler()
	assert.ErrorIs(t, err, common.ErrMissingOwnerPassword)

	c.OwnerPassword = "pw"
	h, err := a.GenerateHandler()
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestRecords_AppliesDynamoDBEndpoint(t *testing.T) {
	stubAWS(t, nil)
	c := testConfig()
	c.DynamoDBEndpoint = "http://127.0.0.1:8000"

	orig := newDynamoDBClient
	t.Cleanup(func() { newDynamoDBClient = orig })

	var endpoint string
	newDynamoDBClient = func(cfg aws.Config, optFns ...func(*dynamodb.Options)) *dynamodb.Client {
		var o dynamodb.Options
		for _, fn := range optFns {
			fn(&o)
		}
		if o.BaseEndpoint != nil {
			endpoint = *o.BaseEndpoint
		}
		return &dynamodb.Client{}
	}

	a, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	ih, err := a.IntakeHandler()
	require.NoError(t, err)
	assert.NotNil(t, ih)
	assert.Equal(t, "http://127.0.0.1:8000", endpoint)

	assert.NotNil(t, a.RetrieveHandler())
}

func TestNotifyHandler(t *testing.T) {
	stubAWS(t, nil)
	c := testConfig()
	a, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	_, err = a.NotifyHandler()
	assert.ErrorIs(t, err, common.ErrMissingSetting)

	c.NotifySource = "warranty@example.com"
	c.NotifyRecipients = []string{"staff@example.com"}
	h, err := a.NotifyHandler()
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestMirrorHandler(t *testing.T) {
	stubAWS(t, nil)
	c := testConfig()
	a, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	_, err = a.MirrorHandler(context.Background())
	assert.ErrorIs(t, err, common.ErrMissingSetting)

	orig := newSheetsService
	t.Cleanup(func() { newSheetsService = orig })

	c.SpreadsheetID = "sheet-1"
	newSheetsService = func(ctx context.Context, keyFile string, opts ...option.ClientOption) (*gsheets.Service, error) {
		return nil, errors.New("bad key file")
	}
	_, err = a.MirrorHandler(context.Background())
	assert.ErrorContains(t, err, "bad key file")

	newSheetsService = func(ctx context.Context, keyFile string, opts ...option.ClientOption) (*gsheets.Service, error) {
		assert.Equal(t, "service-account.json", keyFile)
		return &gsheets.Service{}, nil
	}
	h, err := a.MirrorHandler(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, h)
}
