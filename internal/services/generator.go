package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/warrantycert/internal/certificate"
	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/config"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
	"github.com/dmitrijs2005/warrantycert/internal/models"
	"github.com/dmitrijs2005/warrantycert/internal/repositories/warranties"
	"github.com/dmitrijs2005/warrantycert/internal/storage"
)

// certificateFontFamily is the name the template font is registered under
// inside each rendered table document.
const certificateFontFamily = "JapaneseFont"

// ObjectStore reads assets and writes certificates.
type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	PutPDF(ctx context.Context, bucket, key string, body []byte) error
}

// GeneratorService turns inserted warranty records into stored, encrypted
// certificates and records their URL.
type GeneratorService struct {
	objects ObjectStore
	records warranties.Repository
	config  *config.Config
	logger  logging.Logger
	now     func() time.Time
}

func NewGeneratorService(objects ObjectStore, records warranties.Repository, cfg *config.Config, logger logging.Logger) *GeneratorService {
	return &GeneratorService{
		objects: objects,
		records: records,
		config:  cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// HandleChanges processes a change batch in order. Only inserts produce a
// certificate. The first failure stops the batch and is returned, leaving
// later records unprocessed.
func (s *GeneratorService) HandleChanges(ctx context.Context, changes []models.Change) error {
	var assets *certificate.Assets

	for i, c := range changes {
		if !c.IsInsert() {
			s.logger.Debug(ctx, "skipping change", "index", i, "kind", c.Kind)
			continue
		}
		if c.NewImage == nil {
			return fmt.Errorf("%w: insert without new image", common.ErrInvalidRecord)
		}

		if assets == nil {
			a, err := s.LoadAssets(ctx)
			if err != nil {
				return err
			}
			assets = &a
		}

		if _, err := s.Generate(ctx, *assets, c.NewImage); err != nil {
			return err
		}
	}

	return nil
}

// LoadAssets fetches the template and the font from the assets bucket.
func (s *GeneratorService) LoadAssets(ctx context.Context) (certificate.Assets, error) {
	bucket := s.config.AssetsBucket

	fontData, err := s.objects.Get(ctx, bucket, s.config.FontKey)
	if err != nil {
		s.logger.Error(ctx, "font download failed", "bucket", bucket, "key", s.config.FontKey, "error", err)
		return certificate.Assets{}, fmt.Errorf("%w: font: %v", common.ErrAssetFetch, err)
	}

	font, err := certificate.LoadFont(certificateFontFamily, fontData)
	if err != nil {
		s.logger.Error(ctx, "font load failed", "key", s.config.FontKey, "error", err)
		return certificate.Assets{}, err
	}

	template, err := s.objects.Get(ctx, bucket, s.config.TemplateKey)
	if err != nil {
		s.logger.Error(ctx, "template download failed", "bucket", bucket, "key", s.config.TemplateKey, "error", err)
		return certificate.Assets{}, fmt.Errorf("%w: template: %v", common.ErrAssetFetch, err)
	}

	return certificate.Assets{Template: template, Font: font}, nil
}

// Generate builds, stores and indexes the certificate for one record and
// returns its object key.
func (s *GeneratorService) Generate(ctx context.Context, assets certificate.Assets, rec *models.WarrantyRecord) (string, error) {
	transactionID, productNumber, err := rec.Key()
	if err != nil {
		s.logger.Error(ctx, "record without key", "error", err)
		return "", err
	}

	log := s.logger.With(common.LogKeyTransactionID, transactionID, common.LogKeyProductNumber, productNumber)

	fields, err := rec.Display()
	if err != nil {
		log.Error(ctx, "date formatting failed", "error", err)
		return "", err
	}

	doc, err := certificate.Build(assets, fields, s.config.OwnerPassword)
	if err != nil {
		log.Error(ctx, "certificate build failed", "error", err)
		return "", err
	}

	key, err := s.storeAndIndex(ctx, log, transactionID, productNumber, doc)
	if err != nil {
		return "", err
	}

	log.Info(ctx, "certificate generated", "key", key, "bytes", len(doc))
	return key, nil
}

// storeAndIndex writes the certificate and points the record at it. A failed
// index update after a successful write leaves an orphaned object, reported
// as ErrIndexUpdate so it can be told apart from a failed write.
func (s *GeneratorService) storeAndIndex(ctx context.Context, log logging.Logger, transactionID, productNumber string, doc []byte) (string, error) {
	bucket := s.config.CertificateBucket
	key := storage.CertificateKey(productNumber, s.now())

	if err := s.objects.PutPDF(ctx, bucket, key, doc); err != nil {
		log.Error(ctx, "certificate upload failed", "bucket", bucket, "key", key, "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	url := storage.ObjectURL(bucket, s.config.Region, key)
	if err := s.records.SetObjectURL(ctx, transactionID, productNumber, url); err != nil {
		log.Error(ctx, "object url update failed, certificate is orphaned", "bucket", bucket, "key", key, "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrIndexUpdate, err)
	}

	return key, nil
}
