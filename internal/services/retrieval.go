package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/config"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
	"github.com/dmitrijs2005/warrantycert/internal/repositories/warranties"
	"github.com/dmitrijs2005/warrantycert/internal/storage"
)

type Presigner interface {
	PresignGet(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
}

// RetrievalService resolves a record to a signed download link.
type RetrievalService struct {
	records   warranties.Repository
	presigner Presigner
	config    *config.Config
	logger    logging.Logger
}

func NewRetrievalService(records warranties.Repository, presigner Presigner, cfg *config.Config, logger logging.Logger) *RetrievalService {
	return &RetrievalService{records: records, presigner: presigner, config: cfg, logger: logger}
}

// DownloadURL returns a presigned GET URL for the record's certificate.
//
// Errors: common.ErrValidation for a missing key part, common.ErrNotFound when
// there is no record or no certificate yet, common.ErrPresign when signing
// fails; anything else is a record store failure.
func (s *RetrievalService) DownloadURL(ctx context.Context, transactionID, productNumber string) (string, error) {
	if transactionID == "" || productNumber == "" {
		return "", fmt.Errorf("%w: transactionID and productNumber are required", common.ErrValidation)
	}

	log := s.logger.With(common.LogKeyTransactionID, transactionID, common.LogKeyProductNumber, productNumber)

	rec, err := s.records.Get(ctx, transactionID, productNumber)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			log.Error(ctx, "record lookup failed", "error", err)
		}
		return "", err
	}

	key := storage.KeyFromURL(rec.ObjectURL)
	if key == "" {
		return "", fmt.Errorf("%w: certificate not generated yet", common.ErrNotFound)
	}

	url, err := s.presigner.PresignGet(ctx, s.config.CertificateBucket, key, s.config.PresignExpiry)
	if err != nil {
		log.Error(ctx, "presign failed", "key", key, "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrPresign, err)
	}

	return url, nil
}
