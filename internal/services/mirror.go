package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/config"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
	"github.com/dmitrijs2005/warrantycert/internal/models"
	"github.com/dmitrijs2005/warrantycert/internal/timex"
)

const checkMark = "✔"

type RowAppender interface {
	AppendRow(ctx context.Context, row []any) (string, error)
}

// MirrorService copies modified records into the back-office spreadsheet.
type MirrorService struct {
	appender RowAppender
	config   *config.Config
	logger   logging.Logger
	now      func() time.Time
}

func NewMirrorService(appender RowAppender, cfg *config.Config, logger logging.Logger) *MirrorService {
	return &MirrorService{appender: appender, config: cfg, logger: logger, now: time.Now}
}

// RetrievalLink is the download endpoint for one record.
func RetrievalLink(endpoint, transactionID, productNumber string) string {
	q := url.Values{}
	q.Set("transactionID", transactionID)
	q.Set("productNumber", productNumber)
	return endpoint + "?" + q.Encode()
}

func hyperlink(link string) string {
	l := strings.ReplaceAll(link, `"`, `""`)
	return fmt.Sprintf(`=HYPERLINK("%s", "%s")`, l, l)
}

// BuildRow lays out one spreadsheet row. The link column stays blank until
// the record has a certificate.
func BuildRow(rec *models.WarrantyRecord, now time.Time, retrievalEndpoint string) ([]any, error) {
	sale, err := timex.FormatDate(rec.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("%w: saleDate: %v", common.ErrFormat, err)
	}
	end, err := timex.FormatDate(rec.WarrantyEndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: warrantyEndDate: %v", common.ErrFormat, err)
	}

	link := ""
	if rec.ObjectURL != "" {
		link = hyperlink(RetrievalLink(retrievalEndpoint, rec.TransactionID, rec.ProductNumber))
	}

	row := []any{
		timex.FormatMinute(now),
		rec.TransactionID,
		rec.ProductNumber,
		rec.Model,
		rec.SerialNo,
		rec.SubStoreName,
		rec.UserLastName,
		rec.UserFirstName,
		rec.PostalCode,
		rec.Prefecture,
		rec.Address,
		rec.PhoneNumber,
		rec.Email,
		rec.Purpose,
		link,
		sale,
		end,
	}
	for _, checked := range rec.Checklist() {
		if checked {
			row = append(row, checkMark)
		} else {
			row = append(row, "")
		}
	}
	row = append(row, rec.UserAgent, rec.IPAddress)

	return row, nil
}

// HandleChanges appends a row for every modify change and returns the
// number of rows written.
func (s *MirrorService) HandleChanges(ctx context.Context, changes []models.Change) (int, error) {
	written := 0
	for _, c := range changes {
		if !c.IsModify() || c.NewImage == nil {
			continue
		}
		rec := c.NewImage
		log := s.logger.With(common.LogKeyTransactionID, rec.TransactionID, common.LogKeyProductNumber, rec.ProductNumber)

		row, err := BuildRow(rec, s.now(), s.config.RetrievalEndpoint)
		if err != nil {
			log.Error(ctx, "row build failed", "error", err)
			return written, err
		}

		rng, err := s.appender.AppendRow(ctx, row)
		if err != nil {
			log.Error(ctx, "row append failed", "error", err)
			return written, err
		}

		log.Info(ctx, "row appended", "range", rng)
		written++
	}
	return written, nil
}
