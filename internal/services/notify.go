package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/config"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
	"github.com/dmitrijs2005/warrantycert/internal/mailer"
	"github.com/dmitrijs2005/warrantycert/internal/models"
)

const notifySubject = "保証証生成のお知らせ"

const notifyBodyTemplate = `お客様へ

この度は当社の製品をご購入いただき、誠にありがとうございます。
保証書が生成されましたので、以下のリンクからダウンロードしてください。

%s

今後とも当社製品をどうぞよろしくお願いいたします。
`

type Sender interface {
	Send(ctx context.Context, m mailer.Message) (string, error)
}

// NotifyService mails staff once a certificate URL lands on a record.
type NotifyService struct {
	sender Sender
	config *config.Config
	logger logging.Logger
}

func NewNotifyService(sender Sender, cfg *config.Config, logger logging.Logger) *NotifyService {
	return &NotifyService{sender: sender, config: cfg, logger: logger}
}

// NotificationBody renders the mail text for a certificate URL.
func NotificationBody(url string) string {
	return fmt.Sprintf(notifyBodyTemplate, url)
}

// HandleChanges sends one mail per change that assigned an object URL and
// returns how many were sent. The first failure stops the batch.
func (s *NotifyService) HandleChanges(ctx context.Context, changes []models.Change) (int, error) {
	if s.config.NotifySource == "" || len(s.config.NotifyRecipients) == 0 {
		return 0, fmt.Errorf("%w: notify source and recipients", common.ErrMissingSetting)
	}

	sent := 0
	for _, c := range changes {
		if !c.ObjectURLAssigned() {
			continue
		}
		rec := c.NewImage

		id, err := s.sender.Send(ctx, mailer.Message{
			From:    s.config.NotifySource,
			To:      s.config.NotifyRecipients,
			Subject: notifySubject,
			Body:    NotificationBody(rec.ObjectURL),
		})
		if err != nil {
			s.logger.Error(ctx, "notification failed",
				common.LogKeyTransactionID, rec.TransactionID, common.LogKeyProductNumber, rec.ProductNumber, "error", err)
			return sent, err
		}

		s.logger.Info(ctx, "notification sent",
			common.LogKeyTransactionID, rec.TransactionID, common.LogKeyProductNumber, rec.ProductNumber,
			"message_id", id, "recipients", strings.Join(s.config.NotifyRecipients, ","))
		sent++
	}

	return sent, nil
}
