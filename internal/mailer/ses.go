// Package mailer sends plain-text staff notifications through Amazon SES.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const charset = "UTF-8"

var ErrNoRecipients = errors.New("no recipients")

// SESAPI is the subset of *sesv2.Client used here.
type SESAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

type SESMailer struct {
	client SESAPI
}

func NewSESMailer(client SESAPI) *SESMailer {
	return &SESMailer{client: client}
}

// Send delivers m and returns the SES message id.
func (s *SESMailer) Send(ctx context.Context, m Message) (string, error) {
	if m.From == "" || len(m.To) == 0 {
		return "", ErrNoRecipients
	}

	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.From),
		Destination:      &types.Destination{ToAddresses: m.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(m.Subject), Charset: aws.String(charset)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(m.Body), Charset: aws.String(charset)},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ses send: %w", err)
	}

	return aws.ToString(out.MessageId), nil
}
