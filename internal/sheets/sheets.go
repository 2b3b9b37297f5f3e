// Package sheets appends rows to a Google spreadsheet for back-office review.
package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	valueInputUserEntered = "USER_ENTERED"
	insertRows            = "INSERT_ROWS"
)

var scopes = []string{gsheets.SpreadsheetsScope}

// Appender writes rows to one sheet of one spreadsheet.
type Appender struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheet         string
}

func NewAppender(svc *gsheets.Service, spreadsheetID, sheet string) *Appender {
	return &Appender{svc: svc, spreadsheetID: spreadsheetID, sheet: sheet}
}

// NewService authenticates with a service-account JSON key file.
func NewService(ctx context.Context, keyFile string, opts ...option.ClientOption) (*gsheets.Service, error) {
	key, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("read service account: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, key, scopes...)
	if err != nil {
		return nil, fmt.Errorf("service account credentials: %w", err)
	}

	opts = append([]option.ClientOption{option.WithTokenSource(creds.TokenSource)}, opts...)
	return gsheets.NewService(ctx, opts...)
}

// AppendRow appends one row after the last used row, parsing values as if
// typed by a user so that formulas are evaluated. It returns the updated
// A1 range.
func (a *Appender) AppendRow(ctx context.Context, row []any) (string, error) {
	vr := &gsheets.ValueRange{Values: [][]any{row}}

	resp, err := a.svc.Spreadsheets.Values.
		Append(a.spreadsheetID, a.sheet+"!A1", vr).
		ValueInputOption(valueInputUserEntered).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("append row: %w", err)
	}

	if resp.Updates == nil {
		return "", nil
	}
	return resp.Updates.UpdatedRange, nil
}
