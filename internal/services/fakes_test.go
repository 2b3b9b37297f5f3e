package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/config"
	"github.com/dmitrijs2005/warrantycert/internal/mailer"
	"github.com/dmitrijs2005/warrantycert/internal/models"
)

// -------- test fakes --------

type memRepo struct {
	items     map[string]models.WarrantyRecord
	getErr    error
	createErr error
	updateErr error
	updates   int
}

func newMemRepo(recs ...models.WarrantyRecord) *memRepo {
	r := &memRepo{items: map[string]models.WarrantyRecord{}}
	for _, rec := range recs {
		r.items[rec.TransactionID+"|"+rec.ProductNumber] = rec
	}
	return r
}

func (r *memRepo) Create(ctx context.Context, rec *models.WarrantyRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	k := rec.TransactionID + "|" + rec.ProductNumber
	if _, ok := r.items[k]; ok {
		return common.ErrAlreadyExists
	}
	r.items[k] = *rec
	return nil
}

func (r *memRepo) Get(ctx context.Context, transactionID, productNumber string) (*models.WarrantyRecord, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	rec, ok := r.items[transactionID+"|"+productNumber]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &rec, nil
}

func (r *memRepo) SetObjectURL(ctx context.Context, transactionID, productNumber, url string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	k := transactionID + "|" + productNumber
	rec, ok := r.items[k]
	if !ok {
		return common.ErrNotFound
	}
	rec.ObjectURL = url
	r.items[k] = rec
	r.updates++
	return nil
}

type memObjects struct {
	objects map[string][]byte
	gets    int
	putErr  error
}

func newMemObjects() *memObjects {
	return &memObjects{objects: map[string][]byte{}}
}

func (m *memObjects) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	m.gets++
	b, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return b, nil
}

func (m *memObjects) PutPDF(ctx context.Context, bucket, key string, body []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[bucket+"/"+key] = body
	return nil
}

func (m *memObjects) keysIn(bucket string) []string {
	var keys []string
	for k := range m.objects {
		if len(k) > len(bucket) && k[:len(bucket)+1] == bucket+"/" {
			keys = append(keys, k[len(bucket)+1:])
		}
	}
	return keys
}

type fakePresigner struct {
	bucket, key string
	expires     time.Duration
	err         error
}

func (f *fakePresigner) PresignGet(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.bucket, f.key, f.expires = bucket, key, expires
	return "https://signed.example/" + key + "?X-Amz-Signature=abc", nil
}

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, m mailer.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, m)
	return "msg", nil
}

type fakeAppender struct {
	rows [][]any
	err  error
}

func (f *fakeAppender) AppendRow(ctx context.Context, row []any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.rows = append(f.rows, row)
	return "Warranty!A2:AC2", nil
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.OwnerPassword = "owner-secret"
	c.NotifySource = "warranty@example.com"
	c.NotifyRecipients = []string{"service@example.com"}
	c.RetrievalEndpoint = "https://api.example.com/main/get/spreadsheet"
	return c
}
