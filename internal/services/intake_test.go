package services

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
)

func validRegistration() Registration {
	return Registration{
		Model:           "MODEL",
		SerialNo:        "SN1",
		SubStoreName:    "Store",
		UserLastName:    "山田",
		UserFirstName:   "太郎",
		PostalCode:      "100-0001",
		Prefecture:      "東京都",
		Address:         "千代田区1-1",
		PhoneNumber:     "03-0000-0000",
		Email:           "taro@example.com",
		Purpose:         "leisure",
		SaleDate:        "2023-12-01T00:00:00Z",
		WarrantyEndDate: "2024-12-01T00:00:00Z",
		ChecklistItem2:  true,
		ChecklistItem10: true,
	}
}

func TestRegister(t *testing.T) {
	repo := newMemRepo()
	svc, err := NewIntakeService(repo, testConfig(), logging.Discard())
	require.NoError(t, err)
	svc.newID = func() string { return "T1" }

	rec, err := svc.Register(context.Background(), validRegistration(), RequestMeta{UserAgent: "UA", SourceIP: "203.0.113.9"})
	require.NoError(t, err)

	assert.Equal(t, "T1", rec.TransactionID)
	assert.Equal(t, "MODEL-SN1", rec.ProductNumber)
	assert.Equal(t, "山田 太郎", rec.UserFullName)
	assert.Empty(t, rec.ObjectURL)
	assert.True(t, rec.ChecklistItem2)
	assert.True(t, rec.ChecklistItem10)
	assert.False(t, rec.ChecklistItem1)
	assert.Equal(t, "UA", rec.UserAgent)
	assert.Equal(t, "203.0.113.9", rec.IPAddress)

	stored, err := repo.Get(context.Background(), "T1", "MODEL-SN1")
	require.NoError(t, err)
	assert.Equal(t, *rec, *stored)
}

func TestRegister_GeneratesUUID(t *testing.T) {
	svc, err := NewIntakeService(newMemRepo(), testConfig(), logging.Discard())
	require.NoError(t, err)

	rec, err := svc.Register(context.Background(), validRegistration(), RequestMeta{})
	require.NoError(t, err)
	assert.Len(t, rec.TransactionID, 36)
}

func TestRegister_Validation(t *testing.T) {
	svc, err := NewIntakeService(newMemRepo(), testConfig(), logging.Discard())
	require.NoError(t, err)
	ctx := context.Background()

	cases := map[string]func(r *Registration){
		"missing model":  func(r *Registration) { r.Model = "" },
		"bad email":      func(r *Registration) { r.Email = "not-an-email" },
		"bad sale date":  func(r *Registration) { r.SaleDate = "2023/12/01" },
		"missing end":    func(r *Registration) { r.WarrantyEndDate = "" },
		"missing serial": func(r *Registration) { r.SerialNo = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			reg := validRegistration()
			mutate(&reg)
			_, err := svc.Register(ctx, reg, RequestMeta{})
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegister_StoreError(t *testing.T) {
	repo := newMemRepo()
	repo.createErr = errors.New("boom")
	svc, err := NewIntakeService(repo, testConfig(), logging.Discard())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegistration(), RequestMeta{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrValidation)
}

func TestRegisterDateRule(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerDateRule(v, "isodate"))

	assert.NoError(t, v.Var("2024-02-29", "isodate"))
	assert.Error(t, v.Var("2023-02-29", "isodate"))
	assert.Error(t, v.Var("2023/12/01", "isodate"))

	assert.Error(t, registerDateRule(validator.New(), ""))
}
