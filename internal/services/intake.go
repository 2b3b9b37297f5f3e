package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/config"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
	"github.com/dmitrijs2005/warrantycert/internal/models"
	"github.com/dmitrijs2005/warrantycert/internal/repositories/warranties"
	"github.com/dmitrijs2005/warrantycert/internal/timex"
)

// Registration is the submitted web form.
type Registration struct {
	Model           string `json:"model" validate:"required"`
	SerialNo        string `json:"serialNo" validate:"required"`
	SubStoreName    string `json:"subStoreName"`
	UserLastName    string `json:"userLastName" validate:"required"`
	UserFirstName   string `json:"userFirstName" validate:"required"`
	PostalCode      string `json:"postalCode" validate:"required"`
	Prefecture      string `json:"prefecture" validate:"required"`
	Address         string `json:"address" validate:"required"`
	PhoneNumber     string `json:"phoneNumber" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Purpose         string `json:"purpose"`
	SaleDate        string `json:"saleDate" validate:"required,isodate"`
	WarrantyEndDate string `json:"warrantyEndDate" validate:"required,isodate"`
	ChecklistItem1  bool   `json:"checklistItem1"`
	ChecklistItem2  bool   `json:"checklistItem2"`
	ChecklistItem3  bool   `json:"checklistItem3"`
	ChecklistItem4  bool   `json:"checklistItem4"`
	ChecklistItem5  bool   `json:"checklistItem5"`
	ChecklistItem6  bool   `json:"checklistItem6"`
	ChecklistItem7  bool   `json:"checklistItem7"`
	ChecklistItem8  bool   `json:"checklistItem8"`
	ChecklistItem9  bool   `json:"checklistItem9"`
	ChecklistItem10 bool   `json:"checklistItem10"`
}

// RequestMeta is captured from the HTTP request, not the form.
type RequestMeta struct {
	UserAgent string
	SourceIP  string
}

type IntakeService struct {
	records  warranties.Repository
	validate *validator.Validate
	config   *config.Config
	logger   logging.Logger
	newID    func() string
}

func NewIntakeService(records warranties.Repository, cfg *config.Config, logger logging.Logger) (*IntakeService, error) {
	v := validator.New()
	if err := registerDateRule(v, "isodate"); err != nil {
		return nil, fmt.Errorf("register validation rule: %w", err)
	}

	return &IntakeService{
		records:  records,
		validate: v,
		config:   cfg,
		logger:   logger,
		newID:    func() string { return uuid.New().String() },
	}, nil
}

// registerDateRule makes tag accept values timex.ParseISO understands.
func registerDateRule(v *validator.Validate, tag string) error {
	return v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, err := timex.ParseISO(fl.Field().String())
		return err == nil
	})
}

// Register validates the form and stores a new record with an empty object
// URL. The insert it causes is what triggers certificate generation.
func (s *IntakeService) Register(ctx context.Context, reg Registration, meta RequestMeta) (*models.WarrantyRecord, error) {
	if err := s.validate.Struct(reg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	rec := &models.WarrantyRecord{
		TransactionID:   s.newID(),
		ProductNumber:   models.ProductNumberOf(reg.Model, reg.SerialNo),
		Model:           reg.Model,
		SerialNo:        reg.SerialNo,
		SubStoreName:    reg.SubStoreName,
		UserLastName:    reg.UserLastName,
		UserFirstName:   reg.UserFirstName,
		UserFullName:    models.FullNameOf(reg.UserLastName, reg.UserFirstName),
		PostalCode:      reg.PostalCode,
		Prefecture:      reg.Prefecture,
		Address:         reg.Address,
		PhoneNumber:     reg.PhoneNumber,
		Email:           reg.Email,
		Purpose:         reg.Purpose,
		SaleDate:        reg.SaleDate,
		WarrantyEndDate: reg.WarrantyEndDate,
		UserAgent:       meta.UserAgent,
		IPAddress:       meta.SourceIP,
	}
	rec.SetChecklist([models.ChecklistSize]bool{
		reg.ChecklistItem1, reg.ChecklistItem2, reg.ChecklistItem3, reg.ChecklistItem4, reg.ChecklistItem5,
		reg.ChecklistItem6, reg.ChecklistItem7, reg.ChecklistItem8, reg.ChecklistItem9, reg.ChecklistItem10,
	})

	if err := s.records.Create(ctx, rec); err != nil {
		s.logger.Error(ctx, "record create failed",
			common.LogKeyTransactionID, rec.TransactionID, common.LogKeyProductNumber, rec.ProductNumber, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "registration stored",
		common.LogKeyTransactionID, rec.TransactionID, common.LogKeyProductNumber, rec.ProductNumber)
	return rec, nil
}
