package models

import (
	"fmt"

	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/timex"
)

// ChecklistSize is the number of boolean checklist items on the form.
const ChecklistSize = 10

// WarrantyRecord is one registration, addressed by (TransactionID, ProductNumber).
// ObjectURL is empty until the certificate pipeline stores the document.
type WarrantyRecord struct {
	TransactionID   string `dynamodbav:"transactionID" json:"transactionID"`
	ProductNumber   string `dynamodbav:"productNumber" json:"productNumber"`
	Model           string `dynamodbav:"model" json:"model"`
	SerialNo        string `dynamodbav:"serialNo" json:"serialNo"`
	SubStoreName    string `dynamodbav:"subStoreName" json:"subStoreName"`
	UserLastName    string `dynamodbav:"userLastName" json:"userLastName"`
	UserFirstName   string `dynamodbav:"userFirstName" json:"userFirstName"`
	UserFullName    string `dynamodbav:"userFullName" json:"userFullName"`
	PostalCode      string `dynamodbav:"postalCode" json:"postalCode"`
	Prefecture      string `dynamodbav:"prefecture" json:"prefecture"`
	Address         string `dynamodbav:"address" json:"address"`
	PhoneNumber     string `dynamodbav:"phoneNumber" json:"phoneNumber"`
	Email           string `dynamodbav:"email" json:"email"`
	Purpose         string `dynamodbav:"purpose" json:"purpose"`
	ObjectURL       string `dynamodbav:"objectUrl" json:"objectUrl"`
	SaleDate        string `dynamodbav:"saleDate" json:"saleDate"`
	WarrantyEndDate string `dynamodbav:"warrantyEndDate" json:"warrantyEndDate"`
	ChecklistItem1  bool   `dynamodbav:"checklistItem1" json:"checklistItem1"`
	ChecklistItem2  bool   `dynamodbav:"checklistItem2" json:"checklistItem2"`
	ChecklistItem3  bool   `dynamodbav:"checklistItem3" json:"checklistItem3"`
	ChecklistItem4  bool   `dynamodbav:"checklistItem4" json:"checklistItem4"`
	ChecklistItem5  bool   `dynamodbav:"checklistItem5" json:"checklistItem5"`
	ChecklistItem6  bool   `dynamodbav:"checklistItem6" json:"checklistItem6"`
	ChecklistItem7  bool   `dynamodbav:"checklistItem7" json:"checklistItem7"`
	ChecklistItem8  bool   `dynamodbav:"checklistItem8" json:"checklistItem8"`
	ChecklistItem9  bool   `dynamodbav:"checklistItem9" json:"checklistItem9"`
	ChecklistItem10 bool   `dynamodbav:"checklistItem10" json:"checklistItem10"`
	UserAgent       string `dynamodbav:"userAgent" json:"userAgent"`
	IPAddress       string `dynamodbav:"ipAddress" json:"ipAddress"`
}

// ProductNumberOf derives the second key part from model and serial number.
func ProductNumberOf(model, serialNo string) string {
	return model + "-" + serialNo
}

// FullNameOf joins family and given name the way the certificate prints it.
func FullNameOf(last, first string) string {
	return last + " " + first
}

// Key reports an error when either composite key part is missing.
func (r *WarrantyRecord) Key() (transactionID, productNumber string, err error) {
	if r.TransactionID == "" || r.ProductNumber == "" {
		return "", "", fmt.Errorf("%w: missing composite key (transactionID=%q, productNumber=%q)",
			common.ErrInvalidRecord, r.TransactionID, r.ProductNumber)
	}
	return r.TransactionID, r.ProductNumber, nil
}

// Checklist returns the checklist flags in form order.
func (r *WarrantyRecord) Checklist() [ChecklistSize]bool {
	return [ChecklistSize]bool{
		r.ChecklistItem1, r.ChecklistItem2, r.ChecklistItem3, r.ChecklistItem4, r.ChecklistItem5,
		r.ChecklistItem6, r.ChecklistItem7, r.ChecklistItem8, r.ChecklistItem9, r.ChecklistItem10,
	}
}

// SetChecklist assigns the checklist flags in form order.
func (r *WarrantyRecord) SetChecklist(c [ChecklistSize]bool) {
	r.ChecklistItem1, r.ChecklistItem2, r.ChecklistItem3, r.ChecklistItem4, r.ChecklistItem5 = c[0], c[1], c[2], c[3], c[4]
	r.ChecklistItem6, r.ChecklistItem7, r.ChecklistItem8, r.ChecklistItem9, r.ChecklistItem10 = c[5], c[6], c[7], c[8], c[9]
}

// DisplayFields are the five values printed on a certificate.
type DisplayFields struct {
	Name            string
	Model           string
	SerialNo        string
	SaleDate        string
	WarrantyEndDate string
}

// Display formats the record for the certificate table. Dates are converted
// to UTC+9 calendar dates; a malformed date yields common.ErrFormat.
func (r *WarrantyRecord) Display() (DisplayFields, error) {
	sale, err := timex.FormatDate(r.SaleDate)
	if err != nil {
		return DisplayFields{}, fmt.Errorf("%w: saleDate: %v", common.ErrFormat, err)
	}
	end, err := timex.FormatDate(r.WarrantyEndDate)
	if err != nil {
		return DisplayFields{}, fmt.Errorf("%w: warrantyEndDate: %v", common.ErrFormat, err)
	}

	return DisplayFields{
		Name:            r.UserFullName,
		Model:           r.Model,
		SerialNo:        r.SerialNo,
		SaleDate:        sale,
		WarrantyEndDate: end,
	}, nil
}
