// Package warranties stores WarrantyRecord items addressed by the composite
// key (transactionID, productNumber).
package warranties

import (
	"context"

	"github.com/dmitrijs2005/warrantycert/internal/models"
)

type Repository interface {
	// Create inserts a new record; an existing key yields common.ErrAlreadyExists.
	Create(ctx context.Context, r *models.WarrantyRecord) error
	// Get returns common.ErrNotFound when no item has the key.
	Get(ctx context.Context, transactionID, productNumber string) (*models.WarrantyRecord, error)
	// SetObjectURL updates only the objectUrl attribute of an existing item.
	SetObjectURL(ctx context.Context, transactionID, productNumber, url string) error
}
