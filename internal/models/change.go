// Package models holds the domain types shared by the warranty functions:
// the stored registration record and the change notifications the record
// store emits for it.
package models

import "github.com/dmitrijs2005/warrantycert/internal/common"

// Change is one entry of a record-store change notification batch.
// OldImage is nil for inserts; NewImage is nil for removals.
type Change struct {
	Kind     string
	OldImage *WarrantyRecord
	NewImage *WarrantyRecord
}

func (c Change) IsInsert() bool { return c.Kind == common.ChangeInsert }
func (c Change) IsModify() bool { return c.Kind == common.ChangeModify }

// ObjectURLAssigned reports whether this change is the one-time transition of
// the object URL from empty to populated.
func (c Change) ObjectURLAssigned() bool {
	if !c.IsModify() || c.NewImage == nil || c.NewImage.ObjectURL == "" {
		return false
	}
	return c.OldImage == nil || c.OldImage.ObjectURL == ""
}
