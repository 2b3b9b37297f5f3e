package certificate

import (
	"github.com/dmitrijs2005/warrantycert/internal/models"
)

// Assets are the immutable inputs shared by every certificate of one run.
type Assets struct {
	Template []byte
	Font     *Font
}

// Build renders, composes and encrypts one certificate. Errors carry the
// sentinel of the failing stage.
func Build(assets Assets, fields models.DisplayFields, ownerPassword string) ([]byte, error) {
	table, err := RenderTable(assets.Font, fields)
	if err != nil {
		return nil, err
	}

	merged, err := Compose(assets.Template, table.PDF)
	if err != nil {
		return nil, err
	}

	return Encrypt(merged, ownerPassword)
}
