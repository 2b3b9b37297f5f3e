package certificate

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/dmitrijs2005/warrantycert/internal/common"
)

const aesKeyLength = 256

// Permissions granted on a certificate: printing (low and high quality) and
// copying content. Modification, annotation, form filling and assembly are
// denied.
const Permissions = model.PermissionsPrint | model.PermissionExtract

// Encrypt protects doc with AES-256 and ownerPassword. No user password is
// set, so the certificate opens without prompting.
func Encrypt(doc []byte, ownerPassword string) ([]byte, error) {
	if ownerPassword == "" {
		return nil, fmt.Errorf("%w: %w", common.ErrEncryption, common.ErrMissingOwnerPassword)
	}

	conf := model.NewAESConfiguration("", ownerPassword, aesKeyLength)
	conf.Permissions = Permissions

	var out bytes.Buffer
	if err := api.Encrypt(bytes.NewReader(doc), &out, conf); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEncryption, err)
	}

	return out.Bytes(), nil
}

// Decrypt removes protection using the owner password.
func Decrypt(doc []byte, ownerPassword string) ([]byte, error) {
	conf := model.NewAESConfiguration("", ownerPassword, aesKeyLength)

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(doc), &out, conf); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEncryption, err)
	}

	return out.Bytes(), nil
}
