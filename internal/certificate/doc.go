// Package certificate builds the warranty certificate PDF.
//
// The pipeline is fixed: a two-column table of five display fields is
// rendered on its own landscape A4 page (RenderTable), stamped onto page one
// of the template (Compose) and protected with an owner password that only
// permits printing and copying (Encrypt). Build runs all three.
//
// Only the first page of the template is used.
package certificate

import "github.com/pdfcpu/pdfcpu/pkg/api"

func init() {
	// pdfcpu otherwise creates a config directory under $HOME, which is
	// read-only on Lambda.
	api.DisableConfigDir()
}
