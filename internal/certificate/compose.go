package certificate

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/dmitrijs2005/warrantycert/internal/common"
)

// stampDescription places the table page unscaled over the template page,
// anchored bottom-left so the renderer's own margins decide the position.
const stampDescription = "pos:bl, off:0 0, scalefactor:1 abs, rot:0"

// PageCount returns the number of pages in doc.
func PageCount(doc []byte) (int, error) {
	if len(doc) == 0 {
		return 0, nil
	}
	return api.PageCount(bytes.NewReader(doc), model.NewDefaultConfiguration())
}

// Compose overlays page one of table onto page one of template and returns a
// one-page document. Either input having no pages is a compose error.
func Compose(template, table []byte) ([]byte, error) {
	if err := requirePages("template", template); err != nil {
		return nil, err
	}
	if err := requirePages("table", table); err != nil {
		return nil, err
	}

	conf := model.NewDefaultConfiguration()

	var first bytes.Buffer
	if err := api.Trim(bytes.NewReader(template), &first, []string{"1"}, conf); err != nil {
		return nil, fmt.Errorf("%w: trim template: %v", common.ErrCompose, err)
	}

	// pdfcpu reads PDF stamps from a file.
	stamp, err := os.CreateTemp("", "certificate-table-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCompose, err)
	}
	defer os.Remove(stamp.Name())

	if _, err := stamp.Write(table); err != nil {
		stamp.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrCompose, err)
	}
	if err := stamp.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCompose, err)
	}

	wm, err := api.PDFWatermark(stamp.Name(), stampDescription, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("%w: stamp: %v", common.ErrCompose, err)
	}

	var out bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(first.Bytes()), &out, []string{"1"}, wm, conf); err != nil {
		return nil, fmt.Errorf("%w: merge: %v", common.ErrCompose, err)
	}

	return out.Bytes(), nil
}

func requirePages(name string, doc []byte) error {
	n, err := PageCount(doc)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", common.ErrCompose, name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s has no pages", common.ErrCompose, name)
	}
	return nil
}
