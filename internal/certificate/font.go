package certificate

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/dmitrijs2005/warrantycert/internal/common"
)

// Font is a TrueType resource handed explicitly to the renderer; nothing is
// registered globally.
type Font struct {
	family string
	data   []byte
}

// LoadFont validates raw TrueType bytes. Anything sfnt cannot parse is a
// render error, since the renderer would fail on it later anyway.
func LoadFont(family string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font resource", common.ErrRender)
	}
	if _, err := sfnt.Parse(data); err != nil {
		return nil, fmt.Errorf("%w: font %q: %v", common.ErrRender, family, err)
	}
	return &Font{family: family, data: data}, nil
}

func (f *Font) Family() string { return f.family }
