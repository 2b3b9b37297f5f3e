package certgen

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/warrantycert/internal/certificate"
	"github.com/dmitrijs2005/warrantycert/internal/common"
	"github.com/dmitrijs2005/warrantycert/internal/filex"
	"github.com/dmitrijs2005/warrantycert/internal/flagx"
	"github.com/dmitrijs2005/warrantycert/internal/logging"
	"github.com/dmitrijs2005/warrantycert/internal/models"
	"github.com/dmitrijs2005/warrantycert/internal/netx"
	"github.com/dmitrijs2005/warrantycert/internal/storage"
)

const fontFamily = "CertificateFont"

var ErrUsage = errors.New("usage: certgen -record FILE -template FILE -font FILE [-out FILE|DIR]")

type Options struct {
	RecordFile   string
	TemplateFile string
	FontFile     string
	Out          string
}

// ParseOptions reads the certgen flags from args, ignoring flags that belong
// to the config loader.
func ParseOptions(args []string) (Options, error) {
	var o Options

	fs := flag.NewFlagSet("certgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.RecordFile, "record", "", "warranty record JSON")
	fs.StringVar(&o.TemplateFile, "template", "", "template PDF, path or presigned URL")
	fs.StringVar(&o.FontFile, "font", "", "TrueType/OpenType font, path or presigned URL")
	fs.StringVar(&o.Out, "out", "", "output file or directory")

	filtered := flagx.FilterArgs(args, []string{"-record", "-template", "-font", "-out"})
	if err := fs.Parse(filtered); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if o.RecordFile == "" || o.TemplateFile == "" || o.FontFile == "" {
		return Options{}, ErrUsage
	}
	return o, nil
}

// Generator runs the local pipeline.
type Generator struct {
	logger logging.Logger
	client *http.Client
	now    func() time.Time
}

func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{logger: logger, client: http.DefaultClient, now: time.Now}
}

// readAsset reads a local file, or downloads src when it is a URL such as a
// presigned link into the assets bucket.
func (g *Generator) readAsset(ctx context.Context, src string) ([]byte, error) {
	if netx.IsURL(src) {
		return netx.Download(ctx, g.client, src)
	}
	return os.ReadFile(src)
}

// Run writes one encrypted certificate and returns its path. When Out is
// empty or a directory the file is named like the stored object key.
func (g *Generator) Run(ctx context.Context, o Options, ownerPassword string) (string, error) {
	raw, err := os.ReadFile(o.RecordFile)
	if err != nil {
		return "", fmt.Errorf("read record: %w", err)
	}
	var rec models.WarrantyRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidRecord, err)
	}

	template, err := g.readAsset(ctx, o.TemplateFile)
	if err != nil {
		return "", fmt.Errorf("%w: template: %v", common.ErrAssetFetch, err)
	}
	fontData, err := g.readAsset(ctx, o.FontFile)
	if err != nil {
		return "", fmt.Errorf("%w: font: %v", common.ErrAssetFetch, err)
	}
	font, err := certificate.LoadFont(fontFamily, fontData)
	if err != nil {
		return "", err
	}

	fields, err := rec.Display()
	if err != nil {
		return "", err
	}

	doc, err := certificate.Build(certificate.Assets{Template: template, Font: font}, fields, ownerPassword)
	if err != nil {
		return "", err
	}

	out, err := g.outputPath(o.Out, rec.ProductNumber)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	g.logger.Info(ctx, "certificate written", common.LogKeyProductNumber, rec.ProductNumber, "path", out, "bytes", len(doc))
	return out, nil
}

// outputPath creates a missing output directory. A path that is neither
// empty nor a directory is used as the file name.
func (g *Generator) outputPath(out, productNumber string) (string, error) {
	if productNumber == "" {
		productNumber = "certificate"
	}
	name := storage.CertificateKey(productNumber, g.now())

	if out == "" {
		return name, nil
	}
	if !filex.IsDirPath(out) {
		return out, nil
	}
	dir, err := filex.EnsureDir(out)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
