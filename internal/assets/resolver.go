// Package assets resolves header and footer art before layout. Every failure
// degrades to vector fallback art of the same size; nothing here returns an error.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"log/slog"

	"github.com/jung-kurt/gofpdf"

	"adinvoice/internal/config"
	"adinvoice/internal/domain"
	"adinvoice/internal/draw"
	"adinvoice/internal/layout"
	"adinvoice/internal/port"
)

// Resolver loads art from an AssetSource.
type Resolver struct {
	source  port.AssetSource
	cfg     config.AssetsConfig
	company config.CompanyConfig
	logger  *slog.Logger
}

// NewResolver creates a Resolver. A nil source always yields fallback art.
func NewResolver(source port.AssetSource, cfg config.AssetsConfig, company config.CompanyConfig, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{source: source, cfg: cfg, company: company, logger: logger}
}

// Resolve returns header and footer art for the layout engine.
func (r *Resolver) Resolve(ctx context.Context) layout.Assets {
	return layout.Assets{
		Header: r.resolve(ctx, r.cfg.Header, func() []draw.Op {
			return HeaderFallback(r.company, layout.HeaderArtBox.W, layout.HeaderArtBox.H)
		}),
		Footer: r.resolve(ctx, r.cfg.Footer, func() []draw.Op {
			return FooterFallback(r.company, layout.FooterArtBox.W, layout.FooterArtBox.H)
		}),
	}
}

func (r *Resolver) resolve(ctx context.Context, name string, fallback func() []draw.Op) *draw.Art {
	art, err := r.load(ctx, name)
	if err == nil {
		r.logger.DebugContext(ctx, "asset loaded", "name", name, "format", art.Format, "bytes", len(art.Image))
		return art
	}

	location := ""
	if r.source != nil {
		location = r.source.Location()
	}
	r.logger.WarnContext(ctx, "asset unavailable, using vector fallback",
		"name", name, "source", location, "error", err)
	return &draw.Art{Name: name, Fallback: fallback()}
}

func (r *Resolver) load(ctx context.Context, name string) (*draw.Art, error) {
	if r.source == nil || name == "" {
		return nil, domain.ErrAssetNotFound
	}
	data, err := r.source.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	format, err := DetectFormat(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &draw.Art{Name: name, Image: data, Format: format}, nil
}

// DetectFormat checks that data decodes as a JPEG or PNG with non-zero size and
// that gofpdf accepts it, then returns the renderer's image type name.
func DetectFormat(data []byte) (string, error) {
	cfg, kind, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAssetUnreadable, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return "", fmt.Errorf("%w: empty image", domain.ErrAssetUnreadable)
	}
	var format string
	switch kind {
	case "jpeg":
		format = "JPG"
	case "png":
		format = "PNG"
	default:
		return "", fmt.Errorf("%w: unsupported format %s", domain.ErrAssetUnreadable, kind)
	}
	if err := checkDrawable(data, format); err != nil {
		return "", err
	}
	return format, nil
}

// checkDrawable registers data on a scratch document. gofpdf rejects some
// images the standard decoders accept (16-bit or interlaced PNG, for one).
func checkDrawable(data []byte, format string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.RegisterImageOptionsReader("art", gofpdf.ImageOptions{ImageType: format}, bytes.NewReader(data))
	if pdf.Err() {
		return fmt.Errorf("%w: %v", domain.ErrAssetUnreadable, pdf.Error())
	}
	return nil
}
