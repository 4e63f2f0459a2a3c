package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adinvoice/internal/assets"
	"adinvoice/internal/config"
	"adinvoice/internal/csvexport"
	"adinvoice/internal/domain"
	"adinvoice/internal/form"
	"adinvoice/internal/invoice"
	"adinvoice/internal/layout"
	"adinvoice/internal/port"
	"adinvoice/internal/validator"
)

// Output is one finished download.
type Output struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService turns form state into downloadable invoice documents.
type ExportService interface {
	// Check aggregates the form and runs the export checks without producing a file.
	Check(ctx context.Context, state form.State) (*domain.Invoice, *validator.Report)
	Export(ctx context.Context, state form.State, format domain.ExportFormat) (*Output, error)
	ExportPDF(ctx context.Context, state form.State) (*Output, error)
	ExportXLSX(ctx context.Context, state form.State) (*Output, error)
	ExportCSV(ctx context.Context, state form.State) (*Output, error)
}

type exportService struct {
	checks   *validator.Engine
	resolver *assets.Resolver
	layout   *layout.Engine
	pdf      port.DocumentRenderer
	sheets   port.SpreadsheetWriter
	company  config.CompanyConfig
	logger   *slog.Logger
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	checks *validator.Engine,
	resolver *assets.Resolver,
	layoutEngine *layout.Engine,
	pdf port.DocumentRenderer,
	sheets port.SpreadsheetWriter,
	company config.CompanyConfig,
	logger *slog.Logger,
) ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &exportService{
		checks:   checks,
		resolver: resolver,
		layout:   layoutEngine,
		pdf:      pdf,
		sheets:   sheets,
		company:  company,
		logger:   logger,
	}
}

func (s *exportService) Check(ctx context.Context, state form.State) (*domain.Invoice, *validator.Report) {
	inv := invoice.Build(state)
	return &inv, s.checks.Validate(ctx, &inv)
}

func (s *exportService) Export(ctx context.Context, state form.State, format domain.ExportFormat) (*Output, error) {
	switch format {
	case domain.ExportFormatPDF:
		return s.ExportPDF(ctx, state)
	case domain.ExportFormatXLSX:
		return s.ExportXLSX(ctx, state)
	case domain.ExportFormatCSV:
		return s.ExportCSV(ctx, state)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

func (s *exportService) ExportPDF(ctx context.Context, state form.State) (*Output, error) {
	return s.run(ctx, state, domain.ExportFormatPDF, func(inv *domain.Invoice) ([]byte, error) {
		art := s.resolver.Resolve(ctx)
		doc := s.layout.Layout(inv, art)
		s.logger.DebugContext(ctx, "invoice laid out", "pages", doc.PageCount())
		return s.pdf.Render(doc)
	})
}

func (s *exportService) ExportXLSX(ctx context.Context, state form.State) (*Output, error) {
	return s.run(ctx, state, domain.ExportFormatXLSX, func(inv *domain.Invoice) ([]byte, error) {
		return s.sheets.Write(inv, s.company)
	})
}

func (s *exportService) ExportCSV(ctx context.Context, state form.State) (*Output, error) {
	return s.run(ctx, state, domain.ExportFormatCSV, csvexport.Encode)
}

// run aggregates the form, guards it, and hands the snapshot to produce.
func (s *exportService) run(ctx context.Context, state form.State, format domain.ExportFormat, produce func(*domain.Invoice) ([]byte, error)) (*Output, error) {
	runID := uuid.New()
	start := time.Now()
	log := s.logger.With("export_id", runID.String(), "format", string(format))

	inv := invoice.Build(state)
	if _, err := s.checks.Guard(ctx, &inv); err != nil {
		log.WarnContext(ctx, "export blocked", "invoice", inv.InvoiceNumber, "error", err)
		return nil, err
	}

	data, err := produce(&inv)
	if err != nil {
		log.ErrorContext(ctx, "export failed", "invoice", inv.InvoiceNumber, "error", err)
		return nil, fmt.Errorf("exporting invoice %s as %s: %w", inv.InvoiceNumber, format, err)
	}

	out := &Output{
		Filename:    csvexport.BuildFilename(inv.InvoiceNumber, format),
		ContentType: domain.ContentTypes[format],
		Data:        data,
	}
	log.InfoContext(ctx, "invoice exported",
		"invoice", inv.InvoiceNumber,
		"file", out.Filename,
		"items", len(inv.Items),
		"grand_total", inv.GrandTotal,
		"bytes", len(data),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
