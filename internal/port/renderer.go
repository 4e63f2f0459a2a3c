package port

import (
	"adinvoice/internal/config"
	"adinvoice/internal/domain"
	"adinvoice/internal/draw"
)

// DocumentRenderer turns a laid-out document into file bytes.
type DocumentRenderer interface {
	Render(doc *draw.Document) ([]byte, error)
}

// SpreadsheetWriter turns an invoice into workbook bytes.
type SpreadsheetWriter interface {
	Write(inv *domain.Invoice, company config.CompanyConfig) ([]byte, error)
}
