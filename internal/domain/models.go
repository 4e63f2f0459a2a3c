package domain

import "github.com/google/uuid"

// InvoiceItem is one advertising site/media line on the invoice.
// Area and MonthlyRate are free text because users enter things like "20x10" or "As per PO".
type InvoiceItem struct {
	ID             uuid.UUID `json:"id"`
	SequenceNumber int       `json:"sequence_number"`
	Town           string    `json:"town"`
	Location       string    `json:"location"`
	HSN            string    `json:"hsn"`
	Media          string    `json:"media"`
	Size           string    `json:"size"`
	Area           string    `json:"area"`
	Type           string    `json:"type"`
	MonthlyRate    string    `json:"monthly_rate"`
	Period         string    `json:"period"`
	Amount         int64     `json:"amount"`
}

// BillingParty is the customer being invoiced.
type BillingParty struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	GSTIN   string `json:"gstin"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Invoice is the immutable snapshot handed to the exporters.
type Invoice struct {
	InvoiceNumber string        `json:"invoice_number"`
	InvoiceDate   string        `json:"invoice_date"`
	DueDate       string        `json:"due_date,omitempty"`
	PONumber      string        `json:"po_number,omitempty"`
	PODate        string        `json:"po_date,omitempty"`
	DisplayName   string        `json:"display_name,omitempty"`
	Duration      string        `json:"duration,omitempty"`
	Party         BillingParty  `json:"party"`
	Items         []InvoiceItem `json:"items"`
	GSTRate       float64       `json:"gst_rate"`
	Interstate    bool          `json:"interstate"`
	Subtotal      int64         `json:"subtotal"`
	CGST          int64         `json:"cgst"`
	SGST          int64         `json:"sgst"`
	IGST          int64         `json:"igst"`
	GrandTotal    int64         `json:"grand_total"`
	TotalInWords  string        `json:"total_in_words"`
	Terms         []string      `json:"terms"`
}

// TotalTax returns the tax actually charged on the invoice.
func (inv *Invoice) TotalTax() int64 {
	return inv.CGST + inv.SGST + inv.IGST
}
