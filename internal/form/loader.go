package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"adinvoice/internal/domain"
)

// Text accepts either a string or a number in a form file, so `duration: 30`
// and `duration: "30"` load the same way.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*t = Text(n.String())
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		*t = ""
		return nil
	}
	*t = Text(node.Value)
	return nil
}

// File is the on-disk form: the values a user would type into the invoice screen.
type File struct {
	InvoiceNumber string     `json:"invoice_number" yaml:"invoice_number"`
	InvoiceDate   string     `json:"invoice_date" yaml:"invoice_date"`
	DueDate       string     `json:"due_date" yaml:"due_date"`
	PONumber      string     `json:"po_number" yaml:"po_number"`
	PODate        string     `json:"po_date" yaml:"po_date"`
	DisplayName   string     `json:"display_name" yaml:"display_name"`
	StartDate     string     `json:"start_date" yaml:"start_date"`
	Duration      Text       `json:"duration" yaml:"duration"`
	GSTRate       *float64   `json:"gst_rate" yaml:"gst_rate"`
	Interstate    *bool      `json:"interstate" yaml:"interstate"`
	Terms         string     `json:"terms" yaml:"terms"`
	Party         FileParty  `json:"party" yaml:"party"`
	Items         []FileItem `json:"items" yaml:"items"`
}

// FileParty is the billing party section of a form file.
type FileParty struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	Pincode Text   `json:"pincode" yaml:"pincode"`
	GSTIN   string `json:"gstin" yaml:"gstin"`
	Phone   Text   `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
}

// FileItem is one row of a form file. Period and Amount are optional overrides
// of the derived values.
type FileItem struct {
	Town        string `json:"town" yaml:"town"`
	Location    string `json:"location" yaml:"location"`
	HSN         Text   `json:"hsn" yaml:"hsn"`
	Media       string `json:"media" yaml:"media"`
	Size        string `json:"size" yaml:"size"`
	Area        Text   `json:"area" yaml:"area"`
	Type        string `json:"type" yaml:"type"`
	MonthlyRate Text   `json:"monthly_rate" yaml:"monthly_rate"`
	Period      string `json:"period" yaml:"period"`
	Amount      Text   `json:"amount" yaml:"amount"`
}

type fieldEdit struct {
	field ItemField
	value string
}

// Load reads a JSON or YAML form file (by extension) and replays it.
func Load(path string, d Defaults) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("reading form file %s: %w", path, err)
	}
	f, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return State{}, fmt.Errorf("decoding form file %s: %w", path, err)
	}
	return f.Replay(d)
}

// Decode parses form file bytes. ext selects YAML for ".yaml"/".yml" and JSON otherwise.
func Decode(data []byte, ext string) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidForm, err)
		}
	default:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidForm, err)
		}
	}
	return &f, nil
}

// Replay applies the file to a fresh form through the same update functions an
// interactive edit would use, in the order a user fills the screen.
func (f *File) Replay(d Defaults) (State, error) {
	s := New(d)
	s = s.SetHeader(Header{
		InvoiceNumber: strings.TrimSpace(f.InvoiceNumber),
		InvoiceDate:   strings.TrimSpace(f.InvoiceDate),
		DueDate:       strings.TrimSpace(f.DueDate),
		PONumber:      strings.TrimSpace(f.PONumber),
		PODate:        strings.TrimSpace(f.PODate),
		DisplayName:   strings.TrimSpace(f.DisplayName),
	})
	if f.GSTRate != nil {
		s = s.SetGSTRate(*f.GSTRate)
	}
	if f.Terms != "" {
		s = s.SetTerms(f.Terms)
	}

	s = s.SetParty(domain.BillingParty{
		Name:    f.Party.Name,
		Address: f.Party.Address,
		City:    f.Party.City,
		Pincode: string(f.Party.Pincode),
		Phone:   string(f.Party.Phone),
		Email:   f.Party.Email,
	})
	if f.Party.GSTIN != "" {
		s = s.SetGSTIN(f.Party.GSTIN)
	}
	if f.Party.State != "" {
		s = s.SetPartyState(f.Party.State)
	}
	if f.Interstate != nil {
		s = s.SetInterstate(*f.Interstate)
	}

	s = s.SetStartDate(f.StartDate)
	s = s.SetDuration(string(f.Duration))

	for n, row := range f.Items {
		var itemID uuid.UUID
		s, itemID = s.AddItem()

		edits := []fieldEdit{
			{FieldTown, row.Town},
			{FieldLocation, row.Location},
			{FieldHSN, string(row.HSN)},
			{FieldMedia, row.Media},
			{FieldSize, row.Size},
			{FieldArea, string(row.Area)},
			{FieldType, row.Type},
			{FieldMonthlyRate, string(row.MonthlyRate)},
		}
		if row.Period != "" {
			edits = append(edits, fieldEdit{FieldPeriod, row.Period})
		}
		if row.Amount != "" {
			edits = append(edits, fieldEdit{FieldAmount, string(row.Amount)})
		}

		var err error
		for _, e := range edits {
			if s, err = s.SetItemField(itemID, e.field, e.value); err != nil {
				return State{}, fmt.Errorf("item %d: %w", n+1, err)
			}
		}
	}
	return s, nil
}
