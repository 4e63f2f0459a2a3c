// Package form holds the editable invoice form as an explicit value.
// Every update function returns a new State and leaves its receiver untouched.
package form

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"adinvoice/internal/amount"
	"adinvoice/internal/config"
	"adinvoice/internal/domain"
	"adinvoice/internal/gst"
)

// Header holds the invoice metadata fields.
type Header struct {
	InvoiceNumber string
	InvoiceDate   string
	DueDate       string
	PONumber      string
	PODate        string
	DisplayName   string
}

// Defaults seed a fresh form.
type Defaults struct {
	HomeState string
	GSTRate   float64
	Terms     string
}

// DefaultsFromConfig builds form defaults from application config.
func DefaultsFromConfig(cfg *config.Config) Defaults {
	return Defaults{
		HomeState: cfg.Company.HomeState,
		GSTRate:   cfg.Invoice.DefaultGSTRate,
		Terms:     cfg.Invoice.DefaultTerms,
	}
}

// State is one snapshot of the invoice form.
type State struct {
	Header    Header
	Party     domain.BillingParty
	Items     []domain.InvoiceItem
	StartDate string
	Duration  string
	GSTRate   float64
	Terms     string
	HomeState string

	// Interstate is derived from the party state until the user sets it
	// explicitly; after that the explicit choice sticks.
	Interstate        bool
	InterstateTouched bool
}

// ItemField names an editable column of a line item.
type ItemField string

const (
	FieldTown        ItemField = "town"
	FieldLocation    ItemField = "location"
	FieldHSN         ItemField = "hsn"
	FieldMedia       ItemField = "media"
	FieldSize        ItemField = "size"
	FieldArea        ItemField = "area"
	FieldType        ItemField = "type"
	FieldMonthlyRate ItemField = "monthly_rate"
	FieldPeriod      ItemField = "period"
	FieldAmount      ItemField = "amount"
)

// New returns an empty form.
func New(d Defaults) State {
	rate := d.GSTRate
	if rate == 0 {
		rate = gst.DefaultRate
	}
	return State{
		GSTRate:   rate,
		Terms:     d.Terms,
		HomeState: d.HomeState,
	}
}

func (s State) clone() State {
	s.Items = slices.Clone(s.Items)
	return s
}

func (s State) renumber() State {
	for i := range s.Items {
		s.Items[i].SequenceNumber = i + 1
	}
	return s
}

func (s State) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.Items, func(it domain.InvoiceItem) bool { return it.ID == id })
}

// derive recomputes the period and amount of one item from the global dates.
func (s State) derive(it domain.InvoiceItem) domain.InvoiceItem {
	it.Period = CalculatePeriodFromDates(s.StartDate, s.Duration)
	it.Amount = CalculateAmountFromDuration(it.MonthlyRate, s.Duration)
	return it
}

func (s State) deriveAll() State {
	for i := range s.Items {
		s.Items[i] = s.derive(s.Items[i])
	}
	return s
}

// Item returns the item with the given ID.
func (s State) Item(id uuid.UUID) (domain.InvoiceItem, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.InvoiceItem{}, false
	}
	return s.Items[i], true
}

// AddItem appends a blank row. Its period is pre-filled from the global dates.
func (s State) AddItem() (State, uuid.UUID) {
	s = s.clone()
	it := domain.InvoiceItem{ID: uuid.New()}
	it.Period = CalculatePeriodFromDates(s.StartDate, s.Duration)
	s.Items = append(s.Items, it)
	return s.renumber(), it.ID
}

// RemoveItem deletes a row and renumbers the rest.
func (s State) RemoveItem(id uuid.UUID) (State, error) {
	i := s.indexOf(id)
	if i < 0 {
		return s, fmt.Errorf("removing item %s: %w", id, domain.ErrItemNotFound)
	}
	s = s.clone()
	s.Items = slices.Delete(s.Items, i, i+1)
	return s.renumber(), nil
}

// SetItemField edits one column of a row. Changing the monthly rate re-derives
// the row's period and amount. Unparseable amounts become 0.
func (s State) SetItemField(id uuid.UUID, field ItemField, value string) (State, error) {
	i := s.indexOf(id)
	if i < 0 {
		return s, fmt.Errorf("editing item %s: %w", id, domain.ErrItemNotFound)
	}
	s = s.clone()
	it := s.Items[i]

	switch field {
	case FieldTown:
		it.Town = value
	case FieldLocation:
		it.Location = value
	case FieldHSN:
		it.HSN = value
	case FieldMedia:
		it.Media = value
	case FieldSize:
		it.Size = value
	case FieldArea:
		it.Area = value
	case FieldType:
		it.Type = value
	case FieldMonthlyRate:
		it.MonthlyRate = value
		it = s.derive(it)
	case FieldPeriod:
		it.Period = value
	case FieldAmount:
		it.Amount = parseAmount(value)
	default:
		return s, fmt.Errorf("unknown item field %q: %w", field, domain.ErrInvalidForm)
	}

	s.Items[i] = it
	return s, nil
}

// SetStartDate changes the campaign start date and re-derives every row.
func (s State) SetStartDate(date string) State {
	s = s.clone()
	s.StartDate = strings.TrimSpace(date)
	return s.deriveAll()
}

// SetDuration changes the campaign length in days and re-derives every row.
func (s State) SetDuration(days string) State {
	s = s.clone()
	s.Duration = strings.TrimSpace(days)
	return s.deriveAll()
}

// SetHeader replaces the invoice metadata.
func (s State) SetHeader(h Header) State {
	s = s.clone()
	s.Header = h
	return s
}

// SetParty replaces the party's contact fields. GSTIN and state are left alone;
// they change only through SetGSTIN and SetPartyState.
func (s State) SetParty(p domain.BillingParty) State {
	s = s.clone()
	p.GSTIN = s.Party.GSTIN
	p.State = s.Party.State
	s.Party = p
	return s
}

// SetGSTIN stores the party GSTIN. When its prefix names a state, the party
// state is overwritten with it; an unresolvable GSTIN leaves the state as is.
func (s State) SetGSTIN(gstin string) State {
	s = s.clone()
	s.Party.GSTIN = strings.ToUpper(strings.TrimSpace(gstin))
	if info, ok := gst.StateFromGSTIN(s.Party.GSTIN); ok {
		s.Party.State = info.Name
		s = s.autoInterstate()
	}
	return s
}

// SetPartyState overrides the party state until the GSTIN changes again.
func (s State) SetPartyState(state string) State {
	s = s.clone()
	s.Party.State = strings.TrimSpace(state)
	return s.autoInterstate()
}

// SetInterstate records an explicit choice. Later state edits no longer change it.
func (s State) SetInterstate(v bool) State {
	s = s.clone()
	s.Interstate = v
	s.InterstateTouched = true
	return s
}

// SetGSTRate sets the GST percentage. Any rate is accepted.
func (s State) SetGSTRate(rate float64) State {
	s = s.clone()
	s.GSTRate = rate
	return s
}

// SetTerms replaces the free-text terms and conditions.
func (s State) SetTerms(terms string) State {
	s = s.clone()
	s.Terms = terms
	return s
}

func (s State) autoInterstate() State {
	if !s.InterstateTouched {
		s.Interstate = s.Party.State != s.HomeState
	}
	return s
}

func parseAmount(v string) int64 {
	d, ok := amount.Parse(v)
	if !ok {
		return 0
	}
	return d.Round(0).IntPart()
}
