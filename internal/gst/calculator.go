package gst

import "github.com/shopspring/decimal"

// DefaultRate is the GST percentage applied to advertising services.
const DefaultRate = 18.0

// Breakdown is the tax split for a taxable amount.
// The caller charges either CGST+SGST (intrastate) or IGST (interstate), never both.
type Breakdown struct {
	CGST  int64 `json:"cgst"`
	SGST  int64 `json:"sgst"`
	IGST  int64 `json:"igst"`
	Total int64 `json:"total"`
}

// Calculate splits GST on amount at rate percent. Amounts are whole rupees:
// the amount is rounded first, the tax is rounded, and each half is rounded.
// A non-positive amount carries no tax.
func Calculate(amount, rate float64) Breakdown {
	base := decimal.NewFromFloat(amount).Round(0)
	if !base.IsPositive() {
		return Breakdown{Total: base.IntPart()}
	}

	tax := base.Mul(decimal.NewFromFloat(rate)).Div(decimal.NewFromInt(100)).Round(0)
	half := tax.Div(decimal.NewFromInt(2)).Round(0).IntPart()

	return Breakdown{
		CGST:  half,
		SGST:  half,
		IGST:  tax.IntPart(),
		Total: base.Add(tax).IntPart(),
	}
}

// Apply routes a breakdown to the tax lines actually charged.
func (b Breakdown) Apply(interstate bool) (cgst, sgst, igst int64) {
	if interstate {
		return 0, 0, b.IGST
	}
	return b.CGST, b.SGST, 0
}
