package checks

import (
	"fmt"
	"strconv"
	"strings"

	"adinvoice/internal/domain"
)

func requiredField(key, name, fieldPath string, sev domain.ValidationSeverity, extract func(*domain.Invoice) string) *BuiltinValidator {
	return &BuiltinValidator{
		key: key, name: name, ruleType: domain.ValidationRuleRequired, sev: sev,
		fn: func(inv *domain.Invoice) []ValidationResult {
			val := strings.TrimSpace(extract(inv))
			return []ValidationResult{presence(val != "", name, fieldPath, val)}
		},
	}
}

func presence(passed bool, ruleName, fieldPath, val string) ValidationResult {
	return result(passed, fieldPath, "non-empty value", val,
		fmt.Sprintf("%s: %s is present", ruleName, fieldPath),
		fmt.Sprintf("%s: %s is missing or empty", ruleName, fieldPath))
}

// RequiredFieldValidators returns the presence checks.
func RequiredFieldValidators() []*BuiltinValidator {
	return []*BuiltinValidator{
		requiredField("req.invoice.number", "Required: Invoice Number", "invoice_number",
			domain.ValidationSeverityError, func(d *domain.Invoice) string { return d.InvoiceNumber }),
		requiredField("req.invoice.date", "Required: Invoice Date", "invoice_date",
			domain.ValidationSeverityError, func(d *domain.Invoice) string { return d.InvoiceDate }),
		requiredField("req.party.name", "Required: Party Name", "party.name",
			domain.ValidationSeverityError, func(d *domain.Invoice) string { return d.Party.Name }),
		requiredField("req.party.address", "Required: Party Address", "party.address",
			domain.ValidationSeverityWarning, func(d *domain.Invoice) string { return d.Party.Address }),
		{
			key: "req.items", name: "Required: Line Items",
			ruleType: domain.ValidationRuleRequired, sev: domain.ValidationSeverityError,
			fn: func(d *domain.Invoice) []ValidationResult {
				n := len(d.Items)
				return []ValidationResult{result(n > 0, "items", "at least 1", strconv.Itoa(n),
					"Required: Line Items: invoice has line items",
					"Required: Line Items: invoice has no line items")}
			},
		},
		{
			key: "req.item.location", name: "Required: Item Location",
			ruleType: domain.ValidationRuleRequired, sev: domain.ValidationSeverityWarning,
			fn: func(d *domain.Invoice) []ValidationResult {
				results := make([]ValidationResult, 0, len(d.Items))
				for i := range d.Items {
					val := strings.TrimSpace(d.Items[i].Location)
					fp := fmt.Sprintf("items[%d].location", i)
					results = append(results, presence(val != "", "Required: Item Location", fp, val))
				}
				return results
			},
		},
	}
}
