package checks

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"adinvoice/internal/domain"
	"adinvoice/internal/gst"
)

var (
	hsnPattern     = regexp.MustCompile(`^\d{4,8}$`)
	pincodePattern = regexp.MustCompile(`^[1-9]\d{5}$`)
)

var dateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006", "02.01.2006"}

func regexCheck(fieldPath, value, expected, ruleName string, ok func(string) bool) ValidationResult {
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: expected, ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	return result(ok(value), fieldPath, expected, value,
		fmt.Sprintf("%s: %s matches expected format", ruleName, fieldPath),
		fmt.Sprintf("%s: %s does not match expected format", ruleName, fieldPath))
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

func validDate(s string) bool {
	_, err := parseDate(s)
	return err == nil
}

func formatRule(key, name string, sev domain.ValidationSeverity, fn func(*domain.Invoice) []ValidationResult) *BuiltinValidator {
	return &BuiltinValidator{key: key, name: name, ruleType: domain.ValidationRuleRegex, sev: sev, fn: fn}
}

// FormatValidators returns the field format checks.
func FormatValidators() []*BuiltinValidator {
	return []*BuiltinValidator{
		formatRule("fmt.party.gstin", "Format: Party GSTIN", domain.ValidationSeverityWarning,
			func(d *domain.Invoice) []ValidationResult {
				return []ValidationResult{regexCheck("party.gstin", strings.TrimSpace(d.Party.GSTIN),
					"15-character GSTIN", "Format: Party GSTIN", gst.ValidGSTIN)}
			}),
		formatRule("fmt.party.pincode", "Format: Party Pincode", domain.ValidationSeverityWarning,
			func(d *domain.Invoice) []ValidationResult {
				return []ValidationResult{regexCheck("party.pincode", strings.TrimSpace(d.Party.Pincode),
					pincodePattern.String(), "Format: Party Pincode", pincodePattern.MatchString)}
			}),
		formatRule("fmt.invoice.date", "Format: Invoice Date", domain.ValidationSeverityWarning,
			func(d *domain.Invoice) []ValidationResult {
				results := []ValidationResult{regexCheck("invoice_date", strings.TrimSpace(d.InvoiceDate),
					"DD/MM/YYYY", "Format: Invoice Date", validDate)}
				if due := strings.TrimSpace(d.DueDate); due != "" {
					results = append(results, regexCheck("due_date", due, "DD/MM/YYYY", "Format: Invoice Date", validDate))
				}
				return results
			}),
		formatRule("fmt.item.hsn", "Format: Item HSN/SAC", domain.ValidationSeverityWarning,
			func(d *domain.Invoice) []ValidationResult {
				results := make([]ValidationResult, 0, len(d.Items))
				for i := range d.Items {
					fp := fmt.Sprintf("items[%d].hsn", i)
					results = append(results, regexCheck(fp, strings.TrimSpace(d.Items[i].HSN),
						hsnPattern.String(), "Format: Item HSN/SAC", hsnPattern.MatchString))
				}
				return results
			}),
	}
}
