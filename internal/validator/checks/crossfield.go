package checks

import (
	"fmt"
	"strconv"
	"strings"

	"adinvoice/internal/domain"
	"adinvoice/internal/gst"
)

func crossFieldRule(key, name string, sev domain.ValidationSeverity, fn func(*domain.Invoice) []ValidationResult) *BuiltinValidator {
	return &BuiltinValidator{key: key, name: name, ruleType: domain.ValidationRuleCrossField, sev: sev, fn: fn}
}

// CrossFieldValidators returns the checks relating fields to each other.
func CrossFieldValidators() []*BuiltinValidator {
	return []*BuiltinValidator{
		crossFieldRule("xf.party.gstin_state", "Cross-field: Party GSTIN-State Match", domain.ValidationSeverityWarning,
			func(d *domain.Invoice) []ValidationResult {
				return gstinStateCheck(d.Party.GSTIN, d.Party.State)
			}),
		crossFieldRule("xf.tax_type.exclusive", "Cross-field: Exclusive Tax Type", domain.ValidationSeverityError,
			func(d *domain.Invoice) []ValidationResult {
				intra := d.CGST != 0 || d.SGST != 0
				inter := d.IGST != 0
				actual := fmt.Sprintf("cgst=%d sgst=%d igst=%d", d.CGST, d.SGST, d.IGST)
				return []ValidationResult{result(!(intra && inter), "tax", "CGST+SGST or IGST", actual,
					"Cross-field: Exclusive Tax Type: only one tax type charged",
					"Cross-field: Exclusive Tax Type: both CGST/SGST and IGST charged")}
			}),
		crossFieldRule("xf.tax_type.interstate", "Cross-field: Interstate Tax Type", domain.ValidationSeverityError,
			func(d *domain.Invoice) []ValidationResult {
				if d.Interstate {
					passed := d.CGST == 0 && d.SGST == 0
					return []ValidationResult{result(passed, "tax", "IGST only", fmt.Sprintf("cgst=%d sgst=%d", d.CGST, d.SGST),
						"Cross-field: Interstate Tax Type: interstate invoice charges IGST",
						"Cross-field: Interstate Tax Type: interstate invoice charges CGST/SGST")}
				}
				return []ValidationResult{result(d.IGST == 0, "tax", "CGST+SGST only", fmt.Sprintf("igst=%d", d.IGST),
					"Cross-field: Interstate Tax Type: intrastate invoice charges CGST+SGST",
					"Cross-field: Interstate Tax Type: intrastate invoice charges IGST")}
			}),
		crossFieldRule("xf.tax.cgst_sgst_equal", "Cross-field: CGST equals SGST", domain.ValidationSeverityError,
			func(d *domain.Invoice) []ValidationResult {
				return []ValidationResult{result(d.CGST == d.SGST, "sgst", strconv.FormatInt(d.CGST, 10), strconv.FormatInt(d.SGST, 10),
					"Cross-field: CGST equals SGST: halves match",
					"Cross-field: CGST equals SGST: halves differ")}
			}),
	}
}

func gstinStateCheck(gstin, state string) []ValidationResult {
	const ruleName = "Cross-field: Party GSTIN-State Match"
	gstin = strings.TrimSpace(gstin)
	info, ok := gst.StateFromGSTIN(gstin)
	if gstin == "" || !ok {
		return []ValidationResult{{
			Passed: true, FieldPath: "party.state",
			ExpectedValue: "", ActualValue: state,
			Message: ruleName + ": no resolvable GSTIN, skipping",
		}}
	}
	passed := strings.EqualFold(strings.TrimSpace(state), info.Name)
	return []ValidationResult{result(passed, "party.state", info.Name, state,
		fmt.Sprintf("%s: state matches GSTIN prefix %s", ruleName, info.Code),
		fmt.Sprintf("%s: state does not match GSTIN prefix %s (%s)", ruleName, info.Code, info.Name))}
}
