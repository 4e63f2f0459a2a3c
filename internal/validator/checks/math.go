package checks

import (
	"fmt"
	"strconv"

	"adinvoice/internal/amount"
	"adinvoice/internal/domain"
	"adinvoice/internal/gst"
)

func mathResult(passed bool, fieldPath string, expected, actual int64, ruleName string) ValidationResult {
	exp, act := strconv.FormatInt(expected, 10), strconv.FormatInt(actual, 10)
	return result(passed, fieldPath, exp, act,
		fmt.Sprintf("%s: %s calculation matches", ruleName, fieldPath),
		fmt.Sprintf("%s: %s calculation mismatch (expected %s, got %s)", ruleName, fieldPath, exp, act))
}

func mathRule(key, name string, sev domain.ValidationSeverity, fn func(*domain.Invoice) []ValidationResult) *BuiltinValidator {
	return &BuiltinValidator{key: key, name: name, ruleType: domain.ValidationRuleSumCheck, sev: sev, fn: fn}
}

// MathValidators returns the arithmetic checks on totals.
func MathValidators() []*BuiltinValidator {
	return []*BuiltinValidator{
		mathRule("math.item.amount_non_negative", "Math: Item Amount Non-negative", domain.ValidationSeverityError,
			func(d *domain.Invoice) []ValidationResult {
				results := make([]ValidationResult, 0, len(d.Items))
				for i := range d.Items {
					fp := fmt.Sprintf("items[%d].amount", i)
					a := d.Items[i].Amount
					results = append(results, result(a >= 0, fp, ">= 0", strconv.FormatInt(a, 10),
						fmt.Sprintf("Math: Item Amount Non-negative: %s is not negative", fp),
						fmt.Sprintf("Math: Item Amount Non-negative: %s is negative", fp)))
				}
				return results
			}),
		mathRule("math.item.amount_present", "Math: Item Amount Present", domain.ValidationSeverityWarning,
			func(d *domain.Invoice) []ValidationResult {
				results := make([]ValidationResult, 0, len(d.Items))
				for i := range d.Items {
					fp := fmt.Sprintf("items[%d].amount", i)
					a := d.Items[i].Amount
					results = append(results, result(a != 0, fp, "non-zero", strconv.FormatInt(a, 10),
						fmt.Sprintf("Math: Item Amount Present: %s is set", fp),
						fmt.Sprintf("Math: Item Amount Present: %s is zero", fp)))
				}
				return results
			}),
		mathRule("math.subtotal", "Math: Subtotal", domain.ValidationSeverityError,
			func(d *domain.Invoice) []ValidationResult {
				var sum int64
				for i := range d.Items {
					sum += d.Items[i].Amount
				}
				return []ValidationResult{mathResult(sum == d.Subtotal, "subtotal", sum, d.Subtotal, "Math: Subtotal")}
			}),
		mathRule("math.tax", "Math: Tax Amount", domain.ValidationSeverityError,
			func(d *domain.Invoice) []ValidationResult {
				b := gst.Calculate(float64(d.Subtotal), d.GSTRate)
				cgst, sgst, igst := b.Apply(d.Interstate)
				return []ValidationResult{
					mathResult(cgst == d.CGST, "cgst", cgst, d.CGST, "Math: Tax Amount"),
					mathResult(sgst == d.SGST, "sgst", sgst, d.SGST, "Math: Tax Amount"),
					mathResult(igst == d.IGST, "igst", igst, d.IGST, "Math: Tax Amount"),
				}
			}),
		mathRule("math.grand_total", "Math: Grand Total", domain.ValidationSeverityError,
			func(d *domain.Invoice) []ValidationResult {
				expected := d.Subtotal + d.CGST + d.SGST + d.IGST
				return []ValidationResult{mathResult(expected == d.GrandTotal, "grand_total", expected, d.GrandTotal, "Math: Grand Total")}
			}),
		mathRule("math.total_in_words", "Math: Amount in Words", domain.ValidationSeverityError,
			func(d *domain.Invoice) []ValidationResult {
				expected := amount.NumberToWords(d.GrandTotal)
				return []ValidationResult{result(expected == d.TotalInWords, "total_in_words", expected, d.TotalInWords,
					"Math: Amount in Words: words match grand total",
					"Math: Amount in Words: words do not match grand total")}
			}),
	}
}
