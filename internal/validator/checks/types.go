// Package checks holds the built-in export checks run against an invoice snapshot.
package checks

import (
	"context"

	"adinvoice/internal/domain"
)

// ValidationResult is the outcome of one check on one field.
type ValidationResult struct {
	Passed        bool
	FieldPath     string
	ExpectedValue string
	ActualValue   string
	Message       string
}

// BuiltinValidator wraps a check function and its metadata for the registry.
type BuiltinValidator struct {
	key      string
	name     string
	ruleType domain.ValidationRuleType
	sev      domain.ValidationSeverity
	fn       func(*domain.Invoice) []ValidationResult
}

func (b *BuiltinValidator) Validate(_ context.Context, inv *domain.Invoice) []ValidationResult {
	return b.fn(inv)
}
func (b *BuiltinValidator) RuleKey() string                     { return b.key }
func (b *BuiltinValidator) RuleName() string                    { return b.name }
func (b *BuiltinValidator) RuleType() domain.ValidationRuleType { return b.ruleType }
func (b *BuiltinValidator) Severity() domain.ValidationSeverity { return b.sev }

// AllBuiltinValidators returns every built-in check in a stable order.
func AllBuiltinValidators() []*BuiltinValidator {
	var all []*BuiltinValidator
	all = append(all, RequiredFieldValidators()...)
	all = append(all, FormatValidators()...)
	all = append(all, MathValidators()...)
	all = append(all, CrossFieldValidators()...)
	return all
}

func result(passed bool, fieldPath, expected, actual, okMsg, failMsg string) ValidationResult {
	msg := okMsg
	if !passed {
		msg = failMsg
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: expected, ActualValue: actual, Message: msg,
	}
}
