package validator

import (
	"context"

	"adinvoice/internal/domain"
	"adinvoice/internal/validator/checks"
)

// Validator is the interface for a single built-in export check.
type Validator interface {
	Validate(ctx context.Context, inv *domain.Invoice) []checks.ValidationResult
	RuleKey() string
	RuleName() string
	RuleType() domain.ValidationRuleType
	Severity() domain.ValidationSeverity
}
