package validator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"adinvoice/internal/domain"
)

// ResultEntry is one check outcome together with the rule that produced it.
type ResultEntry struct {
	RuleKey   string                    `json:"rule_key"`
	RuleName  string                    `json:"rule_name"`
	Severity  domain.ValidationSeverity `json:"severity"`
	Passed    bool                      `json:"passed"`
	FieldPath string                    `json:"field_path"`
	Expected  string                    `json:"expected_value"`
	Actual    string                    `json:"actual_value"`
	Message   string                    `json:"message"`
}

// Report is the outcome of running every registered check on an invoice.
type Report struct {
	Status   domain.ValidationStatus `json:"status"`
	Results  []ResultEntry           `json:"results"`
	Passed   int                     `json:"passed"`
	Errors   int                     `json:"errors"`
	Warnings int                     `json:"warnings"`
}

// Failures returns the failed entries of the given severity.
func (r *Report) Failures(sev domain.ValidationSeverity) []ResultEntry {
	var out []ResultEntry
	for _, e := range r.Results {
		if !e.Passed && e.Severity == sev {
			out = append(out, e)
		}
	}
	return out
}

// Engine runs registered checks against invoice snapshots.
type Engine struct {
	registry *Registry
	logger   *slog.Logger
}

// NewEngine creates a new validation engine.
func NewEngine(registry *Registry, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{registry: registry, logger: logger}
}

// Validate runs every registered check and summarises the outcome.
func (e *Engine) Validate(ctx context.Context, inv *domain.Invoice) *Report {
	report := &Report{}
	hasError := false
	hasWarning := false

	for _, v := range e.registry.All() {
		for _, vr := range v.Validate(ctx, inv) {
			report.Results = append(report.Results, ResultEntry{
				RuleKey:   v.RuleKey(),
				RuleName:  v.RuleName(),
				Severity:  v.Severity(),
				Passed:    vr.Passed,
				FieldPath: vr.FieldPath,
				Expected:  vr.ExpectedValue,
				Actual:    vr.ActualValue,
				Message:   vr.Message,
			})
			switch {
			case vr.Passed:
				report.Passed++
			case v.Severity() == domain.ValidationSeverityError:
				report.Errors++
				hasError = true
			default:
				report.Warnings++
				hasWarning = true
			}
		}
	}

	switch {
	case hasError:
		report.Status = domain.ValidationStatusInvalid
	case hasWarning:
		report.Status = domain.ValidationStatusWarning
	default:
		report.Status = domain.ValidationStatusValid
	}
	return report
}

// Guard validates inv before export. Warnings are logged; any error-severity
// failure blocks the export with domain.ErrExportBlocked.
func (e *Engine) Guard(ctx context.Context, inv *domain.Invoice) (*Report, error) {
	report := e.Validate(ctx, inv)

	for _, w := range report.Failures(domain.ValidationSeverityWarning) {
		e.logger.WarnContext(ctx, "export check warning",
			"invoice", inv.InvoiceNumber, "rule", w.RuleKey, "field", w.FieldPath, "message", w.Message)
	}

	if report.Status == domain.ValidationStatusInvalid {
		failed := report.Failures(domain.ValidationSeverityError)
		msgs := make([]string, 0, len(failed))
		for _, f := range failed {
			msgs = append(msgs, f.Message)
		}
		return report, fmt.Errorf("%w: %s", domain.ErrExportBlocked, strings.Join(msgs, "; "))
	}

	e.logger.DebugContext(ctx, "export checks passed",
		"invoice", inv.InvoiceNumber, "status", report.Status, "results", len(report.Results))
	return report, nil
}
