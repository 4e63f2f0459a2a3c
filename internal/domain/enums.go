package domain

// ExportFormat is a downloadable document type.
type ExportFormat string

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatCSV  ExportFormat = "csv"
)

// ContentTypes maps export formats to their MIME content type.
var ContentTypes = map[ExportFormat]string{
	ExportFormatPDF:  "application/pdf",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	ExportFormatCSV:  "text/csv; charset=utf-8",
}

// ParseExportFormat returns the format for a user-supplied name.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(s)
	if _, ok := ContentTypes[f]; !ok {
		return "", ErrUnsupportedFormat
	}
	return f, nil
}

// ValidationSeverity determines whether a failed check blocks export.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)

// ValidationStatus summarises all checks run on an invoice.
type ValidationStatus string

const (
	ValidationStatusValid   ValidationStatus = "valid"
	ValidationStatusWarning ValidationStatus = "warning"
	ValidationStatusInvalid ValidationStatus = "invalid"
)

// ValidationRuleType groups export checks.
type ValidationRuleType string

const (
	ValidationRuleRequired   ValidationRuleType = "required"
	ValidationRuleRegex      ValidationRuleType = "regex"
	ValidationRuleSumCheck   ValidationRuleType = "sum_check"
	ValidationRuleCrossField ValidationRuleType = "cross_field"
	ValidationRuleCustom     ValidationRuleType = "custom"
)
