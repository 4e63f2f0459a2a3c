package validator

import (
	"sort"

	"adinvoice/internal/domain"
)

// FieldStatus is the combined validation state of one field path.
type FieldStatus struct {
	Status   domain.ValidationStatus `json:"status"`
	Messages []string                `json:"messages"`
}

// ComputeFieldStatuses groups report results by field path. A field is invalid
// if any error check on it failed, warning if only warnings failed, valid otherwise.
func ComputeFieldStatuses(results []ResultEntry) map[string]*FieldStatus {
	statuses := make(map[string]*FieldStatus)
	for _, r := range results {
		fs, ok := statuses[r.FieldPath]
		if !ok {
			fs = &FieldStatus{Status: domain.ValidationStatusValid, Messages: []string{}}
			statuses[r.FieldPath] = fs
		}
		if r.Passed {
			continue
		}
		if r.Severity == domain.ValidationSeverityError {
			fs.Status = domain.ValidationStatusInvalid
		} else if fs.Status != domain.ValidationStatusInvalid {
			fs.Status = domain.ValidationStatusWarning
		}
		fs.Messages = append(fs.Messages, r.Message)
	}
	return statuses
}

// FieldPaths returns the keys of statuses in sorted order.
func FieldPaths(statuses map[string]*FieldStatus) []string {
	paths := make([]string, 0, len(statuses))
	for p := range statuses {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
