package mocks

import (
	"github.com/stretchr/testify/mock"

	"adinvoice/internal/config"
	"adinvoice/internal/domain"
)

// MockSpreadsheetWriter is a mock implementation of port.SpreadsheetWriter.
type MockSpreadsheetWriter struct {
	mock.Mock
}

func (m *MockSpreadsheetWriter) Write(inv *domain.Invoice, company config.CompanyConfig) ([]byte, error) {
	args := m.Called(inv, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
