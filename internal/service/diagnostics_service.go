package service

import (
	"context"
	"time"

	"cafeteria-admin/internal/repository"
)

const (
	diagnosticsTimeout = 3 * time.Second
	maxErrorLen        = 80
)

// DiagnosticsReport is the body of GET /test. Store failures are described
// in the fields, never returned as errors.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type DiagnosticsService interface {
	Report(ctx context.Context) DiagnosticsReport
}

type diagnosticsService struct {
	diag           repository.Diagnostics
	databaseURLSet bool
}

// NewDiagnosticsService reports on diag, which may be nil when no store is
// configured.
func NewDiagnosticsService(diag repository.Diagnostics, databaseURLSet bool) DiagnosticsService {
	return &diagnosticsService{diag: diag, databaseURLSet: databaseURLSet}
}

func (s *diagnosticsService) Report(ctx context.Context) DiagnosticsReport {
	report := DiagnosticsReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if s.diag == nil {
		report.Database = "⚠️ Available but not initialized"
		return report
	}

	report.Database = "✅ Available"
	urlStatus := "❌ Not Set"
	if s.databaseURLSet {
		urlStatus = "✅ Set"
	}
	report.DatabaseURL = &urlStatus
	name := s.diag.DatabaseName()
	if name == "" {
		name = "✅ Connected"
	}
	report.DatabaseName = &name
	report.ConnectionStatus = "Connected"

	ctx, cancel := context.WithTimeout(ctx, diagnosticsTimeout)
	defer cancel()

	names, err := s.diag.CollectionNames(ctx)
	if err != nil {
		report.Database = "⚠️ Connected but Error: " + truncate(err.Error(), maxErrorLen)
		return report
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = "✅ Connected & Working"
	return report
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
