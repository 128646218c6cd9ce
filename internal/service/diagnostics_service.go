package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmi-portfolio/backend/internal/repository"
)

const (
	maxReportedCollections = 10
	diagnosticMaxRunes     = 80
)

// Report is the human-readable diagnostics payload of GET /test.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsService probes the store for the diagnostics endpoint.
type DiagnosticsService struct {
	store   repository.DocumentStore
	urlSet  bool
	nameSet bool
}

// NewDiagnosticsService creates a DiagnosticsService. store may be nil;
// urlSet and nameSet report whether DATABASE_URL and DATABASE_NAME are set.
func NewDiagnosticsService(store repository.DocumentStore, urlSet, nameSet bool) *DiagnosticsService {
	return &DiagnosticsService{store: store, urlSet: urlSet, nameSet: nameSet}
}

// Report never fails; every problem is folded into the Database string.
func (s *DiagnosticsService) Report(ctx context.Context) Report {
	rep := Report{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	s.probe(ctx, &rep)
	rep.DatabaseURL = setStatus(s.urlSet)
	rep.DatabaseName = setStatus(s.nameSet)
	return rep
}

func (s *DiagnosticsService) probe(ctx context.Context, rep *Report) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "diagnostics probe panicked", "panic", r)
			rep.Database = "❌ Error: " + truncate(fmt.Sprint(r), diagnosticMaxRunes)
		}
	}()

	if s.store == nil {
		rep.Database = "⚠️ Available but not initialized"
		return
	}
	rep.Database = "✅ Available"
	rep.ConnectionStatus = "Connected"

	names, err := s.store.ListCollectionNames(ctx)
	if err != nil {
		rep.Database = "⚠️ Connected but Error: " + truncate(err.Error(), diagnosticMaxRunes)
		return
	}
	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	if names != nil {
		rep.Collections = names
	}
	rep.Database = "✅ Connected & Working"
}

func setStatus(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
