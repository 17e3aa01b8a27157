package services

import (
	"context"

	"github.com/gin-gonic/gin"
)

// StoreInspector is the diagnostic view of the document store.
type StoreInspector interface {
	Connected() bool
	Name() string
	CollectionNames(ctx context.Context, limit int) ([]string, error)
}

// DiagnosticsService renders store connectivity as a status report. Every
// failure ends up in the report strings; this never returns an error.
type DiagnosticsService struct {
	store          StoreInspector
	databaseURLSet bool
}

func NewDiagnosticsService(store StoreInspector, databaseURLSet bool) *DiagnosticsService {
	return &DiagnosticsService{store: store, databaseURLSet: databaseURLSet}
}

// CheckStore probes the store and reports what it finds.
func (s *DiagnosticsService) CheckStore(ctx context.Context) gin.H {
	report := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if s.store == nil || !s.store.Connected() {
		return report
	}

	report["database"] = "✅ Available"
	if s.databaseURLSet {
		report["database_url"] = "✅ Set"
	} else {
		report["database_url"] = "❌ Not Set"
	}
	report["database_name"] = s.store.Name()
	report["connection_status"] = "Connected"

	collections, err := s.store.CollectionNames(ctx, 10)
	if err != nil {
		msg := err.Error()
		if len(msg) > 80 {
			msg = msg[:80]
		}
		report["database"] = "⚠️ Connected but Error: " + msg
		return report
	}
	if collections == nil {
		collections = []string{}
	}
	report["collections"] = collections
	report["database"] = "✅ Connected & Working"

	return report
}
