package usecase

import (
	"context"
	"fmt"
	"plumbing_estimator/internal/usecase/interfaces"
)

const maxListedTables = 10

// StoreStatus is the payload of the diagnostic endpoint.
type StoreStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type IDiagnosticsUseCase interface {
	StoreStatus(ctx context.Context) StoreStatus
}

type DiagnosticsUseCase struct {
	inspector          interfaces.IStoreInspector
	endpointConfigured bool
	tablesConfigured   bool
}

var _ IDiagnosticsUseCase = (*DiagnosticsUseCase)(nil)

func NewDiagnosticsUseCase(inspector interfaces.IStoreInspector, endpointConfigured, tablesConfigured bool) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{
		inspector:          inspector,
		endpointConfigured: endpointConfigured,
		tablesConfigured:   tablesConfigured,
	}
}

// StoreStatus never fails: problems are reported inside the payload.
func (u *DiagnosticsUseCase) StoreStatus(ctx context.Context) StoreStatus {
	st := StoreStatus{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if u.inspector == nil {
		st.Database = "⚠️  Available but not initialized"
	} else {
		st.Database = "✅ Available"
		st.ConnectionStatus = "Connected"
		tables, err := u.inspector.ListTables(ctx, maxListedTables)
		if err != nil {
			st.Database = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), 50))
		} else {
			st.Collections = tables
			st.Database = "✅ Connected & Working"
		}
	}

	st.DatabaseURL = setFlag(u.endpointConfigured)
	st.DatabaseName = setFlag(u.tablesConfigured)
	return st
}

func setFlag(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
