package interfaces

import "context"

// IStoreInspector reports on the document store backing the service. Used by
// the diagnostic endpoint only.
type IStoreInspector interface {
	ListTables(ctx context.Context, max int) ([]string, error)
}
