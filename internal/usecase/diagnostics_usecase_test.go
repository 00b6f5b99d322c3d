package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	mock_interfaces "plumbing_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDiagnosticsUseCase_StoreStatus(t *testing.T) {
	t.Run("no store", func(t *testing.T) {
		uc := NewDiagnosticsUseCase(nil, false, true)
		st := uc.StoreStatus(context.Background())

		if st.Backend != "✅ Running" {
			t.Fatalf("unexpected backend: %q", st.Backend)
		}
		if st.Database != "⚠️  Available but not initialized" || st.ConnectionStatus != "Not Connected" {
			t.Fatalf("unexpected database status: %+v", st)
		}
		if st.DatabaseURL != "❌ Not Set" || st.DatabaseName != "✅ Set" {
			t.Fatalf("unexpected flags: %+v", st)
		}
		if st.Collections == nil || len(st.Collections) != 0 {
			t.Fatalf("expected empty collections, got %#v", st.Collections)
		}
	})

	t.Run("connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inspector := mock_interfaces.NewMockIStoreInspector(ctrl)
		uc := NewDiagnosticsUseCase(inspector, true, true)

		inspector.EXPECT().ListTables(gomock.Any(), 10).Return([]string{"quotes", "services"}, nil)

		st := uc.StoreStatus(context.Background())
		if st.Database != "✅ Connected & Working" || st.ConnectionStatus != "Connected" {
			t.Fatalf("unexpected status: %+v", st)
		}
		if len(st.Collections) != 2 || st.Collections[1] != "services" {
			t.Fatalf("unexpected collections: %v", st.Collections)
		}
	})

	t.Run("probe error is truncated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inspector := mock_interfaces.NewMockIStoreInspector(ctrl)
		uc := NewDiagnosticsUseCase(inspector, true, false)

		inspector.EXPECT().ListTables(gomock.Any(), 10).Return(nil, errors.New(strings.Repeat("x", 80)))

		st := uc.StoreStatus(context.Background())
		want := "⚠️  Connected but Error: " + strings.Repeat("x", 50)
		if st.Database != want {
			t.Fatalf("unexpected database status: %q", st.Database)
		}
		if len(st.Collections) != 0 {
			t.Fatalf("expected no collections, got %v", st.Collections)
		}
	})
}
