package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"plumbing_estimator/internal/adapter/http/handlers/mocks"
	"plumbing_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRootHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDiagnosticsUseCase(ctrl)
	h := NewRootHandler(uc)

	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/test", h.StoreDiagnostics)

	t.Run("root", func(t *testing.T) {
		w := get(r, "/")
		if w.Code != http.StatusOK || w.Body.String() != `{"message":"Plumbing API running"}` {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("diagnostics", func(t *testing.T) {
		uc.EXPECT().StoreStatus(gomock.Any()).Return(usecase.StoreStatus{
			Backend:          "✅ Running",
			Database:         "✅ Connected & Working",
			DatabaseURL:      "✅ Set",
			DatabaseName:     "✅ Set",
			ConnectionStatus: "Connected",
			Collections:      []string{"quotes", "services"},
		})

		w := get(r, "/test")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["connection_status"] != "Connected" {
			t.Fatalf("unexpected body: %v", body)
		}
		if cols, ok := body["collections"].([]any); !ok || len(cols) != 2 {
			t.Fatalf("unexpected collections: %v", body["collections"])
		}
	})
}
