package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pedido_venda/internal/config"
	"pedido_venda/internal/layout"

	"github.com/gin-gonic/gin"
)

func testConfig() config.Config {
	return config.Config{
		GinMode:           gin.TestMode,
		Variant:           layout.VariantForm,
		Company:           layout.DefaultCompany,
		SubmissionTimeout: 2 * time.Second,
		SessionTTL:        time.Hour,
	}
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("expected json, got %q", w.Body.String())
	}
	return out
}

// fillOrder creates an order with one Fertilizer line and returns its id.
func fillOrder(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/v1/orders", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	id := decode(t, w)["id"].(string)

	w = do(t, r, http.MethodPatch, "/v1/orders/"+id, `{"salesperson":"Ana","order_code":"PV-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on patch, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/v1/orders/"+id+"/items", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on add item, got %d", w.Code)
	}
	itemID := decode(t, w)["id"].(string)

	for _, body := range []string{
		`{"field":"description","value":"Fertilizer"}`,
		`{"field":"quantity","value":"10"}`,
		`{"field":"unit_price","value":25.5}`,
	} {
		w = do(t, r, http.MethodPatch, "/v1/orders/"+id+"/items/"+itemID, body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on item edit %s, got %d", body, w.Code)
		}
	}
	return id
}

func TestRouter_Ping(t *testing.T) {
	r := NewRouter(testConfig())

	w := do(t, r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if decode(t, w)["message"] != "pong" {
		t.Fatalf("expected pong, got %s", w.Body.String())
	}
}

func TestRouter_OrderFlow(t *testing.T) {
	r := NewRouter(testConfig())

	t.Run("export blocked without identification", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/orders", "")
		id := decode(t, w)["id"].(string)

		w = do(t, r, http.MethodGet, "/v1/orders/"+id+"/export", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if decode(t, w)["code"] != "MISSING_REQUIRED_FIELDS" {
			t.Fatalf("expected MISSING_REQUIRED_FIELDS, got %s", w.Body.String())
		}
	})

	t.Run("ledger totals", func(t *testing.T) {
		id := fillOrder(t, r)

		w := do(t, r, http.MethodGet, "/v1/orders/"+id, "")
		body := decode(t, w)
		if body["grand_total"] != float64(255) {
			t.Fatalf("expected grand total 255, got %v", body["grand_total"])
		}
	})

	t.Run("pdf export", func(t *testing.T) {
		id := fillOrder(t, r)

		w := do(t, r, http.MethodGet, "/v1/orders/"+id+"/export?format=pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
			t.Fatalf("expected pdf body")
		}
		if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=Order_Ana_PV-1.pdf" {
			t.Fatalf("expected attachment name, got %q", got)
		}
	})

	t.Run("xlsx export", func(t *testing.T) {
		id := fillOrder(t, r)

		w := do(t, r, http.MethodGet, "/v1/orders/"+id+"/export?format=xlsx", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
			t.Fatalf("expected zip container")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		id := fillOrder(t, r)

		w := do(t, r, http.MethodGet, "/v1/orders/"+id+"/export?format=docx", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submit without endpoint falls back", func(t *testing.T) {
		id := fillOrder(t, r)

		w := do(t, r, http.MethodPost, "/v1/orders/"+id+"/submit", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decode(t, w)
		if body["status"] != "local_only" {
			t.Fatalf("expected local_only, got %v", body["status"])
		}
		if body["file_name"] != "Order_Ana_PV-1.pdf" {
			t.Fatalf("expected file name, got %v", body["file_name"])
		}
		if doc, _ := body["document_base64"].(string); doc == "" {
			t.Fatalf("expected inline document")
		}
	})

	t.Run("remove unknown item", func(t *testing.T) {
		id := fillOrder(t, r)

		w := do(t, r, http.MethodDelete, "/v1/orders/"+id+"/items/nope", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete session", func(t *testing.T) {
		id := fillOrder(t, r)

		if w := do(t, r, http.MethodDelete, "/v1/orders/"+id, ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := do(t, r, http.MethodGet, "/v1/orders/"+id, ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", w.Code)
		}
	})
}

func TestRouter_SubmitDelivered(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.SubmissionURL = srv.URL
	r := NewRouter(cfg)
	id := fillOrder(t, r)

	w := do(t, r, http.MethodPost, "/v1/orders/"+id+"/submit", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["status"] != "sent" {
		t.Fatalf("expected sent, got %v", body["status"])
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "financeiro@agrovida.com.br") {
		t.Fatalf("expected finance mailbox in message, got %q", msg)
	}
	if got["orderCode"] != "PV-1" || got["salesperson"] != "Ana" || got["fileName"] != "Order_Ana_PV-1.pdf" {
		t.Fatalf("expected submission payload, got %v", got)
	}
}
