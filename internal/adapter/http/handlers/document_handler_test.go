package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pedido_venda/internal/adapter/http/handlers/mocks"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDocumentRouter(h *DocumentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/orders/:order_id/export", h.ExportOrder)
	r.POST("/v1/orders/:order_id/submit", h.SubmitOrder)
	return r
}

func TestDocumentHandler_ExportOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pdf attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Export(gomock.Any(), "ord-1", entities.ExportFormat("")).Return(entities.Artifact{
			FileName:    "Order_Ana_PV-1.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.3"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", got)
		}
		if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=Order_Ana_PV-1.pdf" {
			t.Fatalf("expected attachment disposition, got %q", got)
		}
		if w.Body.String() != "%PDF-1.3" {
			t.Fatalf("expected pdf bytes, got %q", w.Body.String())
		}
	})

	t.Run("format query is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Export(gomock.Any(), "ord-1", entities.ExportFormatXLSX).Return(entities.Artifact{
			FileName:    "Order_Ana_PV-1.xlsx",
			ContentType: entities.ExportFormatXLSX.ContentType(),
			Data:        []byte("PK"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/export?format=XLSX", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != entities.ExportFormatXLSX.ContentType() {
			t.Fatalf("expected xlsx content type, got %q", got)
		}
	})

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "missing required fields",
			err:      fmt.Errorf("%w: salesperson", usecase.ErrMissingRequiredFields),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: "MISSING_REQUIRED_FIELDS",
		},
		{name: "unsupported format", err: usecase.ErrUnsupportedFormat, wantCode: http.StatusBadRequest, wantBody: "UNSUPPORTED_FORMAT"},
		{name: "order not found", err: usecase.ErrOrderNotFound, wantCode: http.StatusNotFound, wantBody: "ORDER_NOT_FOUND"},
		{name: "encoder failure", err: errors.New("encode pdf: broken"), wantCode: http.StatusInternalServerError, wantBody: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIDocumentUseCase(ctrl)
			r := newDocumentRouter(NewDocumentHandler(uc))

			uc.EXPECT().Export(gomock.Any(), "ord-1", gomock.Any()).Return(entities.Artifact{}, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/export?format=pdf", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if body := decodeBody(t, w); body["code"] != tc.wantBody {
				t.Fatalf("expected %s, got %v", tc.wantBody, body["code"])
			}
		})
	}

	t.Run("missing fields message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Export(gomock.Any(), "ord-1", gomock.Any()).Return(entities.Artifact{}, usecase.ErrMissingRequiredFields)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if body := decodeBody(t, w); body["message"] != MsgMissingRequiredFields {
			t.Fatalf("expected %q, got %v", MsgMissingRequiredFields, body["message"])
		}
	})
}

func TestDocumentHandler_SubmitOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), "ord-1").Return(entities.SubmissionResult{
			Status:   entities.SubmissionStatusSent,
			Title:    usecase.MsgSubmissionSentTitle,
			Message:  "O PDF foi enviado para financeiro@agrovida.com.br",
			Artifact: entities.Artifact{FileName: "Order_Ana_PV-1.pdf", Data: []byte("%PDF")},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "sent" {
			t.Fatalf("expected status sent, got %v", body["status"])
		}
		if body["file_name"] != "Order_Ana_PV-1.pdf" {
			t.Fatalf("expected file name, got %v", body["file_name"])
		}
		if body["document_base64"] != base64.StdEncoding.EncodeToString([]byte("%PDF")) {
			t.Fatalf("expected encoded document, got %v", body["document_base64"])
		}
	})

	t.Run("local fallback is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), "ord-1").Return(entities.SubmissionResult{
			Status:        entities.SubmissionStatusLocalOnly,
			Title:         usecase.MsgSubmissionFallbackTitle,
			Message:       usecase.MsgSubmissionFallback,
			FailureReason: "timeout",
			Artifact:      entities.Artifact{FileName: "Order_Ana_PV-1.pdf", Data: []byte("%PDF")},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "local_only" {
			t.Fatalf("expected status local_only, got %v", body["status"])
		}
		if body["message"] != usecase.MsgSubmissionFallback {
			t.Fatalf("expected fallback message, got %v", body["message"])
		}
		if body["failure_reason"] != "timeout" {
			t.Fatalf("expected failure reason timeout, got %v", body["failure_reason"])
		}
	})

	t.Run("blocked by required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), "ord-1").Return(entities.SubmissionResult{}, usecase.ErrMissingRequiredFields)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
