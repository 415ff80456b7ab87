package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/layout"
	"pedido_venda/internal/usecase/interfaces"
	mock_interfaces "pedido_venda/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type documentMocks struct {
	repo     *mock_interfaces.MockIOrderRepository
	renderer *mock_interfaces.MockIDocumentRenderer
	pdf      *mock_interfaces.MockIDocumentEncoder
	sheet    *mock_interfaces.MockISpreadsheetEncoder
	gateway  *mock_interfaces.MockISubmissionGateway
}

func newDocumentUseCase(t *testing.T, withGateway bool) (*DocumentUseCase, documentMocks) {
	ctrl := gomock.NewController(t)
	m := documentMocks{
		repo:     mock_interfaces.NewMockIOrderRepository(ctrl),
		renderer: mock_interfaces.NewMockIDocumentRenderer(ctrl),
		pdf:      mock_interfaces.NewMockIDocumentEncoder(ctrl),
		sheet:    mock_interfaces.NewMockISpreadsheetEncoder(ctrl),
		gateway:  mock_interfaces.NewMockISubmissionGateway(ctrl),
	}
	var gw interfaces.ISubmissionGateway
	if withGateway {
		gw = m.gateway
	}
	return NewDocumentUseCase(m.repo, m.renderer, m.pdf, m.sheet, gw, ""), m
}

func readyOrder() entities.Order {
	return entities.Order{ID: "o-1", Salesperson: "Ana", OrderCode: "PV-001"}
}

func TestValidateRequired(t *testing.T) {
	cases := []struct {
		name        string
		salesperson string
		code        string
		wantErr     bool
	}{
		{"both present", "Ana", "PV-1", false},
		{"missing salesperson", "", "PV-1", true},
		{"blank code", "Ana", "   ", true},
		{"both missing", "", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequired(entities.Order{Salesperson: tc.salesperson, OrderCode: tc.code})
			if tc.wantErr && !errors.Is(err, ErrMissingRequiredFields) {
				t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDocumentUseCase_Export(t *testing.T) {
	t.Run("blocked without salesperson", func(t *testing.T) {
		uc, m := newDocumentUseCase(t, true)
		o := readyOrder()
		o.Salesperson = ""
		m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)

		_, err := uc.Export(context.Background(), "o-1", entities.ExportFormatPDF)
		if !errors.Is(err, ErrMissingRequiredFields) {
			t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
		}
	})

	t.Run("pdf", func(t *testing.T) {
		uc, m := newDocumentUseCase(t, true)
		doc := layout.Document{Title: "x"}
		m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(readyOrder(), nil)
		m.renderer.EXPECT().Render(readyOrder()).Return(doc)
		m.pdf.EXPECT().Encode(doc).Return([]byte("%PDF-1.3"), nil)

		a, err := uc.Export(context.Background(), "o-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.FileName != "Order_Ana_PV-001.pdf" || a.ContentType != "application/pdf" || string(a.Data) != "%PDF-1.3" {
			t.Fatalf("unexpected artifact %+v", a)
		}
	})

	t.Run("xlsx", func(t *testing.T) {
		uc, m := newDocumentUseCase(t, true)
		m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(readyOrder(), nil)
		m.sheet.EXPECT().Encode(readyOrder()).Return([]byte("PK"), nil)

		a, err := uc.Export(context.Background(), "o-1", entities.ExportFormatXLSX)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.FileName != "Order_Ana_PV-001.xlsx" {
			t.Fatalf("unexpected file name %q", a.FileName)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		uc, m := newDocumentUseCase(t, true)
		m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(readyOrder(), nil)

		if _, err := uc.Export(context.Background(), "o-1", "docx"); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("encoder failure", func(t *testing.T) {
		uc, m := newDocumentUseCase(t, true)
		boom := errors.New("boom")
		m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(readyOrder(), nil)
		m.renderer.EXPECT().Render(gomock.Any()).Return(layout.Document{})
		m.pdf.EXPECT().Encode(gomock.Any()).Return(nil, boom)

		if _, err := uc.Export(context.Background(), "o-1", entities.ExportFormatPDF); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		uc, m := newDocumentUseCase(t, true)
		m.repo.EXPECT().GetByID(gomock.Any(), "o-9").Return(entities.Order{}, nil)

		if _, err := uc.Export(context.Background(), "o-9", entities.ExportFormatPDF); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func expectPDF(m documentMocks) {
	m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(readyOrder(), nil)
	m.renderer.EXPECT().Render(gomock.Any()).Return(layout.Document{})
	m.pdf.EXPECT().Encode(gomock.Any()).Return([]byte("%PDF-1.3"), nil)
}

func TestDocumentUseCase_Submit(t *testing.T) {
	t.Run("blocked without order code sends nothing", func(t *testing.T) {
		uc, m := newDocumentUseCase(t, true)
		o := readyOrder()
		o.OrderCode = ""
		m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(o, nil)

		if _, err := uc.Submit(context.Background(), "o-1"); !errors.Is(err, ErrMissingRequiredFields) {
			t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
		}
	})

	t.Run("delivered", func(t *testing.T) {
		uc, m := newDocumentUseCase(t, true)
		expectPDF(m)
		m.gateway.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req entities.SubmissionRequest) error {
				if req.Salesperson != "Ana" || req.OrderCode != "PV-001" || req.FileName != "Order_Ana_PV-001.pdf" {
					t.Errorf("unexpected request %+v", req)
				}
				if req.DocumentBase64 != base64.StdEncoding.EncodeToString([]byte("%PDF-1.3")) {
					t.Errorf("unexpected document payload %q", req.DocumentBase64)
				}
				return nil
			})

		res, err := uc.Submit(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Delivered() || res.Message != "O PDF foi enviado para "+DefaultFinanceMailbox {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	fallbacks := []struct {
		name   string
		err    error
		reason string
	}{
		{"server error", fmt.Errorf("%w: status=500", interfaces.ErrSubmissionRejected), "rejected"},
		{"unreachable", fmt.Errorf("%w: dial tcp: refused", interfaces.ErrSubmissionUnavailable), "unavailable"},
		{"timeout", fmt.Errorf("%w: %w", interfaces.ErrSubmissionUnavailable, context.DeadlineExceeded), "timeout"},
	}
	for _, tc := range fallbacks {
		t.Run("fallback on "+tc.name, func(t *testing.T) {
			uc, m := newDocumentUseCase(t, true)
			expectPDF(m)
			m.gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

			res, err := uc.Submit(context.Background(), "o-1")
			if err != nil {
				t.Fatalf("fallback must not be an error, got %v", err)
			}
			if res.Delivered() || res.Status != entities.SubmissionStatusLocalOnly {
				t.Fatalf("expected local-only result, got %+v", res)
			}
			if res.Message != MsgSubmissionFallback || res.FailureReason != tc.reason {
				t.Fatalf("unexpected fallback %+v", res)
			}
			if string(res.Artifact.Data) != "%PDF-1.3" {
				t.Fatalf("expected the document for local save")
			}
		})
	}

	t.Run("no gateway configured", func(t *testing.T) {
		uc, m := newDocumentUseCase(t, false)
		expectPDF(m)

		res, err := uc.Submit(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.SubmissionStatusLocalOnly || res.FailureReason != "not_configured" {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}
