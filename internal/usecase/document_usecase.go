package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/usecase/interfaces"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	DefaultFinanceMailbox = "financeiro@agrovida.com.br"

	MsgSubmissionSentTitle     = "Pedido enviado com sucesso!"
	MsgSubmissionFallbackTitle = "PDF baixado com sucesso!"
	MsgSubmissionFallback      = "O envio automático por e-mail requer configuração do backend."
)

// IDocumentUseCase builds the order document and hands it to the finance
// team.
//
// Both operations are blocked by the required-field gate: without a
// salesperson and an order code nothing is rendered or sent.

type IDocumentUseCase interface {
	Export(ctx context.Context, id string, format entities.ExportFormat) (entities.Artifact, error)
	Submit(ctx context.Context, id string) (entities.SubmissionResult, error)
}

type DocumentUseCase struct {
	orders    interfaces.IOrderRepository
	renderer  interfaces.IDocumentRenderer
	pdf       interfaces.IDocumentEncoder
	sheet     interfaces.ISpreadsheetEncoder
	gateway   interfaces.ISubmissionGateway
	recipient string
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

// NewDocumentUseCase wires the document pipeline. gateway may be nil, in
// which case every submission falls back to local save.
func NewDocumentUseCase(
	orders interfaces.IOrderRepository,
	renderer interfaces.IDocumentRenderer,
	pdf interfaces.IDocumentEncoder,
	sheet interfaces.ISpreadsheetEncoder,
	gateway interfaces.ISubmissionGateway,
	recipient string,
) *DocumentUseCase {
	if strings.TrimSpace(recipient) == "" {
		recipient = DefaultFinanceMailbox
	}
	return &DocumentUseCase{
		orders:    orders,
		renderer:  renderer,
		pdf:       pdf,
		sheet:     sheet,
		gateway:   gateway,
		recipient: recipient,
	}
}

func (u *DocumentUseCase) Export(ctx context.Context, id string, format entities.ExportFormat) (entities.Artifact, error) {
	order, err := u.loadForDocument(ctx, id)
	if err != nil {
		return entities.Artifact{}, err
	}
	return BuildArtifact(order, format, u.renderer, u.pdf, u.sheet)
}

// Submit renders the PDF and posts it to the submission endpoint. Any
// delivery failure is turned into a local-only result that still carries the
// document; only gate, lookup and encoding failures are returned as errors.
func (u *DocumentUseCase) Submit(ctx context.Context, id string) (entities.SubmissionResult, error) {
	order, err := u.loadForDocument(ctx, id)
	if err != nil {
		return entities.SubmissionResult{}, err
	}

	artifact, err := BuildArtifact(order, entities.ExportFormatPDF, u.renderer, u.pdf, u.sheet)
	if err != nil {
		return entities.SubmissionResult{}, err
	}

	if u.gateway == nil {
		log.Printf("[document][usecase] submit fallback order_id=%s reason=not_configured", order.ID)
		return localOnly(artifact, "not_configured"), nil
	}

	req := entities.SubmissionRequest{
		Salesperson:    order.Salesperson,
		OrderCode:      order.OrderCode,
		DocumentBase64: base64.StdEncoding.EncodeToString(artifact.Data),
		FileName:       artifact.FileName,
	}
	log.Printf("[document][usecase] submit start order_id=%s file_name=%s", order.ID, artifact.FileName)

	if err := u.gateway.Send(ctx, req); err != nil {
		reason := failureReason(err)
		log.Printf("[document][usecase] submit fallback order_id=%s reason=%s err=%v", order.ID, reason, err)
		return localOnly(artifact, reason), nil
	}

	log.Printf("[document][usecase] submit success order_id=%s", order.ID)
	return entities.SubmissionResult{
		Status:   entities.SubmissionStatusSent,
		Title:    MsgSubmissionSentTitle,
		Message:  "O PDF foi enviado para " + u.recipient,
		Artifact: artifact,
	}, nil
}

func (u *DocumentUseCase) loadForDocument(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if err := ValidateRequired(order); err != nil {
		log.Printf("[document][usecase] blocked order_id=%s err=%v", order.ID, err)
		return entities.Order{}, err
	}
	return order, nil
}

// BuildArtifact renders and encodes order in the requested format. An empty
// format means PDF.
func BuildArtifact(
	order entities.Order,
	format entities.ExportFormat,
	renderer interfaces.IDocumentRenderer,
	pdf interfaces.IDocumentEncoder,
	sheet interfaces.ISpreadsheetEncoder,
) (entities.Artifact, error) {
	if format == "" {
		format = entities.ExportFormatPDF
	}

	var data []byte
	switch format {
	case entities.ExportFormatPDF:
		doc := renderer.Render(order)
		for _, s := range doc.Substitutions {
			log.Printf("[document][render] substitution order_id=%s note=%q", order.ID, s)
		}
		b, err := pdf.Encode(doc)
		if err != nil {
			return entities.Artifact{}, fmt.Errorf("encode pdf: %w", err)
		}
		data = b
	case entities.ExportFormatXLSX:
		b, err := sheet.Encode(order)
		if err != nil {
			return entities.Artifact{}, fmt.Errorf("encode xlsx: %w", err)
		}
		data = b
	default:
		return entities.Artifact{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return entities.Artifact{
		FileName:    entities.DocumentFileName(order.Salesperson, order.OrderCode, format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func localOnly(artifact entities.Artifact, reason string) entities.SubmissionResult {
	return entities.SubmissionResult{
		Status:        entities.SubmissionStatusLocalOnly,
		Title:         MsgSubmissionFallbackTitle,
		Message:       MsgSubmissionFallback,
		FailureReason: reason,
		Artifact:      artifact,
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, interfaces.ErrSubmissionRejected):
		return "rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, interfaces.ErrSubmissionUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
