package handlers

import (
	"errors"
	"log"
	"mime"
	"net/http"
	response "pedido_venda/internal/adapter/http/dto/response"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/usecase"
	"pedido_venda/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

const MsgMissingRequiredFields = "Preencha o vendedor e o código"

// DocumentHandler exports and submits the rendered order document.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// ExportOrder streams the order as a downloadable PDF or XLSX file.
//
// @Summary     Export order document
// @Tags        documents
// @Produce     application/pdf
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       order_id path string true "Order ID"
// @Param       format query string false "pdf (default) or xlsx"
// @Success     200 {file} file
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Failure     422 {object} pkg.HTTPError
// @Router      /orders/{order_id}/export [get]
func (h *DocumentHandler) ExportOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	format := entities.ExportFormat(strings.ToLower(strings.TrimSpace(c.Query("format"))))
	log.Printf("[document][handler] export start order_id=%s format=%s", orderID, format)

	artifact, err := h.usecase.Export(c.Request.Context(), orderID, format)
	if err != nil {
		log.Printf("[document][handler] export failed order_id=%s err=%v", orderID, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.FileName}))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// SubmitOrder sends the PDF to the finance mailbox. A delivery failure still
// answers 200 with status local_only and the document inline.
//
// @Summary     Submit order to finance
// @Tags        documents
// @Produce     json
// @Param       order_id path string true "Order ID"
// @Success     200 {object} response.SubmissionResponse
// @Failure     404 {object} pkg.HTTPError
// @Failure     422 {object} pkg.HTTPError
// @Router      /orders/{order_id}/submit [post]
func (h *DocumentHandler) SubmitOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[document][handler] submit start order_id=%s", orderID)

	result, err := h.usecase.Submit(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[document][handler] submit failed order_id=%s err=%v", orderID, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[document][handler] submit done order_id=%s status=%s", orderID, result.Status)

	c.JSON(http.StatusOK, response.FromSubmission(result))
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", MsgMissingRequiredFields, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnsupportedFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Unsupported export format", http.StatusBadRequest)
	default:
		return mapOrderError(err)
	}
}
