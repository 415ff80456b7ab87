package handlers

import (
	"errors"
	"log"
	"net/http"
	request "pedido_venda/internal/adapter/http/dto/request"
	response "pedido_venda/internal/adapter/http/dto/response"
	"pedido_venda/internal/usecase"
	"pedido_venda/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidItemPayload  = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)
)

// OrderHandler exposes the order session and its line-item ledger.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder opens a new order session with the form defaults.
//
// @Summary     Create order session
// @Tags        orders
// @Produce     json
// @Success     201 {object} response.OrderResponse
// @Router      /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	order, err := h.usecase.CreateOrder(c.Request.Context())
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// @Summary     Get order
// @Tags        orders
// @Produce     json
// @Param       order_id path string true "Order ID"
// @Success     200 {object} response.OrderResponse
// @Failure     404 {object} pkg.HTTPError
// @Router      /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrder applies a partial update. Only fields present in the body
// change; line items are edited through the item endpoints.
//
// @Summary     Update order fields
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       order_id path string true "Order ID"
// @Param       body body request.UpdateOrderRequest true "Fields to change"
// @Success     200 {object} response.OrderResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /orders/{order_id} [patch]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrder(c.Request.Context(), c.Param("order_id"), payload.ToPatch())
	if err != nil {
		log.Printf("[order][handler] update failed order_id=%s err=%v", c.Param("order_id"), err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// @Summary     Discard order session
// @Tags        orders
// @Param       order_id path string true "Order ID"
// @Success     204
// @Failure     404 {object} pkg.HTTPError
// @Router      /orders/{order_id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.DeleteOrder(c.Request.Context(), c.Param("order_id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary     Add empty line item
// @Tags        items
// @Produce     json
// @Param       order_id path string true "Order ID"
// @Success     201 {object} response.LineItemResponse
// @Failure     404 {object} pkg.HTTPError
// @Router      /orders/{order_id}/items [post]
func (h *OrderHandler) AddItem(c *gin.Context) {
	item, err := h.usecase.AddItem(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

// UpdateItem edits a single column of a line item and returns the item with
// its recomputed total.
//
// @Summary     Edit line item field
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       order_id path string true "Order ID"
// @Param       item_id path string true "Line item ID"
// @Param       body body request.UpdateItemRequest true "Field and value"
// @Success     200 {object} response.LineItemResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Router      /orders/{order_id}/items/{item_id} [patch]
func (h *OrderHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	update, err := payload.ToItemUpdate(c.Param("item_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("order_id"), update)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLineItem(item))
}

// RemoveItem answers 204 whether or not the item existed.
//
// @Summary     Remove line item
// @Tags        items
// @Param       order_id path string true "Order ID"
// @Param       item_id path string true "Line item ID"
// @Success     204
// @Failure     404 {object} pkg.HTTPError
// @Router      /orders/{order_id}/items/{item_id} [delete]
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	orderID, itemID := c.Param("order_id"), c.Param("item_id")
	removed, err := h.usecase.RemoveItem(c.Request.Context(), orderID, itemID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !removed {
		log.Printf("[order][handler] remove item no-op order_id=%s item_id=%s", orderID, itemID)
	}
	c.Status(http.StatusNoContent)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOption):
		return pkg.NewDomainErrorSimple("INVALID_OPTION", "Invalid option value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownItemField), errors.Is(err, request.ErrInvalidItemField):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_FIELD", "Unknown line item field", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidItemValue):
		return errInvalidItemPayload
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
