package routes

import (
	"pedido_venda/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, documentHandler *handlers.DocumentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id", orderHandler.UpdateOrder)
		orders.DELETE("/:order_id", orderHandler.DeleteOrder)

		// Ledger de itens.
		orders.POST("/:order_id/items", orderHandler.AddItem)
		orders.PATCH("/:order_id/items/:item_id", orderHandler.UpdateItem)
		orders.DELETE("/:order_id/items/:item_id", orderHandler.RemoveItem)

		// Documento gerado.
		orders.GET("/:order_id/export", documentHandler.ExportOrder)
		orders.POST("/:order_id/submit", documentHandler.SubmitOrder)
	}
}
