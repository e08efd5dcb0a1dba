package handler

import (
	"errors"
	"net/http"

	"food_order/internal/middleware"
	"food_order/internal/model"
	"food_order/internal/service"
	"food_order/internal/validation"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order related requests
type OrderHandler struct {
	service service.OrderService
	devMode bool
}

// NewOrderHandler creates a new OrderHandler. devMode adds error details to 500 responses.
func NewOrderHandler(s service.OrderService, devMode bool) *OrderHandler {
	return &OrderHandler{service: s, devMode: devMode}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, bindFieldErrors(err))
		return
	}

	// user_id 0 is a guest order, same as null.
	if req.UserID != nil && *req.UserID == 0 {
		req.UserID = nil
	}
	// A signed-in customer placing an order without user_id owns it.
	if req.UserID == nil {
		if claims, ok := middleware.ClaimsFromContext(c); ok {
			userID := claims.UserID
			req.UserID = &userID
		}
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			validationFailed(c, verr.Fields)
			return
		}
		serverError(c, h.devMode, "Order processing failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		serverError(c, h.devMode, "Failed to fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.service.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		serverError(c, h.devMode, "Failed to fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrderStatus(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	view, err := h.service.GetOrderStatus(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		serverError(c, h.devMode, "Failed to fetch order status", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req model.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !model.IsValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	orderID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	order, err := h.service.UpdateOrderStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		default:
			serverError(c, h.devMode, "Failed to update order status", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated", "order": order})
}

// RegisterOrderRoutes registers order routes. When adminMW is nil, listing all
// orders and changing their status stay open.
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, authMW, optionalAuthMW, adminMW gin.HandlerFunc) {
	staffOnly := []gin.HandlerFunc{}
	if adminMW != nil {
		staffOnly = append(staffOnly, authMW, adminMW)
	}

	orderRoutes := rg.Group("/orders")
	{
		orderRoutes.POST("", optionalAuthMW, h.CreateOrder)
		orderRoutes.GET("", append(staffOnly, h.ListOrders)...)
		orderRoutes.GET("/mine", authMW, h.ListMyOrders)
		orderRoutes.GET("/:id/status", h.GetOrderStatus)
		orderRoutes.PUT("/:id/status", append(staffOnly, h.UpdateOrderStatus)...)
	}
}
