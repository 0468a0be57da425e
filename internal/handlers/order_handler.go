package handlers

import (
	"encoding/json"
	"little_lemon/internal/middleware"
	"little_lemon/internal/models"
	"little_lemon/internal/services"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	orders, err := h.orderService.ListOrders(middleware.Principal(c), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	order, err := h.orderService.CreateOrder(middleware.Principal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(middleware.Principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder serves both PUT and PATCH. Only the fields present in the body
// are considered, and each one is checked against the caller's role.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	patch, err := parseOrderPatch(body)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.orderService.UpdateOrder(middleware.Principal(c), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.orderService.DeleteOrder(middleware.Principal(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseOrderPatch(body map[string]json.RawMessage) (services.OrderPatch, error) {
	var patch services.OrderPatch
	for field := range body {
		patch.Fields = append(patch.Fields, field)
	}
	sort.Strings(patch.Fields)

	if raw, ok := body[services.FieldDeliveryCrew]; ok {
		if err := json.Unmarshal(raw, &patch.DeliveryCrew); err != nil {
			return patch, &services.ValidationError{Field: services.FieldDeliveryCrew, Message: "must be a user id or null"}
		}
	}
	if raw, ok := body[services.FieldStatus]; ok {
		if err := json.Unmarshal(raw, &patch.Status); err != nil {
			return patch, &services.ValidationError{Field: services.FieldStatus, Message: "must be a string"}
		}
	}
	if len(patch.Fields) == 0 {
		return patch, &services.ValidationError{Message: "no fields to update"}
	}
	return patch, nil
}
