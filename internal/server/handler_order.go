package server

import (
	"errors"
	"net/http"

	"furnistore-be/internal/middleware"
	"furnistore-be/internal/order"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleMyOrders(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := s.orders.History(c.Request.Context(), current.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load orders")
		return
	}
	respondOK(c, http.StatusOK, "orders", orders)
}

func (s *Server) handleOrderDetail(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	o, err := s.orders.Detail(c.Request.Context(), current, orderID)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "order", o)
}

func (s *Server) handleAdminOrders(c *gin.Context) {
	filters := order.AdminFilters{
		Status: order.Status(c.Query("status")),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}

	result, err := s.orders.All(c.Request.Context(), filters)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "orders", result)
}

type updateOrderRequest struct {
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	Notes         *string `json:"notes"`
}

func (s *Server) handleAdminUpdateOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	o, err := s.orders.Update(c.Request.Context(), orderID, order.UpdateParams{
		Status:        order.Status(req.Status),
		PaymentStatus: order.PaymentStatus(req.PaymentStatus),
		Notes:         req.Notes,
	})
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "order updated", o)
}

func (s *Server) respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrNotOrderOwner):
		respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, order.ErrInvalidStatus), errors.Is(err, order.ErrInvalidPaymentStatus):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
