package server

import (
	"errors"
	"net/http"

	"furnistore-be/internal/checkout"
	"furnistore-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleCheckoutInfo(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	info, err := s.checkouts.Info(c.Request.Context(), current)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load checkout info")
		return
	}
	respondOK(c, http.StatusOK, "checkout info", info)
}

type placeOrderRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	PaymentMethod   string `json:"paymentMethod"`
	Notes           string `json:"notes"`
}

func (s *Server) handlePlaceOrder(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	placed, err := s.checkouts.PlaceOrder(c.Request.Context(), current, checkout.PlaceOrderParams{
		FullName:        req.FullName,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		var stockErr *checkout.InsufficientStockError
		switch {
		case errors.Is(err, checkout.ErrMissingShippingInfo),
			errors.Is(err, checkout.ErrInvalidPhone),
			errors.Is(err, checkout.ErrCartEmpty):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &stockErr):
			respondError(c, http.StatusBadRequest, stockErr.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	respondOK(c, http.StatusCreated, "order placed", placed)
}
