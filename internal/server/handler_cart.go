package server

import (
	"errors"
	"net/http"

	"furnistore-be/internal/cart"
	"furnistore-be/internal/middleware"
	"furnistore-be/internal/user"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleGetCart(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	targetID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if current.Role != user.RoleAdmin && current.UserID != targetID {
		respondError(c, http.StatusForbidden, "cannot read another account's cart")
		return
	}

	view, err := s.carts.View(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load cart")
		return
	}
	respondOK(c, http.StatusOK, "cart", view)
}

type cartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

func (s *Server) handleAddToCart(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := s.carts.AddItem(c.Request.Context(), current.UserID, req.ProductID, req.Quantity)
	if err != nil {
		s.respondCartError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "item added", view)
}

func (s *Server) handleUpdateCartQuantity(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	view, err := s.carts.UpdateQuantity(c.Request.Context(), current.UserID, req.ProductID, req.Quantity)
	if err != nil {
		s.respondCartError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "quantity updated", view)
}

func (s *Server) handleRemoveFromCart(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	view, err := s.carts.RemoveItem(c.Request.Context(), current.UserID, req.ProductID)
	if err != nil {
		s.respondCartError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "item removed", view)
}

func (s *Server) handleClearCart(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)

	view, err := s.carts.Clear(c.Request.Context(), current.UserID)
	if err != nil {
		s.respondCartError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "cart cleared", view)
}

func (s *Server) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrProductUnavailable):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrInsufficientStock), errors.Is(err, cart.ErrInvalidQuantity):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
