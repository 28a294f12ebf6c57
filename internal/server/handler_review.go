package server

import (
	"errors"
	"net/http"

	"furnistore-be/internal/middleware"
	"furnistore-be/internal/review"

	"github.com/gin-gonic/gin"
)

type addReviewRequest struct {
	OrderID   int64  `json:"orderId" binding:"required"`
	ProductID int64  `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

func (s *Server) handleAddReview(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	rv, err := s.reviews.Add(c.Request.Context(), review.AddParams{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		UserID:    current.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, review.ErrNotPurchased):
			respondError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, review.ErrAlreadyReviewed):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to add review")
		}
		return
	}

	respondOK(c, http.StatusCreated, "review added", rv)
}

func (s *Server) handleListReviews(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	reviews, err := s.reviews.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list reviews")
		return
	}
	respondOK(c, http.StatusOK, "reviews", reviews)
}

func (s *Server) handleReviewSummary(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	agg, err := s.reviews.Summary(c.Request.Context(), productID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to compute rating summary")
		return
	}
	respondOK(c, http.StatusOK, "rating summary", agg)
}
