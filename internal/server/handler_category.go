package server

import (
	"errors"
	"net/http"

	"furnistore-be/internal/category"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleCategoryTree(c *gin.Context) {
	tree, err := s.categories.Tree(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list categories")
		return
	}
	respondOK(c, http.StatusOK, "categories", tree)
}

func (s *Server) handleCategoryProducts(c *gin.Context) {
	s.categoryProducts(c, false)
}

func (s *Server) handleParentCategoryProducts(c *gin.Context) {
	s.categoryProducts(c, true)
}

func (s *Server) categoryProducts(c *gin.Context, byParent bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	var (
		result any
		err    error
	)
	if byParent {
		result, err = s.categories.ProductsByParent(c.Request.Context(), id, page, limit)
	} else {
		result, err = s.categories.Products(c.Request.Context(), id, page, limit)
	}
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to list category products")
		return
	}
	respondOK(c, http.StatusOK, "category products", result)
}
