package server

import (
	"errors"
	"net/http"
	"strconv"

	"furnistore-be/internal/middleware"
	"furnistore-be/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func parseDecimalQuery(c *gin.Context, name string) *decimal.Decimal {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

func parseIDQuery(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil
	}
	return &id
}

func (s *Server) handleListProducts(c *gin.Context) {
	filters := product.ListFilters{
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 10),
		CategoryID: parseIDQuery(c, "categoryId"),
		MinPrice:   parseDecimalQuery(c, "minPrice"),
		MaxPrice:   parseDecimalQuery(c, "maxPrice"),
		Brand:      c.Query("brand"),
		Material:   c.Query("material"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}

	result, err := s.products.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list products")
		return
	}
	respondOK(c, http.StatusOK, "products", result)
}

func (s *Server) handleSearchProducts(c *gin.Context) {
	filters := product.SearchFilters{
		Query:      c.Query("q"),
		CategoryID: parseIDQuery(c, "categoryId"),
		MinPrice:   parseDecimalQuery(c, "minPrice"),
		MaxPrice:   parseDecimalQuery(c, "maxPrice"),
		InStock:    c.Query("inStock") == "true",
	}

	products, err := s.products.Search(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "search failed")
		return
	}
	respondOK(c, http.StatusOK, "search results", products)
}

func (s *Server) handleGetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := s.products.GetByID(c.Request.Context(), id)
	if err != nil {
		s.respondProductError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "product", p)
}

func (s *Server) handleGetProductByCode(c *gin.Context) {
	p, err := s.products.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		s.respondProductError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "product", p)
}

func (s *Server) handleRelatedProducts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	products, err := s.products.Related(c.Request.Context(), id)
	if err != nil {
		s.respondProductError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "related products", products)
}

type productRequest struct {
	ProductName   string   `json:"productName" binding:"required"`
	ProductCode   string   `json:"productCode" binding:"required"`
	CategoryID    int64    `json:"categoryId" binding:"required"`
	Price         string   `json:"price" binding:"required"`
	Description   string   `json:"description"`
	Material      string   `json:"material"`
	Color         string   `json:"color"`
	Dimensions    string   `json:"dimensions"`
	Weight        string   `json:"weight"`
	Brand         string   `json:"brand"`
	StockQuantity int      `json:"stockQuantity"`
	ImageURLs     []string `json:"imageUrls"`
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		respondError(c, http.StatusBadRequest, "invalid price")
		return
	}

	p, err := s.products.Create(c.Request.Context(), product.CreateParams{
		ProductName:   req.ProductName,
		ProductCode:   req.ProductCode,
		CategoryID:    req.CategoryID,
		Price:         price,
		Description:   req.Description,
		Material:      req.Material,
		Color:         req.Color,
		Dimensions:    req.Dimensions,
		Weight:        req.Weight,
		Brand:         req.Brand,
		StockQuantity: req.StockQuantity,
		ImageURLs:     req.ImageURLs,
	}, current.UserID)
	if err != nil {
		s.respondProductError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "product created", p)
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		respondError(c, http.StatusBadRequest, "invalid price")
		return
	}

	p, err := s.products.Update(c.Request.Context(), id, product.UpdateParams{
		ProductName: req.ProductName,
		CategoryID:  req.CategoryID,
		Price:       price,
		Description: req.Description,
		Material:    req.Material,
		Color:       req.Color,
		Dimensions:  req.Dimensions,
		Weight:      req.Weight,
		Brand:       req.Brand,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		s.respondProductError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "product updated", p)
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.products.Delete(c.Request.Context(), id); err != nil {
		s.respondProductError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "product deleted", nil)
}

type adjustStockRequest struct {
	StockQuantity *int   `json:"stockQuantity" binding:"required"`
	Reason        string `json:"reason"`
}

func (s *Server) handleAdjustStock(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.products.AdjustStock(c.Request.Context(), id, *req.StockQuantity, req.Reason, current.UserID)
	if err != nil {
		s.respondProductError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "stock updated", p)
}

type toggleStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

func (s *Server) handleToggleStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req toggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.products.ToggleStatus(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		s.respondProductError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "status updated", p)
}

func (s *Server) handleInventoryLogs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	page, err := s.products.InventoryLogs(c.Request.Context(), id,
		queryInt(c, "page", 1), queryInt(c, "limit", 10))
	if err != nil {
		s.respondProductError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "inventory logs", page)
}

func (s *Server) respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, product.ErrCodeExists):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, product.ErrInvalidStock):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
