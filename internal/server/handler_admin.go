package server

import (
	"errors"
	"net/http"
	"time"

	"furnistore-be/internal/user"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDashboard(c *gin.Context) {
	stats, err := s.reporting.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	respondOK(c, http.StatusOK, "dashboard", stats)
}

func (s *Server) handleStockStats(c *gin.Context) {
	stats, err := s.reporting.StockStats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load stock stats")
		return
	}
	respondOK(c, http.StatusOK, "stock stats", stats)
}

// parseDateRange reads startDate/endDate query params (YYYY-MM-DD).
// The end date is inclusive, so one extra day is added.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end = end.AddDate(0, 0, 1)
	if !end.After(start) {
		respondError(c, http.StatusBadRequest, "endDate must not be before startDate")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (s *Server) handleRangeStats(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	stats, err := s.reporting.RangeStats(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load stats")
		return
	}
	respondOK(c, http.StatusOK, "stats", stats)
}

func (s *Server) handleRevenueChart(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	points, err := s.reporting.RevenueChart(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to build revenue chart")
		return
	}
	respondOK(c, http.StatusOK, "revenue chart", points)
}

func (s *Server) handleTopCustomers(c *gin.Context) {
	customers, err := s.reporting.TopCustomers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load top customers")
		return
	}
	respondOK(c, http.StatusOK, "top customers", customers)
}

func (s *Server) handleListCustomers(c *gin.Context) {
	customers, err := s.users.Customers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list customers")
		return
	}
	respondOK(c, http.StatusOK, "customers", customers)
}

type updateCustomerRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Email    string `json:"email"`
}

func (s *Server) handleUpdateCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := s.users.UpdateCustomer(c.Request.Context(), id, user.UpdateCustomerParams{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Email:    req.Email,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update customer")
		return
	}
	respondOK(c, http.StatusOK, "customer updated", nil)
}

func (s *Server) handleDisableCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.users.DisableCustomer(c.Request.Context(), id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to disable customer")
		return
	}
	respondOK(c, http.StatusOK, "customer disabled", nil)
}
