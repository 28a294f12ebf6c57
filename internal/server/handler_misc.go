package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	respondOK(c, http.StatusOK, "ok", gin.H{"database": "up"})
}

func (s *Server) handleTest(c *gin.Context) {
	respondOK(c, http.StatusOK, "API is running", nil)
}

// pathID parses an int64 path parameter and writes a 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		respondError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}
