package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health and connectivity probes.
type SystemHandler struct {
	DB *sql.DB
}

func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "advocate directory api running"})
}

func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	var count int
	if err := h.DB.QueryRowContext(c.Request.Context(), "SELECT COUNT(*) FROM advocates").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "advocates_in_db": count})
}
