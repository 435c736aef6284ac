package handlers

import (
	"net/http"

	"advocates/internal/services"
	"advocates/internal/validate"

	"github.com/gin-gonic/gin"
)

// AdvocateHandler exposes the read-only advocate endpoints.
type AdvocateHandler struct {
	Service services.AdvocateService
	Docs    services.ProfileDocService
}

// List handles GET /api/advocates.
func (h AdvocateHandler) List(c *gin.Context) {
	params, err := validate.List(c.Request.URL.Query())
	if err != nil {
		RespondListError(c, err)
		return
	}

	page, err := h.Service.List(c.Request.Context(), params)
	if err != nil {
		RespondListError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetByID handles GET /api/advocates/:id.
func (h AdvocateHandler) GetByID(c *gin.Context) {
	id, err := validate.ID(c.Param("id"))
	if err != nil {
		RespondItemError(c, err)
		return
	}

	advocate, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": advocate})
}

// ListByCity handles GET /api/advocates/by-city?city=...
// An unknown city yields an empty list, never 404.
func (h AdvocateHandler) ListByCity(c *gin.Context) {
	city, err := validate.CityParam(c.Request.URL.Query())
	if err != nil {
		RespondListError(c, err)
		return
	}

	advocates, err := h.Service.ListByCity(c.Request.Context(), city)
	if err != nil {
		RespondListError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": advocates})
}

// Stats handles GET /api/advocates/stats.
func (h AdvocateHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		RespondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// ProfilePDF handles GET /api/advocates/:id/profile.pdf.
func (h AdvocateHandler) ProfilePDF(c *gin.Context) {
	id, err := validate.ID(c.Param("id"))
	if err != nil {
		RespondItemError(c, err)
		return
	}

	pdf, filename, err := h.Docs.ProfileSheet(c.Request.Context(), id)
	if err != nil {
		RespondItemError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
