package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vedicjivan/services/admin"
	"vedicjivan/utils"
)

type AdminHandler struct {
	Admin admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Admin: svc}
}

// DashboardHandler returns the landing-page summary.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	dash, err := h.Admin.Dashboard(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build dashboard", err.Error())
		return
	}

	c.JSON(http.StatusOK, dash)
}

// StatsHandler returns aggregate reporting with 30-day series.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Admin.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build stats", err.Error())
		return
	}

	c.JSON(http.StatusOK, stats)
}
