package controller

import (
	"net/http"

	"estudiapro_client/internal/repository"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store *repository.Store
}

func NewHealthController(store *repository.Store) *HealthController {
	return &HealthController{Store: store}
}

// HealthCheck godoc
// @Summary Estado del servicio
// @Tags health
// @Produce  json
// @Success 200 {object} object
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"seeded": c.Store != nil,
	})
}
