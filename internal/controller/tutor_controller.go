package controller

import (
	"errors"
	"net/http"

	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"

	"github.com/gin-gonic/gin"
)

type TutorController struct {
	TutorService *service.TutorService
}

func NewTutorController(tutorService *service.TutorService) *TutorController {
	return &TutorController{TutorService: tutorService}
}

// GetAll godoc
// @Summary Tutores disponibles
// @Tags tutors
// @Produce  json
// @Success 200 {array} model.Tutor
// @Router /api/tutores [get]
func (c *TutorController) GetAll(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.TutorService.All())
}

// Schedule godoc
// @Summary Agendar tutoría
// @Tags tutors
// @Accept  json
// @Produce  json
// @Param   body body service.ScheduleRequest true "Datos de la sesión"
// @Success 200 {object} object "confirmación con sesión"
// @Failure 404 {object} util.Response "tutor inexistente"
// @Router /api/tutores/agendar [post]
func (c *TutorController) Schedule(ctx *gin.Context) {
	var req service.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.TutorService.Schedule(req)
	if err != nil {
		if errors.Is(err, util.ErrTutorNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "session": session})
}
