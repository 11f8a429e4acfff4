package controller

import (
	"errors"
	"net/http"

	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

// GetAll godoc
// @Summary Simulacros disponibles
// @Tags exams
// @Produce  json
// @Success 200 {array} model.Exam
// @Router /api/examenes [get]
func (c *ExamController) GetAll(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.ExamService.All())
}

// Start godoc
// @Summary Iniciar simulacro
// @Tags exams
// @Accept  json
// @Produce  json
// @Param   body body service.StartExamRequest true "Examen a iniciar"
// @Success 200 {object} model.Exam
// @Failure 404 {object} util.Response "examen inexistente"
// @Router /api/examenes/iniciar [post]
func (c *ExamController) Start(ctx *gin.Context) {
	var req service.StartExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.ExamService.Start(req.ExamID)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, exam)
}

// Submit godoc
// @Summary Calificar simulacro
// @Description Califica las respuestas y devuelve calificación sobre 100
// @Tags exams
// @Accept  json
// @Produce  json
// @Param   body body service.SubmitExamRequest true "Respuestas por pregunta"
// @Success 200 {object} model.ExamResult
// @Failure 404 {object} util.Response "examen inexistente"
// @Router /api/examenes/enviar [post]
func (c *ExamController) Submit(ctx *gin.Context) {
	var req service.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ExamService.Submit(req.ExamID, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}
