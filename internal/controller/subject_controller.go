package controller

import (
	"errors"
	"net/http"

	"estudiapro_client/internal/model"
	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	SubjectService *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{SubjectService: subjectService}
}

// GetCatalog godoc
// @Summary Catálogo de cursos
// @Tags subjects
// @Produce  json
// @Success 200 {array} model.Subject
// @Router /api/cursos [get]
func (c *SubjectController) GetCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.SubjectService.Catalog())
}

// GetUserSubjects godoc
// @Summary Cursos inscritos
// @Tags subjects
// @Produce  json
// @Success 200 {array} model.UserSubject
// @Router /api/mis-cursos [get]
func (c *SubjectController) GetUserSubjects(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.SubjectService.UserSubjects())
}

// Enroll godoc
// @Summary Inscribir curso
// @Tags subjects
// @Accept  json
// @Produce  json
// @Param   body body service.AddSubjectRequest true "Curso a inscribir"
// @Success 200 {object} object
// @Failure 404 {object} util.Response "curso inexistente"
// @Router /api/mis-cursos/inscribir [post]
func (c *SubjectController) Enroll(ctx *gin.Context) {
	var req service.AddSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SubjectService.AddSubject(req.SubjectID); err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"subjects": c.SubjectService.UserSubjects(),
	})
}

// UpdateExamDate godoc
// @Summary Actualizar fecha de examen
// @Tags subjects
// @Accept  json
// @Produce  json
// @Param   body body service.ExamDateRequest true "Fecha de examen"
// @Success 200 {object} object
// @Router /api/mis-cursos/fecha-examen [post]
func (c *SubjectController) UpdateExamDate(ctx *gin.Context) {
	var req service.ExamDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.SubjectService.UpdateExamDate(req.SubjectID, req.ExamDate)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Admin CRUD over the catalog.

func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var subject model.Subject
	if err := ctx.ShouldBindJSON(&subject); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.SubjectService.CreateSubject(subject)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	var subject model.Subject
	if err := ctx.ShouldBindJSON(&subject); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	subject.ID = ctx.Param("id")

	if err := c.SubjectService.UpdateSubject(subject); err != nil {
		util.NotFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	if err := c.SubjectService.DeleteSubject(ctx.Param("id")); err != nil {
		util.NotFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
