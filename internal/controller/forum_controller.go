package controller

import (
	"net/http"

	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"

	"github.com/gin-gonic/gin"
)

type ForumController struct {
	ForumService *service.ForumService
}

func NewForumController(forumService *service.ForumService) *ForumController {
	return &ForumController{ForumService: forumService}
}

// GetTopics godoc
// @Summary Temas del foro
// @Tags forums
// @Produce  json
// @Success 200 {array} model.ForumTopic
// @Router /api/foro [get]
func (c *ForumController) GetTopics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.ForumService.All())
}

// CreateTopic godoc
// @Summary Crear tema
// @Tags forums
// @Accept  json
// @Produce  json
// @Param   body body service.CreateTopicRequest true "Tema nuevo"
// @Success 200 {object} service.CreateTopicResponse
// @Router /api/foro [post]
func (c *ForumController) CreateTopic(ctx *gin.Context) {
	var req service.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic := c.ForumService.CreateTopic(req)
	ctx.JSON(http.StatusOK, service.CreateTopicResponse{Success: true, Topic: topic})
}

// GetTopic godoc
// @Summary Detalle de tema
// @Tags forums
// @Produce  json
// @Param   id path string true "ID del tema"
// @Success 200 {object} model.ForumTopicDetail
// @Router /api/foro/{id} [get]
func (c *ForumController) GetTopic(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.ForumService.Topic(ctx.Param("id")))
}
