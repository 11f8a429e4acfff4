package controller

import (
	"net/http"

	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"

	"github.com/gin-gonic/gin"
)

// ActivityController serves achievements and notifications.
type ActivityController struct {
	AchievementService  *service.AchievementService
	NotificationService *service.NotificationService
}

func NewActivityController(achievementService *service.AchievementService, notificationService *service.NotificationService) *ActivityController {
	return &ActivityController{
		AchievementService:  achievementService,
		NotificationService: notificationService,
	}
}

// GetUserAchievements godoc
// @Summary Logros del usuario
// @Tags activity
// @Produce  json
// @Success 200 {array} model.Achievement
// @Router /api/mis-logros [get]
func (c *ActivityController) GetUserAchievements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.AchievementService.UserAchievements())
}

// GetAllAchievements godoc
// @Summary Todos los logros
// @Tags activity
// @Produce  json
// @Success 200 {array} model.Achievement
// @Router /api/logros [get]
func (c *ActivityController) GetAllAchievements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.AchievementService.All())
}

// GetNotifications godoc
// @Summary Notificaciones del usuario
// @Tags activity
// @Produce  json
// @Success 200 {array} model.Notification
// @Router /api/notificaciones [get]
func (c *ActivityController) GetNotifications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.NotificationService.UserNotifications())
}

// MarkNotificationRead godoc
// @Summary Marcar notificación leída
// @Tags activity
// @Accept  json
// @Produce  json
// @Param   body body service.MarkReadRequest true "Notificación a marcar"
// @Success 200 {object} object
// @Router /api/notificaciones/leer [post]
func (c *ActivityController) MarkNotificationRead(ctx *gin.Context) {
	var req service.MarkReadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.NotificationService.MarkRead(req.NotificationID)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
