package controller

import (
	"errors"
	"net/http"

	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetProfile godoc
// @Summary Perfil de la sesión
// @Description Devuelve el perfil en su forma cruda; el cliente lo normaliza
// @Tags users
// @Produce  json
// @Success 200 {object} model.RawProfile
// @Router /api/auth/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.UserService.Profile())
}

// UpdateProfile godoc
// @Summary Actualizar perfil
// @Tags users
// @Accept  json
// @Produce  json
// @Param   body body service.UpdateProfileRequest true "Campos a actualizar"
// @Success 200 {object} model.RawProfile
// @Router /api/users/profile [patch]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, c.UserService.UpdateProfile(req))
}

// GetUsers godoc
// @Summary Listado de usuarios (admin)
// @Tags admin
// @Produce  json
// @Success 200 {array} model.User
// @Router /api/admin/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.UserService.AllUsers())
}

// ManageUser godoc
// @Summary Gestionar usuario (admin)
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path string true "ID del usuario"
// @Param   body body service.ManageUserRequest true "Acción"
// @Success 200 {object} object
// @Failure 404 {object} util.Response "usuario inexistente"
// @Router /api/admin/users/{id} [patch]
func (c *UserController) ManageUser(ctx *gin.Context) {
	var req service.ManageUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.ManageUser(ctx.Param("id"), req.Action); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
