package controller

import (
	"errors"
	"net/http"

	"estudiapro_client/internal/model"
	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

// Login godoc
// @Summary Iniciar sesión
// @Description Autentica con email o username y devuelve un token de sesión
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body service.LoginRequest true "Credenciales"
// @Success 200 {object} object "token y perfil"
// @Failure 401 {object} util.Response "credenciales inválidas"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Authenticate(req.Identifier(), req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, "Credenciales inválidas")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	token, err := c.AuthService.IssueToken(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// Bare shape: the client dispatcher decodes {token, user} directly.
	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  c.UserService.Profile(),
	})
}

// Register godoc
// @Summary Registrar cuenta
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body service.RegisterRequest true "Datos de registro"
// @Success 200 {object} object
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// The demo backend has a single fixed account; registration signs the
	// caller into it.
	profile := c.UserService.Profile()
	token, err := c.AuthService.IssueToken(model.NormalizeUser(profile))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    profile,
	})
}

// Verify godoc
// @Summary Verificar sesión
// @Tags auth
// @Produce  json
// @Success 200 {object} object "valid y perfil"
// @Router /api/auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  c.UserService.Profile(),
	})
}

// Logout godoc
// @Summary Cerrar sesión
// @Tags auth
// @Produce  json
// @Success 200 {object} object
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
