package controller

import (
	"errors"
	"net/http"

	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// GetAll godoc
// @Summary Marketplace de recursos
// @Tags resources
// @Produce  json
// @Success 200 {array} model.Resource
// @Router /api/recursos [get]
func (c *ResourceController) GetAll(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.ResourceService.All())
}

// GetPurchased godoc
// @Summary Recursos comprados
// @Tags resources
// @Produce  json
// @Success 200 {array} model.Resource
// @Router /api/recursos/mis-compras [get]
func (c *ResourceController) GetPurchased(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.ResourceService.Purchased())
}

// Purchase godoc
// @Summary Comprar recurso
// @Tags resources
// @Accept  json
// @Produce  json
// @Param   body body service.PurchaseRequest true "Recurso a comprar"
// @Success 200 {object} object
// @Failure 404 {object} util.Response "recurso inexistente"
// @Router /api/recursos/comprar [post]
func (c *ResourceController) Purchase(ctx *gin.Context) {
	var req service.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ResourceService.Purchase(req.ResourceID); err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Download godoc
// @Summary Descargar recurso
// @Description Devuelve la URL de descarga para recursos gratuitos o comprados
// @Tags resources
// @Accept  json
// @Produce  json
// @Param   body body service.PurchaseRequest true "Recurso a descargar"
// @Success 200 {object} service.DownloadResponse
// @Failure 403 {object} util.Response "recurso no comprado"
// @Router /api/recursos/descargar [post]
func (c *ResourceController) Download(ctx *gin.Context) {
	var req service.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.ResourceService.Download(req.ResourceID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrResourceNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrResourceNotOwned):
			util.Error(ctx, http.StatusForbidden, "Recurso no comprado")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Upload godoc
// @Summary Subir archivo de recurso (admin)
// @Tags admin
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Archivo del recurso"
// @Success 200 {object} object "url del archivo subido"
// @Router /api/admin/custom/recursos/upload [post]
func (c *ResourceController) Upload(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	defer file.Close()

	url, err := c.ResourceService.Storage.Upload(
		ctx.Request.Context(),
		header.Filename,
		file,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

// GetFormularies godoc
// @Summary Formularios de estudio
// @Tags resources
// @Produce  json
// @Success 200 {array} model.Formulary
// @Router /api/formularios-estudio [get]
func (c *ResourceController) GetFormularies(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.ResourceService.Formularies())
}
