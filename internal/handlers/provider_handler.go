package handlers

import (
	"net/http"
	"strconv"

	"healthatlas_backend/internal/services"
	"healthatlas_backend/internal/services/dto"
	"healthatlas_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	*BaseHandler
	providerService services.ProviderService
}

func NewProviderHandler(base *BaseHandler, providerService services.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		BaseHandler:     base,
		providerService: providerService,
	}
}

// RegisterRoutes registers the provider intake routes under /api.
func (h *ProviderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	providers := rg.Group("/providers")
	{
		providers.POST("/apply", h.Apply)
		providers.GET("", h.List)
		providers.GET("/:id", h.Get)
	}
}

// Apply godoc
// @Summary  Submit a provider application with an optional credential file
// @Accept   multipart/form-data
// @Produce  json
// @Router   /api/providers/apply [post]
func (h *ProviderHandler) Apply(c *gin.Context) {
	var req dto.ApplyProviderRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	// The credential document is optional; applications without one are
	// stored with an empty path.
	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	db := h.GetDB(c)

	app, err := h.providerService.Submit(c.Request.Context(), db, &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ProviderHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	apps, err := h.providerService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid path parameter: id is not an integer"))
		return
	}

	db := h.GetDB(c)

	app, err := h.providerService.Get(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}
