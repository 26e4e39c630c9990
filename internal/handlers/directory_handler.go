package handlers

import (
	"fmt"
	"net/http"

	"healthatlas_backend/internal/services"
	"healthatlas_backend/internal/services/dto"
	"healthatlas_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	*BaseHandler
	directoryService services.DirectoryService
}

func NewDirectoryHandler(base *BaseHandler, directoryService services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		BaseHandler:      base,
		directoryService: directoryService,
	}
}

// RegisterRoutes registers the CSV import routes under /api.
func (h *DirectoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	csv := rg.Group("/csv")
	{
		csv.POST("/upload", h.Upload)
		csv.GET("/records", h.List)
	}
}

// Upload godoc
// @Summary  Bulk-import directory records from a CSV file
// @Accept   multipart/form-data
// @Produce  json
// @Router   /api/csv/upload [post]
func (h *DirectoryHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required file part: file"))
		return
	}

	db := h.GetDB(c)

	count, err := h.directoryService.Import(db, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{
		Message: fmt.Sprintf("Uploaded the file successfully: %s", file.Filename),
		Count:   count,
	})
}

func (h *DirectoryHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	records, err := h.directoryService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
