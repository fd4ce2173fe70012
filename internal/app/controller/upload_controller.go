package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/lovehampers/lovehampers-backend/internal/errors"
	"github.com/lovehampers/lovehampers-backend/internal/middleware"
	"github.com/lovehampers/lovehampers-backend/internal/storage"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(s3Storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: s3Storage,
	}
}

type PresignRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// PresignProductImage issues a presigned PUT URL for a product photo (admin)
// POST /api/uploads/product-image
func (ctrl *UploadController) PresignProductImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A filename and content type are required")
		return
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedImageTypes); err != nil {
		log.Warn("Rejected upload content type", map[string]interface{}{
			"content_type": req.ContentType,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only JPEG, PNG and WebP images are allowed")
		return
	}

	presigned, err := ctrl.storage.GenerateProductImageURL(req.Filename, req.ContentType)
	if err != nil {
		log.Error("Failed to generate presigned upload URL", err, map[string]interface{}{
			"filename": req.Filename,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Could not prepare the upload")
		return
	}

	c.JSON(http.StatusOK, presigned)
}
