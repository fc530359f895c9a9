package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"carcare/services/media"
	"carcare/utils"

	"github.com/gin-gonic/gin"
)

// defaultUploadFolder receives assets uploaded without an explicit folder.
const defaultUploadFolder = "automotive-carcare"

// MediaHandler handles upload tickets, server-side uploads and asset deletes.
type MediaHandler struct {
	Service media.MediaService
}

// NewMediaHandler creates a new MediaHandler instance.
func NewMediaHandler(svc media.MediaService) *MediaHandler {
	return &MediaHandler{Service: svc}
}

// UploadSignatureHandler handles GET /api/upload-signature?folder=. The
// response is the flat ticket shape the dashboard posts straight to the
// media host alongside the file.
func (h *MediaHandler) UploadSignatureHandler(c *gin.Context) {
	folder := c.Query("folder")
	if folder == "" {
		folder = defaultUploadFolder
	}

	ticket, err := h.Service.IssueUploadTicket(folder)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// UploadHandler handles POST /api/upload: a server-side multipart upload
// through the broker, for callers that cannot talk to the host directly.
func (h *MediaHandler) UploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file not provided"})
		return
	}
	folder := c.PostForm("folder")
	if folder == "" {
		folder = defaultUploadFolder
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save file"})
		return
	}
	defer os.Remove(tempFilePath)

	ref, err := h.Service.Upload(c, tempFilePath, folder)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": ref.URL, "assetId": ref.AssetID})
}

// DeleteAssetHandler handles POST /api/cloudinary-delete. Deleting an asset
// that is already gone still reports success.
func (h *MediaHandler) DeleteAssetHandler(c *gin.Context) {
	var req struct {
		PublicID string `json:"publicId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PublicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "publicId is required"})
		return
	}

	if err := h.Service.Remove(c, req.PublicID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
