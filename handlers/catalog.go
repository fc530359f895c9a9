package handlers

import (
	"net/http"

	catalogRepo "carcare/database/repository/catalog"
	"carcare/models"
	"carcare/services/catalog"
	"carcare/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// CatalogHandler serves one catalog entity family. The same handler shape is
// registered once per kind; Path is the route segment and ListKey the
// response key the admin dashboard expects for that family.
type CatalogHandler struct {
	Service catalog.CatalogService
	Factory catalogRepo.Factory
	Path    string
	ListKey string
}

// NewCatalogHandler creates a handler for one entity kind.
func NewCatalogHandler(svc catalog.CatalogService, factory catalogRepo.Factory, path, listKey string) *CatalogHandler {
	return &CatalogHandler{Service: svc, Factory: factory, Path: path, ListKey: listKey}
}

// ListHandler handles GET /api/<kind>.
func (h *CatalogHandler) ListHandler(c *gin.Context) {
	entities, err := h.Service.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if entities == nil {
		entities = []models.Entity{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, h.ListKey: entities})
}

// CreateHandler handles POST /api/<kind>.
func (h *CatalogHandler) CreateHandler(c *gin.Context) {
	entity := h.Factory()
	if err := c.ShouldBindJSON(entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	created, err := h.Service.Create(entity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": created.Meta().ID.Hex()})
}

// UpdateHandler handles PUT /api/<kind>. The body is a partial document;
// fields absent from it keep their stored values, media slots included.
func (h *CatalogHandler) UpdateHandler(c *gin.Context) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	id, _ := fields["_id"].(string)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing _id"})
		return
	}
	if !objectIDPattern.MatchString(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid ID format"})
		return
	}

	if _, err := h.Service.Update(id, fields); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteHandler handles DELETE /api/<kind>?id=. The record goes away; any
// referenced media asset stays at the host until deleted separately.
func (h *CatalogHandler) DeleteHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing id"})
		return
	}
	if !objectIDPattern.MatchString(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid ID format"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
