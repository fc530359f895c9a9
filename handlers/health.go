package handlers

import (
	"net/http"

	"carcare/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest store health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
