package handlers

import (
	"log"
	"net/http"

	"ltip-labweb/internal/database"
	"ltip-labweb/internal/inventory"

	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	info, err := inventory.GetLabInfo(database.DB)
	if err != nil {
		log.Printf("failed to load lab info: %v", err)
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{"info": info})
}
