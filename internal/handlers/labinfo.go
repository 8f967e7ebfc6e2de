package handlers

import (
	"net/http"

	"ltip-labweb/internal/auth"
	"ltip-labweb/internal/database"
	"ltip-labweb/internal/inventory"
	"ltip-labweb/internal/middleware"
	"ltip-labweb/internal/models"

	"github.com/gin-gonic/gin"
)

func ShowLabInfo(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	info, err := inventory.GetLabInfo(database.DB)
	if err != nil {
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	render(c, http.StatusOK, "labinfo.html", gin.H{"info": info})
}

func UpdateLabInfo(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	_, err := inventory.UpdateLabInfo(database.DB, inventory.LabInfoInput{
		CoordenadorName:  c.PostForm("coordenador_name"),
		CoordenadorEmail: c.PostForm("coordenador_email"),
		BolsistaName:     c.PostForm("bolsista_name"),
		BolsistaEmail:    c.PostForm("bolsista_email"),
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	flash(c, "Informações do Laboratório atualizadas.")
	c.Redirect(http.StatusFound, "/")
}
