package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ltip-labweb/internal/auth"
	"ltip-labweb/internal/database"
	"ltip-labweb/internal/inventory"
	"ltip-labweb/internal/middleware"
	"ltip-labweb/internal/models"
	"ltip-labweb/internal/uploads"

	"github.com/gin-gonic/gin"
)

// RELATÓRIOS MENSAIS (append-only: enviados e baixados, nunca editados)

func ListReports(c *gin.Context) {
	reports, err := inventory.ListReports(database.DB)
	if err != nil {
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	render(c, http.StatusOK, "reports_list.html", gin.H{"reports": reports})
}

func ShowUploadReport(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	render(c, http.StatusOK, "report_upload.html", gin.H{"error": ""})
}

func UploadReport(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	saved, err := savedUpload(c, "report_file")
	if err != nil {
		uploadFailure(c, err)
		return
	}
	if saved == "" {
		render(c, http.StatusBadRequest, "report_upload.html", gin.H{
			"error": "Selecione um arquivo para enviar.",
		})
		return
	}

	if _, err := inventory.CreateReport(database.DB, c.PostForm("title"), saved); err != nil {
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	flash(c, "Relatório enviado com sucesso.")
	c.Redirect(http.StatusFound, "/reports")
}

func DownloadReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Relatório não encontrado")
		return
	}

	rpt, err := inventory.GetReport(database.DB, uint(id))
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			c.String(http.StatusNotFound, "Relatório não encontrado")
		} else {
			c.String(http.StatusInternalServerError, "erro interno")
		}
		return
	}

	// blob sumido do disco não derruba a página: mensagem e volta à lista
	path, err := Uploads.Path(rpt.Filename)
	if err != nil {
		flash(c, "Arquivo não encontrado.")
		c.Redirect(http.StatusFound, "/reports")
		return
	}

	c.FileAttachment(path, rpt.Filename)
}

// ServeUpload entrega um blob pelo nome literal. uploads.Store revalida o
// nome contra path traversal antes de tocar o disco.
func ServeUpload(c *gin.Context) {
	path, err := Uploads.Path(c.Param("filename"))
	if err != nil {
		if errors.Is(err, uploads.ErrInvalidFilename) {
			c.String(http.StatusBadRequest, "nome de arquivo inválido")
		} else {
			c.String(http.StatusNotFound, "Arquivo não encontrado")
		}
		return
	}

	c.File(path)
}
