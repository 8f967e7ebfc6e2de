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

	"github.com/gin-gonic/gin"
)

// GERENCIAMENTO DE MÁQUINAS (computadores e notebooks)

func ListMachines(c *gin.Context) {
	q := c.Query("q")

	items, err := inventory.ListMachines(database.DB, q)
	if err != nil {
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	render(c, http.StatusOK, "machine_list.html", gin.H{
		"items": items,
		"q":     q,
	})
}

func ShowMachine(c *gin.Context) {
	item, ok := machineByParam(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "machine_detail.html", gin.H{"item": item})
}

func ShowNewMachine(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	render(c, http.StatusOK, "machine_form.html", gin.H{"edit": false, "error": ""})
}

func CreateMachine(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	in := machineForm(c)
	saved, err := savedUpload(c, "imagem")
	if err != nil {
		uploadFailure(c, err)
		return
	}
	in.ImagemFilename = saved

	if _, err := inventory.CreateMachine(database.DB, in); err != nil {
		renderMachineFormError(c, err, false, nil)
		return
	}

	flash(c, "Máquina cadastrada com sucesso.")
	c.Redirect(http.StatusFound, "/machines")
}

func ShowEditMachine(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	item, ok := machineByParam(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "machine_form.html", gin.H{
		"edit": true, "item": item, "error": "",
	})
}

func UpdateMachine(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	item, ok := machineByParam(c)
	if !ok {
		return
	}

	in := machineForm(c)
	// sem novo arquivo, a imagem anterior é preservada
	saved, err := savedUpload(c, "imagem")
	if err != nil {
		uploadFailure(c, err)
		return
	}
	in.ImagemFilename = saved

	updated, err := inventory.UpdateMachine(database.DB, item.ID, in)
	if err != nil {
		renderMachineFormError(c, err, true, item)
		return
	}

	flash(c, "Máquina atualizada com sucesso.")
	c.Redirect(http.StatusFound, "/machine/"+strconv.FormatUint(uint64(updated.ID), 10))
}

func renderMachineFormError(c *gin.Context, err error, edit bool, item *models.Machine) {
	data := gin.H{"edit": edit}
	if item != nil {
		data["item"] = item
	}

	var verr *inventory.ValidationError
	switch {
	case errors.Is(err, inventory.ErrDuplicateSerial):
		data["error"] = "Erro: Número de Série já cadastrado."
	case errors.As(err, &verr):
		data["error"] = verr.Error()
	default:
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	render(c, http.StatusBadRequest, "machine_form.html", data)
}

func machineForm(c *gin.Context) inventory.MachineInput {
	return inventory.MachineInput{
		Name:                  c.PostForm("name"),
		Status:                c.PostForm("status"),
		Tipo:                  c.PostForm("tipo"),
		Marca:                 c.PostForm("marca"),
		Modelo:                c.PostForm("modelo"),
		NumeroSerie:           c.PostForm("numero_serie"),
		SistemaOperacional:    c.PostForm("sistema_operacional"),
		SoftwaresInstalados:   c.PostForm("softwares_instalados"),
		Licencas:              c.PostForm("licencas"),
		LimpezaFisicaData:     c.PostForm("limpeza_fisica_data"),
		UltimaFormatacaoData:  c.PostForm("ultima_formatacao_data"),
		ResponsavelFormatacao: c.PostForm("responsavel_formatacao"),
	}
}

func machineByParam(c *gin.Context) (*models.Machine, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Máquina não encontrada")
		return nil, false
	}

	item, err := inventory.GetMachine(database.DB, uint(id))
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			c.String(http.StatusNotFound, "Máquina não encontrada")
		} else {
			c.String(http.StatusInternalServerError, "erro interno")
		}
		return nil, false
	}
	return item, true
}
