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

// INVENTÁRIO DE EQUIPAMENTOS

func ListEquipment(c *gin.Context) {
	q := c.Query("q")

	items, err := inventory.ListEquipment(database.DB, q)
	if err != nil {
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	render(c, http.StatusOK, "equipment_list.html", gin.H{
		"items": items,
		"q":     q,
	})
}

func ShowEquipment(c *gin.Context) {
	item, ok := equipmentByParam(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "equipment_detail.html", gin.H{"item": item})
}

// CADASTRO

func ShowNewEquipment(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	render(c, http.StatusOK, "equipment_form.html", gin.H{"edit": false, "error": ""})
}

func CreateEquipment(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	in := equipmentForm(c)
	saved, err := savedUpload(c, "imagem")
	if err != nil {
		uploadFailure(c, err)
		return
	}
	in.ImagemFilename = saved

	if _, err := inventory.CreateEquipment(database.DB, in); err != nil {
		var verr *inventory.ValidationError
		if errors.As(err, &verr) {
			render(c, http.StatusBadRequest, "equipment_form.html", gin.H{
				"edit": false, "error": verr.Error(),
			})
			return
		}
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	flash(c, "Equipamento cadastrado com sucesso.")
	c.Redirect(http.StatusFound, "/inventory")
}

// EDIÇÃO

func ShowEditEquipment(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	item, ok := equipmentByParam(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "equipment_form.html", gin.H{
		"edit": true, "item": item, "error": "",
	})
}

func UpdateEquipment(c *gin.Context) {
	user := middleware.UserFrom(c)
	if err := auth.RequireRole(user, models.RoleAdmin, models.RoleBolsista); err != nil {
		denyAccess(c)
		return
	}

	item, ok := equipmentByParam(c)
	if !ok {
		return
	}

	in := equipmentForm(c)
	// sem novo arquivo, a imagem anterior é preservada
	saved, err := savedUpload(c, "imagem")
	if err != nil {
		uploadFailure(c, err)
		return
	}
	in.ImagemFilename = saved

	updated, err := inventory.UpdateEquipment(database.DB, item.ID, in)
	if err != nil {
		var verr *inventory.ValidationError
		if errors.As(err, &verr) {
			render(c, http.StatusBadRequest, "equipment_form.html", gin.H{
				"edit": true, "item": item, "error": verr.Error(),
			})
			return
		}
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	flash(c, "Atualizado com sucesso.")
	c.Redirect(http.StatusFound, "/equipment/"+strconv.FormatUint(uint64(updated.ID), 10))
}

func equipmentForm(c *gin.Context) inventory.EquipmentInput {
	return inventory.EquipmentInput{
		Name:        c.PostForm("name"),
		Tombo:       c.PostForm("tombo"),
		Quantidade:  c.PostForm("quantidade"),
		Modelo:      c.PostForm("modelo"),
		Marca:       c.PostForm("marca"),
		Finalidade:  c.PostForm("finalidade"),
		Status:      c.PostForm("status"),
		Localizacao: c.PostForm("localizacao"),
		Descricao:   c.PostForm("descricao"),
	}
}

func equipmentByParam(c *gin.Context) (*models.Equipment, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Equipamento não encontrado")
		return nil, false
	}

	item, err := inventory.GetEquipment(database.DB, uint(id))
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			c.String(http.StatusNotFound, "Equipamento não encontrado")
		} else {
			c.String(http.StatusInternalServerError, "erro interno")
		}
		return nil, false
	}
	return item, true
}
