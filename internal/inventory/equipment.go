package inventory

import (
	"errors"
	"strconv"
	"strings"

	"ltip-labweb/internal/models"

	"gorm.io/gorm"
)

// EquipmentInput carrega os valores crus do formulário. Quantidade chega
// como string e é coagida para 1 quando inválida (comportamento herdado,
// ver DESIGN.md).
type EquipmentInput struct {
	Name           string
	Tombo          string
	Quantidade     string
	Modelo         string
	Marca          string
	Finalidade     string
	Status         string
	Localizacao    string
	Descricao      string
	ImagemFilename string // vazio em update = mantém a imagem anterior
}

func CreateEquipment(db *gorm.DB, in EquipmentInput) (*models.Equipment, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	eq := models.Equipment{
		Name:           name,
		Tombo:          strings.TrimSpace(in.Tombo),
		Quantidade:     parseQuantidade(in.Quantidade),
		Modelo:         strings.TrimSpace(in.Modelo),
		Marca:          strings.TrimSpace(in.Marca),
		Finalidade:     strings.TrimSpace(in.Finalidade),
		Status:         strings.TrimSpace(in.Status),
		Localizacao:    strings.TrimSpace(in.Localizacao),
		Descricao:      strings.TrimSpace(in.Descricao),
		ImagemFilename: in.ImagemFilename,
	}

	if err := db.Create(&eq).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

func UpdateEquipment(db *gorm.DB, id uint, in EquipmentInput) (*models.Equipment, error) {
	eq, err := GetEquipment(db, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	eq.Name = name
	eq.Tombo = strings.TrimSpace(in.Tombo)
	eq.Quantidade = parseQuantidade(in.Quantidade)
	eq.Modelo = strings.TrimSpace(in.Modelo)
	eq.Marca = strings.TrimSpace(in.Marca)
	eq.Finalidade = strings.TrimSpace(in.Finalidade)
	eq.Status = strings.TrimSpace(in.Status)
	eq.Localizacao = strings.TrimSpace(in.Localizacao)
	eq.Descricao = strings.TrimSpace(in.Descricao)
	if in.ImagemFilename != "" {
		// uma nova imagem substitui a referência; o blob antigo fica no disco
		eq.ImagemFilename = in.ImagemFilename
	}

	if err := db.Save(eq).Error; err != nil {
		return nil, err
	}
	return eq, nil
}

func GetEquipment(db *gorm.DB, id uint) (*models.Equipment, error) {
	var eq models.Equipment
	if err := db.First(&eq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &eq, nil
}

// ListEquipment devolve os equipamentos ordenados por nome. Busca vazia
// retorna tudo; caso contrário filtra por substring (case-insensitive) em
// nome, marca, modelo, tombo e finalidade.
func ListEquipment(db *gorm.DB, query string) ([]models.Equipment, error) {
	var items []models.Equipment

	q := db.Order("name asc")
	if like, ok := searchPattern(query); ok {
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(marca) LIKE ? OR LOWER(modelo) LIKE ? OR LOWER(tombo) LIKE ? OR LOWER(finalidade) LIKE ?",
			like, like, like, like, like,
		)
	}

	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func searchPattern(query string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}
	return "%" + strings.ToLower(query) + "%", true
}

func parseQuantidade(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return n
}
