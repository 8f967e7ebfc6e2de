package models

import "gorm.io/gorm"

type Equipment struct {
	gorm.Model
	Name           string `gorm:"size:200;not null"` // EQUIPAMENTO
	Tombo          string `gorm:"size:100"`          // nº de patrimônio
	Quantidade     int    `gorm:"default:1"`
	Modelo         string `gorm:"size:100"`
	Marca          string `gorm:"size:100"`
	Finalidade     string `gorm:"size:200"`
	Status         string `gorm:"size:100"`
	Localizacao    string `gorm:"size:200"`
	Descricao      string `gorm:"type:text"`
	ImagemFilename string `gorm:"size:300"`
}
