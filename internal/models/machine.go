package models

import (
	"time"

	"gorm.io/gorm"
)

type MachineType string

const (
	MachineComputador MachineType = "COMPUTADOR"
	MachineNotebook   MachineType = "NOTEBOOK"
)

const (
	StatusFormatado    = "Formatado"
	StatusNaoFormatado = "Não formatado"
	StatusEmAndamento  = "Em andamento"
)

type Machine struct {
	gorm.Model
	Name                  string      `gorm:"size:200;not null"` // ID visível (ex: PC 01)
	Status                string      `gorm:"size:100;not null;default:'Não formatado'"`
	Tipo                  MachineType `gorm:"type:varchar(50)"`
	Marca                 string      `gorm:"size:100"`
	Modelo                string      `gorm:"size:100"`
	NumeroSerie           string      `gorm:"size:100;uniqueIndex"`
	SistemaOperacional    string      `gorm:"size:200"`
	SoftwaresInstalados   string      `gorm:"type:text"`
	Licencas              string      `gorm:"size:255"`
	LimpezaFisicaData     *time.Time  `gorm:"type:date"`
	UltimaFormatacaoData  *time.Time  `gorm:"type:date"`
	ResponsavelFormatacao string      `gorm:"size:80"`
	ImagemFilename        string      `gorm:"size:300"`
}
