package models

import "gorm.io/gorm"

// LabInfo é um registro único com os contatos do laboratório.
type LabInfo struct {
	gorm.Model
	CoordenadorName  string `gorm:"size:100"`
	CoordenadorEmail string `gorm:"size:100"`
	BolsistaName     string `gorm:"size:100"`
	BolsistaEmail    string `gorm:"size:100"`
}
