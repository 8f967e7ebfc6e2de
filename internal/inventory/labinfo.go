package inventory

import (
	"errors"
	"strings"

	"ltip-labweb/internal/models"

	"gorm.io/gorm"
)

// GetLabInfo devolve o registro único de contatos do laboratório, criando-o
// com valores de exemplo no primeiro acesso. Após isso existe sempre
// exatamente uma linha.
func GetLabInfo(db *gorm.DB) (*models.LabInfo, error) {
	var info models.LabInfo
	err := db.First(&info).Error
	if err == nil {
		return &info, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	info = models.LabInfo{
		CoordenadorName:  "Nome do Coordenador",
		CoordenadorEmail: "coord@exemplo.com",
		BolsistaName:     "Nome do Bolsista",
		BolsistaEmail:    "bolsista@exemplo.com",
	}
	if err := db.Create(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

type LabInfoInput struct {
	CoordenadorName  string
	CoordenadorEmail string
	BolsistaName     string
	BolsistaEmail    string
}

// UpdateLabInfo altera o registro único no lugar.
func UpdateLabInfo(db *gorm.DB, in LabInfoInput) (*models.LabInfo, error) {
	info, err := GetLabInfo(db)
	if err != nil {
		return nil, err
	}

	info.CoordenadorName = strings.TrimSpace(in.CoordenadorName)
	info.CoordenadorEmail = strings.TrimSpace(in.CoordenadorEmail)
	info.BolsistaName = strings.TrimSpace(in.BolsistaName)
	info.BolsistaEmail = strings.TrimSpace(in.BolsistaEmail)

	if err := db.Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}
