package inventory

import (
	"errors"
	"strings"
	"time"

	"ltip-labweb/internal/models"

	"gorm.io/gorm"
)

// CreateReport registra um relatório enviado. Relatórios nunca são editados
// nem removidos.
func CreateReport(db *gorm.DB, title, filename string) (*models.Report, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Relatório"
	}
	if filename == "" {
		return nil, &ValidationError{Field: "arquivo"}
	}

	r := models.Report{
		Title:      title,
		Filename:   filename,
		UploadedAt: time.Now().UTC(),
	}
	if err := db.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReports devolve os relatórios do mais recente para o mais antigo.
func ListReports(db *gorm.DB) ([]models.Report, error) {
	var reports []models.Report
	if err := db.Order("uploaded_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func GetReport(db *gorm.DB, id uint) (*models.Report, error) {
	var r models.Report
	if err := db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}
