package models

import "time"

// Report é append-only: relatórios são enviados e baixados, nunca editados.
type Report struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"size:200;not null"`
	Filename   string `gorm:"size:300;not null"`
	UploadedAt time.Time
}
