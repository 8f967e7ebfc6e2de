package inventory

import (
	"errors"
	"testing"
	"time"

	"ltip-labweb/internal/models"
)

func TestListReportsNewestFirst(t *testing.T) {
	db := testDB(t)

	// datas explícitas para não depender da resolução do relógio
	old := models.Report{Title: "Janeiro", Filename: "20250131000000000000_jan.pdf", UploadedAt: time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)}
	recent := models.Report{Title: "Julho", Filename: "20250731000000000000_jul.pdf", UploadedAt: time.Date(2025, 7, 31, 12, 0, 0, 0, time.UTC)}
	if err := db.Create(&old).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&recent).Error; err != nil {
		t.Fatal(err)
	}

	reports, err := ListReports(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].Title != "Julho" || reports[1].Title != "Janeiro" {
		t.Errorf("wrong order: %q, %q", reports[0].Title, reports[1].Title)
	}
}

func TestCreateReportDefaultsTitleAndRequiresFile(t *testing.T) {
	db := testDB(t)

	r, err := CreateReport(db, "   ", "20250831000000000000_ago.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if r.Title != "Relatório" {
		t.Errorf("default title: got %q", r.Title)
	}
	if r.UploadedAt.IsZero() {
		t.Error("uploaded_at not set")
	}

	var verr *ValidationError
	if _, err := CreateReport(db, "Agosto", ""); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError without file, got %v", err)
	}
}

func TestGetReportNotFound(t *testing.T) {
	db := testDB(t)

	if _, err := GetReport(db, 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
