package inventory

import (
	"errors"
	"strings"
	"time"

	"ltip-labweb/internal/models"

	"gorm.io/gorm"
)

// StatusEmphasis é a classificação de exibição do status de uma máquina.
type StatusEmphasis string

const (
	EmphasisComplete   StatusEmphasis = "complete"
	EmphasisIncomplete StatusEmphasis = "incomplete"
	EmphasisInProgress StatusEmphasis = "in-progress"
	EmphasisNeutral    StatusEmphasis = "neutral"
)

// ClassifyStatus classifica por substring, case-insensitive, em ordem de
// prioridade. A forma negada vem primeiro: "não formatado" contém
// "formatado" e seria classificada como concluída se a ordem invertesse.
func ClassifyStatus(status string) StatusEmphasis {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "não formatado") || strings.Contains(s, "nao formatado"):
		return EmphasisIncomplete
	case strings.Contains(s, "formatado"):
		return EmphasisComplete
	case strings.Contains(s, "andamento"):
		return EmphasisInProgress
	}
	return EmphasisNeutral
}

// MachineInput carrega os valores crus do formulário. Datas chegam como
// "AAAA-MM-DD"; valores malformados são coagidos para vazio (ver DESIGN.md).
type MachineInput struct {
	Name                  string
	Status                string
	Tipo                  string
	Marca                 string
	Modelo                string
	NumeroSerie           string
	SistemaOperacional    string
	SoftwaresInstalados   string
	Licencas              string
	LimpezaFisicaData     string
	UltimaFormatacaoData  string
	ResponsavelFormatacao string
	ImagemFilename        string // vazio em update = mantém a imagem anterior
}

func CreateMachine(db *gorm.DB, in MachineInput) (*models.Machine, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	serial := strings.TrimSpace(in.NumeroSerie)
	if serial == "" {
		return nil, &ValidationError{Field: "numero_serie"}
	}

	if err := checkSerialUnique(db, serial, 0); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.StatusNaoFormatado
	}

	m := models.Machine{
		Name:                  name,
		Status:                status,
		Tipo:                  models.MachineType(strings.TrimSpace(in.Tipo)),
		Marca:                 strings.TrimSpace(in.Marca),
		Modelo:                strings.TrimSpace(in.Modelo),
		NumeroSerie:           serial,
		SistemaOperacional:    strings.TrimSpace(in.SistemaOperacional),
		SoftwaresInstalados:   strings.TrimSpace(in.SoftwaresInstalados),
		Licencas:              strings.TrimSpace(in.Licencas),
		LimpezaFisicaData:     parseDate(in.LimpezaFisicaData),
		UltimaFormatacaoData:  parseDate(in.UltimaFormatacaoData),
		ResponsavelFormatacao: strings.TrimSpace(in.ResponsavelFormatacao),
		ImagemFilename:        in.ImagemFilename,
	}

	if err := db.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func UpdateMachine(db *gorm.DB, id uint, in MachineInput) (*models.Machine, error) {
	m, err := GetMachine(db, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	serial := strings.TrimSpace(in.NumeroSerie)
	if serial == "" {
		return nil, &ValidationError{Field: "numero_serie"}
	}

	// a verificação de unicidade exclui o próprio registro
	if err := checkSerialUnique(db, serial, m.ID); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.StatusNaoFormatado
	}

	m.Name = name
	m.Status = status
	m.Tipo = models.MachineType(strings.TrimSpace(in.Tipo))
	m.Marca = strings.TrimSpace(in.Marca)
	m.Modelo = strings.TrimSpace(in.Modelo)
	m.NumeroSerie = serial
	m.SistemaOperacional = strings.TrimSpace(in.SistemaOperacional)
	m.SoftwaresInstalados = strings.TrimSpace(in.SoftwaresInstalados)
	m.Licencas = strings.TrimSpace(in.Licencas)
	m.LimpezaFisicaData = parseDate(in.LimpezaFisicaData)
	m.UltimaFormatacaoData = parseDate(in.UltimaFormatacaoData)
	m.ResponsavelFormatacao = strings.TrimSpace(in.ResponsavelFormatacao)
	if in.ImagemFilename != "" {
		m.ImagemFilename = in.ImagemFilename
	}

	if err := db.Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func GetMachine(db *gorm.DB, id uint) (*models.Machine, error) {
	var m models.Machine
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListMachines devolve as máquinas ordenadas por nome. Busca vazia retorna
// tudo; caso contrário filtra por substring (case-insensitive) em nome,
// marca, modelo, número de série, sistema operacional e licenças.
func ListMachines(db *gorm.DB, query string) ([]models.Machine, error) {
	var items []models.Machine

	q := db.Order("name asc")
	if like, ok := searchPattern(query); ok {
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(marca) LIKE ? OR LOWER(modelo) LIKE ? OR LOWER(numero_serie) LIKE ? OR LOWER(sistema_operacional) LIKE ? OR LOWER(licencas) LIKE ?",
			like, like, like, like, like, like,
		)
	}

	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func checkSerialUnique(db *gorm.DB, serial string, selfID uint) error {
	var count int64
	q := db.Model(&models.Machine{}).Where("numero_serie = ?", serial)
	if selfID > 0 {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateSerial
	}
	return nil
}

func parseDate(raw string) *time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &t
}
