package uploads

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadSize limita cada requisição de upload a 10 MiB.
const MaxUploadSize = 10 << 20

var (
	ErrNoFile          = errors.New("nenhum arquivo enviado")
	ErrFileNotFound    = errors.New("arquivo não encontrado")
	ErrInvalidFilename = errors.New("nome de arquivo inválido")
)

// Store guarda os blobs enviados (imagens e relatórios) em um diretório
// único, com nomes prefixados por timestamp para evitar colisão entre
// uploads do mesmo arquivo.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string { return s.root }

// Save grava o conteúdo e devolve o nome armazenado
// ({timestamp}_{nomeSanitizado}). Dois uploads no mesmo microssegundo
// colidiriam; com atendimento serial de requisições isso não ocorre.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	if r == nil {
		return "", ErrNoFile
	}
	name := SanitizeFilename(originalName)
	if name == "" {
		return "", ErrNoFile
	}

	stored := time.Now().Format("20060102150405.000000")
	stored = strings.Replace(stored, ".", "", 1) + "_" + name

	f, err := os.Create(filepath.Join(s.root, stored))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return stored, nil
}

// Path resolve um nome armazenado para o caminho no disco. Segunda barreira
// contra path traversal: mesmo que um nome malicioso chegue até aqui, ele
// não sai do diretório de uploads.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", ErrInvalidFilename
	}
	path := filepath.Join(s.root, filename)
	if _, err := os.Stat(path); err != nil {
		return "", ErrFileNotFound
	}
	return path, nil
}

// Open abre o blob para leitura.
func (s *Store) Open(filename string) (io.ReadCloser, error) {
	path, err := s.Path(filename)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// SanitizeFilename remove separadores de caminho e caracteres inseguros,
// mantendo letras, dígitos, ponto, hífen e sublinhado.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), "._")
	if strings.Trim(out, "_") == "" {
		return ""
	}
	return out
}
