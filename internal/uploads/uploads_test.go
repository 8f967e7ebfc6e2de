package uploads

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"relatório final.pdf", "relat_rio_final.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\docs\planilha.xlsx`, "planilha.xlsx"},
		{"a b.txt", "a_b.txt"},
		{"", ""},
		{"...", ""},
		{"___", ""},
	}

	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSaveSameNameTwiceYieldsDistinctFiles(t *testing.T) {
	s := testStore(t)

	first, err := s.Save(strings.NewReader("conteudo de janeiro"), "report.pdf")
	if err != nil {
		t.Fatal(err)
	}
	// garante timestamps diferentes (colisão no mesmo microssegundo é o
	// caso-limite aceito do design)
	time.Sleep(2 * time.Millisecond)
	second, err := s.Save(strings.NewReader("conteudo de julho"), "report.pdf")
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Fatalf("stored names collide: %q", first)
	}
	for _, name := range []string{first, second} {
		if !strings.HasSuffix(name, "_report.pdf") {
			t.Errorf("stored name %q lost the original suffix", name)
		}
	}

	readBack := func(name string) string {
		rc, err := s.Open(name)
		if err != nil {
			t.Fatalf("open %q: %v", name, err)
		}
		defer rc.Close()
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, rc); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}

	if got := readBack(first); got != "conteudo de janeiro" {
		t.Errorf("first blob: %q", got)
	}
	if got := readBack(second); got != "conteudo de julho" {
		t.Errorf("second blob: %q", got)
	}
}

func TestSaveRejectsMissingOrUnusableFile(t *testing.T) {
	s := testStore(t)

	if _, err := s.Save(nil, "x.pdf"); !errors.Is(err, ErrNoFile) {
		t.Errorf("nil reader: got %v", err)
	}
	if _, err := s.Save(strings.NewReader("x"), ""); !errors.Is(err, ErrNoFile) {
		t.Errorf("empty name: got %v", err)
	}
	if _, err := s.Save(strings.NewReader("x"), "..."); !errors.Is(err, ErrNoFile) {
		t.Errorf("name empty after sanitization: got %v", err)
	}
}

func TestSaveSurfacesDiskErrors(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blobs")
	s, err := NewStore(root)
	if err != nil {
		t.Fatal(err)
	}

	// troca o diretório por um arquivo comum: os.Create falhará
	if err := os.RemoveAll(root); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(root, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = s.Save(strings.NewReader("dados"), "foto.png")
	if err == nil {
		t.Fatal("disk error swallowed")
	}
	if errors.Is(err, ErrNoFile) {
		t.Fatalf("disk error misreported as missing file: %v", err)
	}
}

func TestPathRejectsTraversalAndMissingFiles(t *testing.T) {
	s := testStore(t)

	for _, name := range []string{"../segredo", "a/b.txt", "..", ""} {
		if _, err := s.Path(name); !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("Path(%q): got %v, want ErrInvalidFilename", name, err)
		}
	}

	if _, err := s.Path("nao_existe.pdf"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("missing file: got %v", err)
	}

	stored, err := s.Save(strings.NewReader("ok"), "existe.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Path(stored); err != nil {
		t.Errorf("stored file not resolvable: %v", err)
	}
}
