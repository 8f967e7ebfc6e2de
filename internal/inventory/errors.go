package inventory

import "errors"

var (
	// ErrNotFound — id desconhecido (equivalente a 404).
	ErrNotFound = errors.New("registro não encontrado")

	// ErrDuplicateSerial — violação da unicidade de numero_serie.
	ErrDuplicateSerial = errors.New("número de série já cadastrado")
)

// ValidationError indica campo obrigatório ausente; o formulário é
// reapresentado ao usuário com a mensagem.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "campo obrigatório não preenchido: " + e.Field
}
