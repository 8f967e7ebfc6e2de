package auth

import (
	"errors"

	"ltip-labweb/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials cobre usuário inexistente E senha errada com a
	// mesma mensagem, para não revelar quais logins existem.
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")

	ErrForbidden = errors.New("acesso negado: permissões insuficientes")
)

// Authenticate valida as credenciais e devolve o usuário correspondente.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CurrentUser resolve o id guardado na sessão de volta ao registro completo.
// Retorna nil para sessão ausente ou id obsoleto (usuário removido).
func CurrentUser(db *gorm.DB, userID uint) *models.User {
	if userID == 0 {
		return nil
	}
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil
	}
	return &user
}

// RequireRole é o guard explícito chamado no topo de cada handler protegido,
// antes de qualquer efeito colateral.
func RequireRole(user *models.User, roles ...models.UserRole) error {
	if user == nil {
		return ErrForbidden
	}
	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}
	return ErrForbidden
}
