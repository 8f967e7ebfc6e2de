package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"ltip-labweb/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, password string, role models.UserRole) *models.User {
	t.Helper()

	user := models.User{Username: username, Role: role}
	if err := user.SetPassword(password); err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return &user
}

func TestSetPasswordStoresOnlyHash(t *testing.T) {
	var u models.User
	if err := u.SetPassword("segredo123"); err != nil {
		t.Fatal(err)
	}
	if u.PasswordHash == "segredo123" || u.PasswordHash == "" {
		t.Fatalf("plaintext leaked into hash field: %q", u.PasswordHash)
	}
	if !u.CheckPassword("segredo123") {
		t.Error("correct password rejected")
	}
	if u.CheckPassword("outra") {
		t.Error("wrong password accepted")
	}
}

func TestAuthenticateSameErrorForBothFailureModes(t *testing.T) {
	db := testDB(t)
	seedUser(t, db, "arthur123", "LTIP2025", models.RoleBolsista)

	// usuário inexistente e senha errada precisam falhar de forma idêntica,
	// sem sinalizar quais logins existem
	_, errUnknown := Authenticate(db, "naoexiste", "qualquer")
	_, errBadPass := Authenticate(db, "arthur123", "errada")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v", errUnknown)
	}
	if !errors.Is(errBadPass, ErrInvalidCredentials) {
		t.Fatalf("bad password: got %v", errBadPass)
	}
	if errUnknown.Error() != errBadPass.Error() {
		t.Errorf("messages differ: %q vs %q", errUnknown, errBadPass)
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	db := testDB(t)
	seeded := seedUser(t, db, "rendeiro123", "admLTIP2025", models.RoleAdmin)

	user, err := Authenticate(db, "rendeiro123", "admLTIP2025")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != seeded.ID || user.Role != models.RoleAdmin {
		t.Errorf("wrong user resolved: %+v", user)
	}
}

func TestCurrentUserStaleOrMissingID(t *testing.T) {
	db := testDB(t)

	if u := CurrentUser(db, 0); u != nil {
		t.Errorf("anonymous session resolved to %+v", u)
	}
	if u := CurrentUser(db, 999); u != nil {
		t.Errorf("stale id resolved to %+v", u)
	}

	seeded := seedUser(t, db, "visitante", "visitante123", models.RoleVisitor)
	if u := CurrentUser(db, seeded.ID); u == nil || u.Username != "visitante" {
		t.Errorf("valid id not resolved: %+v", u)
	}
}

func TestRequireRole(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin}
	bolsista := &models.User{Role: models.RoleBolsista}
	visitor := &models.User{Role: models.RoleVisitor}

	if err := RequireRole(nil, models.RoleAdmin, models.RoleBolsista); !errors.Is(err, ErrForbidden) {
		t.Errorf("anonymous allowed: %v", err)
	}
	if err := RequireRole(visitor, models.RoleAdmin, models.RoleBolsista); !errors.Is(err, ErrForbidden) {
		t.Errorf("visitor allowed: %v", err)
	}
	if err := RequireRole(bolsista, models.RoleAdmin, models.RoleBolsista); err != nil {
		t.Errorf("bolsista denied: %v", err)
	}
	if err := RequireRole(admin, models.RoleAdmin); err != nil {
		t.Errorf("admin denied: %v", err)
	}
}
