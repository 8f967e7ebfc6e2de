package database

import (
	"log"
	"os"
	"time"

	"ltip-labweb/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init abre a conexão com o banco e roda as migrações.
// DATABASE_URL definido = PostgreSQL; vazio = SQLite local (ltip.db).
func Init(databaseURL string) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open("ltip.db")
	}

	var err error
	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.LabInfo{},
		&models.Equipment{},
		&models.Machine{},
		&models.Report{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaultUsers()
}

// seedDefaultUsers cria as três contas iniciais (admin, bolsista, visitante)
// apenas quando a tabela de usuários está vazia. Senhas podem ser trocadas
// via ambiente; nunca são escritas no log.
func seedDefaultUsers() {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("failed to count users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	type seedUser struct {
		Username string
		Password string
		Role     models.UserRole
	}

	users := []seedUser{
		{
			Username: envOr("ADMIN_USERNAME", "rendeiro123"),
			Password: envOr("ADMIN_PASSWORD", "admLTIP2025"),
			Role:     models.RoleAdmin,
		},
		{
			Username: envOr("BOLSISTA_USERNAME", "arthur123"),
			Password: envOr("BOLSISTA_PASSWORD", "LTIP2025"),
			Role:     models.RoleBolsista,
		},
		{
			Username: envOr("VISITOR_USERNAME", "visitante"),
			Password: envOr("VISITOR_PASSWORD", "visitante123"),
			Role:     models.RoleVisitor,
		},
	}

	for _, u := range users {
		user := models.User{
			Username: u.Username,
			Role:     u.Role,
		}
		if err := user.SetPassword(u.Password); err != nil {
			log.Printf("failed to hash password for %s: %v", u.Username, err)
			continue
		}
		if err := DB.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Username, err)
			continue
		}
		log.Printf("created seed user: %s (role=%s)", user.Username, user.Role)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
