package server

import (
	"html/template"
	"log"
	"net/http"

	"ltip-labweb/internal/config"
	"ltip-labweb/internal/handlers"
	"ltip-labweb/internal/inventory"
	"ltip-labweb/internal/middleware"
	"ltip-labweb/internal/uploads"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"statusEmphasis": inventory.ClassifyStatus,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("ltip_session", store))

	r.Use(middleware.InjectUser())

	blobs, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to init upload dir: %v", err)
	}
	handlers.Uploads = blobs

	// PÁGINA INICIAL
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// CONTATOS DO LABORATÓRIO (admin + bolsista; guard dentro do handler)
	r.GET("/lab_info", handlers.ShowLabInfo)
	r.POST("/lab_info", handlers.UpdateLabInfo)

	// EQUIPAMENTOS — leitura é pública, escrita exige papel
	r.GET("/inventory", handlers.ListEquipment)
	r.GET("/equipment/:id", handlers.ShowEquipment)
	r.GET("/equipment/add", handlers.ShowNewEquipment)
	r.POST("/equipment/add",
		middleware.LimitUploadSize(uploads.MaxUploadSize),
		handlers.CreateEquipment,
	)
	r.GET("/equipment/edit/:id", handlers.ShowEditEquipment)
	r.POST("/equipment/edit/:id",
		middleware.LimitUploadSize(uploads.MaxUploadSize),
		handlers.UpdateEquipment,
	)

	// MÁQUINAS
	r.GET("/machines", handlers.ListMachines)
	r.GET("/machine/:id", handlers.ShowMachine)
	r.GET("/machine/add", handlers.ShowNewMachine)
	r.POST("/machine/add",
		middleware.LimitUploadSize(uploads.MaxUploadSize),
		handlers.CreateMachine,
	)
	r.GET("/machine/edit/:id", handlers.ShowEditMachine)
	r.POST("/machine/edit/:id",
		middleware.LimitUploadSize(uploads.MaxUploadSize),
		handlers.UpdateMachine,
	)

	// RELATÓRIOS
	r.GET("/reports", handlers.ListReports)
	r.GET("/reports/upload", handlers.ShowUploadReport)
	r.POST("/reports/upload",
		middleware.LimitUploadSize(uploads.MaxUploadSize),
		handlers.UploadReport,
	)
	r.GET("/reports/download/:id", handlers.DownloadReport)

	// BLOBS (imagens e documentos)
	r.GET("/uploads/:filename", handlers.ServeUpload)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
