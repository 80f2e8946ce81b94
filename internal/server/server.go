package server

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/hrushikeshnair/MGMU-IQAC/internal/api/v1"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/config"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/session"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/store"

	jsonstore "github.com/hrushikeshnair/MGMU-IQAC/internal/service/store"
)

// Server HTTP服务器
type Server struct {
	router  *gin.Engine
	records *store.Store
	api     *v1.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	reports := jsonstore.NewReportStore(filepath.Join(dataDir, "faculty_reports.json"))
	institutes := jsonstore.NewInstituteRegistry(filepath.Join(dataDir, "institutes.json"))
	grades := jsonstore.NewGradeLedger(filepath.Join(dataDir, "grades.json"))

	records, err := store.New(filepath.Join(dataDir, "iqac.db"))
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	sessions := session.NewManager(time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute)

	handler := v1.NewHandler(
		reports,
		institutes,
		grades,
		records,
		sessions,
		cfg.Auth.Credentials,
		filepath.Join(dataDir, "exports"),
	)

	s := &Server{
		router:  gin.Default(),
		records: records,
		api:     handler,
	}

	s.setupRoutes()

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	s.router.Use(s.api.Middleware())

	// API 路由
	api := s.router.Group("/api")
	{
		s.api.RegisterRoutes(api)
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 关闭底层资源
func (s *Server) Close() error {
	return s.records.Close()
}
