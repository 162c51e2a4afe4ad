package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/up-yurikos/projectfinance/internal/api/v1"
	"github.com/up-yurikos/projectfinance/internal/config"
	"github.com/up-yurikos/projectfinance/internal/idmap"
	"github.com/up-yurikos/projectfinance/internal/service/store"
)

// Server HTTP サーバ
type Server struct {
	router *gin.Engine
	store  *store.DatasetStore
	v1     *v1.Handler
}

// NewServer サーバを作る
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// データは全てメモリ上で保持し、入力のたびに作り直す
	datasetStore := store.New(idmap.Fixed())

	v1Handler := v1.NewHandler(datasetStore, cfg)

	s := &Server{
		router: gin.Default(),
		store:  datasetStore,
		v1:     v1Handler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes ルートを設定する
func (s *Server) setupRoutes(devMode bool) {
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

	// V1 API ルート
	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	if devMode {
		// 開発モード: フロントエンドの開発サーバへ誘導
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		s.router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"name": "projectfinance",
				"api":  "/api",
			})
		})
	}
}

// Run サーバを起動する
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore データストアを取得する（テスト用）
func (s *Server) GetStore() *store.DatasetStore {
	return s.store
}
