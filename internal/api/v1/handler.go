package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/up-yurikos/projectfinance/internal/config"
	"github.com/up-yurikos/projectfinance/internal/service/store"
)

// Handler V1 API 処理器
type Handler struct {
	store     *store.DatasetStore
	cfg       *config.AppConfig
	downloads *exportDownloadStore
}

// NewHandler V1 API 処理器を作る
func NewHandler(store *store.DatasetStore, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:     store,
		cfg:       cfg,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes V1 API ルートを登録する
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// システム状態
	router.GET("/status", h.GetStatus)

	// データ入力
	router.POST("/upload/ledger", h.UploadLedger)
	router.POST("/upload/master", h.UploadMaster)
	router.POST("/upload/cost", h.UploadCost)
	router.POST("/fetch/ledger", h.FetchLedger)

	// プロジェクト収益
	router.GET("/projects", h.ListProjects)

	// 稼働率
	router.GET("/utilization", h.GetUtilization)
	router.GET("/utilization/detail", h.GetUtilizationDetail)

	// CSV エクスポート
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
