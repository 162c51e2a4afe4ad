package v1

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/up-yurikos/projectfinance/internal/report"
	"github.com/up-yurikos/projectfinance/internal/service/store"
)

const downloadTTL = 10 * time.Minute

// exportRequest エクスポート要求
// Kind: projects（粗利集計, BOM付きUTF-8） / monthlyRevenue・monthlyProfit（月次一覧, Shift_JIS）
type exportRequest struct {
	Kind            string   `json:"kind" binding:"required"`
	ID              string   `json:"id"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	Owners          []string `json:"owners"`
	Industries      []string `json:"industries"`
	IndustryDetails []string `json:"industryDetails"`
}

// Export フィルタ済みデータの CSV を生成してダウンロードトークンを返す
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	if !h.store.Ready() {
		c.JSON(http.StatusConflict, gin.H{"error": store.ErrNoLedger.Error()})
		return
	}

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "リクエスト形式が正しくありません"})
		return
	}

	filter := store.Filter{
		IDContains:      req.ID,
		Owners:          req.Owners,
		Industries:      req.Industries,
		IndustryDetails: req.IndustryDetails,
	}
	var err error
	if filter.Start, err = parseDateParam(req.Start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "期間の形式が正しくありません"})
		return
	}
	if filter.End, err = parseDateParam(req.End); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "期間の形式が正しくありません"})
		return
	}

	built := h.buildProjects(filter)

	var (
		filename string
		data     []byte
	)
	switch req.Kind {
	case "projects":
		filename = "粗利集計.csv"
		data, err = report.ProjectsCSV(built.Projects)
	case "monthlyRevenue":
		filename = "月次売上一覧.csv"
		data, err = report.MonthlyPivotCSV(built.MonthlyRevenue)
	case "monthlyProfit":
		filename = "月次粗利一覧.csv"
		data, err = report.MonthlyPivotCSV(built.MonthlyProfit)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "不明なエクスポート種別: " + req.Kind})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CSV の生成に失敗しました: " + err.Error()})
		return
	}

	token := h.downloads.put(filename, "text/csv", data, downloadTTL)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
		"size":     len(data),
	})
}

// DownloadExport 生成済み CSV を返す（1回限り）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "ダウンロードの有効期限が切れています"})
		return
	}
	h.downloads.delete(token)

	c.Header("Content-Disposition", `attachment; filename*=UTF-8''`+url.PathEscape(item.filename))
	c.Data(http.StatusOK, item.contentType, item.data)
}
