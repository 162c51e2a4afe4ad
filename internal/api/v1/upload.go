package v1

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/up-yurikos/projectfinance/internal/gdrive"
	"github.com/up-yurikos/projectfinance/internal/parser"
	"github.com/up-yurikos/projectfinance/internal/service/store"
)

// uploadResponse アップロード結果
type uploadResponse struct {
	Filename     string   `json:"filename"`
	Rows         int      `json:"rows"`
	ProjectCount int      `json:"projectCount"`
	Warnings     []string `json:"warnings,omitempty"`
}

// UploadLedger 仕訳帳 (CSV / ZIP) を取り込む
// POST /api/upload/ledger
func (h *Handler) UploadLedger(c *gin.Context) {
	h.upload(c, h.store.SetLedger)
}

// UploadMaster 取引マスタ (CSV / XLSX) を取り込む
// POST /api/upload/master
func (h *Handler) UploadMaster(c *gin.Context) {
	h.upload(c, h.store.SetMaster)
}

// UploadCost 稼働コスト (CSV / XLSX) を取り込む
// POST /api/upload/cost
func (h *Handler) UploadCost(c *gin.Context) {
	h.upload(c, h.store.SetCost)
}

func (h *Handler) upload(c *gin.Context, apply func(*parser.Table) error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "アップロードファイルが見つかりません"})
		return
	}

	data, err := readUploadedFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ファイルを読み込めません: " + err.Error()})
		return
	}

	table, err := parser.ReadTable(fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := apply(table); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrNoLedger) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, uploadResponse{
		Filename:     fileHeader.Filename,
		Rows:         table.RowCount(),
		ProjectCount: h.store.ProjectCount(),
		Warnings:     h.store.Warnings(),
	})
}

func readUploadedFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// fetchLedgerRequest Google Drive 取得リクエスト
type fetchLedgerRequest struct {
	URL string `json:"url" binding:"required"`
}

// FetchLedger Google Drive 共有リンクから仕訳帳を取り込む
// POST /api/fetch/ledger
func (h *Handler) FetchLedger(c *gin.Context) {
	var req fetchLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "リクエスト形式が正しくありません"})
		return
	}

	data, err := gdrive.Fetch(req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	table, err := parser.DecodeCSV(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SetLedger(table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, uploadResponse{
		Filename:     req.URL,
		Rows:         table.RowCount(),
		ProjectCount: h.store.ProjectCount(),
		Warnings:     h.store.Warnings(),
	})
}
