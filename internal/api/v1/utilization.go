package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/up-yurikos/projectfinance/internal/model"
	"github.com/up-yurikos/projectfinance/internal/utilization"
)

// GetUtilization コンサルタント別の稼働時間・標準稼働時間・稼働率を返す
// GET /api/utilization?start=YY/MM&end=YY/MM
// 期間指定が無いときは設定の集計下限（既定 24/01）を適用する
func (h *Handler) GetUtilization(c *gin.Context) {
	opts := utilization.Options{
		StartYM:     c.Query("start"),
		EndYM:       c.Query("end"),
		HoursPerDay: h.cfg.Business.HoursPerDay,
	}
	if opts.StartYM == "" {
		opts.StartYM = h.cfg.Business.UtilizationCutoff
	}

	result := utilization.Calculate(h.store.CostTable(), opts)
	c.JSON(http.StatusOK, result)
}

// GetUtilizationDetail 指定コンサルタントの稼働明細（月次集計前の行）を返す
// GET /api/utilization/detail?consultant=&start=YY/MM&end=YY/MM
func (h *Handler) GetUtilizationDetail(c *gin.Context) {
	name := c.Query("consultant")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consultant を指定してください"})
		return
	}

	opts := utilization.Options{
		StartYM:     c.Query("start"),
		EndYM:       c.Query("end"),
		HoursPerDay: h.cfg.Business.HoursPerDay,
	}
	if opts.StartYM == "" {
		opts.StartYM = h.cfg.Business.UtilizationCutoff
	}

	result := utilization.Calculate(h.store.CostTable(), opts)
	entries := make([]model.UtilizationEntry, 0)
	for _, e := range result.Entries {
		if e.Consultant == name {
			entries = append(entries, e)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"consultant": name,
		"entries":    entries,
	})
}
