package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse システム状態レスポンス
type StatusResponse struct {
	Initialized  bool     `json:"initialized"`        // 仕訳帳が読み込み済みか
	ProjectCount int      `json:"projectCount"`       // プロジェクト数
	HasMaster    bool     `json:"hasMaster"`          // 取引マスタの有無
	HasCost      bool     `json:"hasCost"`            // 稼働コストの有無
	MinDate      string   `json:"minDate,omitempty"`  // 取引日の最小 (YYYY-MM-DD)
	MaxDate      string   `json:"maxDate,omitempty"`  // 取引日の最大 (YYYY-MM-DD)
	Warnings     []string `json:"warnings,omitempty"` // 直近パイプラインの警告
}

// GetStatus システム状態を返す
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Initialized:  h.store.Ready(),
		ProjectCount: h.store.ProjectCount(),
		HasMaster:    h.store.HasMaster(),
		HasCost:      h.store.HasCost(),
		Warnings:     h.store.Warnings(),
	}
	if min, max, ok := h.store.DateRange(); ok {
		resp.MinDate = min.Format("2006-01-02")
		resp.MaxDate = max.Format("2006-01-02")
	}
	c.JSON(http.StatusOK, resp)
}
