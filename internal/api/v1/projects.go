package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/up-yurikos/projectfinance/internal/model"
	"github.com/up-yurikos/projectfinance/internal/pipeline"
	"github.com/up-yurikos/projectfinance/internal/report"
	"github.com/up-yurikos/projectfinance/internal/service/store"
)

// projectsResponse プロジェクト収益レスポンス
// 一覧・月次ピボット・サマリ・案件数をまとめて返す（フィルタ変更ごとに全再計算）
type projectsResponse struct {
	Projects       []*model.Project     `json:"projects"`
	MonthlyRevenue *report.MonthlyPivot `json:"monthlyRevenue"`
	MonthlyProfit  *report.MonthlyPivot `json:"monthlyProfit"`
	RevenueSummary report.Summary       `json:"revenueSummary"`
	ProfitSummary  report.Summary       `json:"profitSummary"`
	ProjectCounts  map[string]int       `json:"projectCounts"`
	Warnings       []string             `json:"warnings,omitempty"`
}

// ListProjects フィルタ済みのプロジェクト収益を返す
// GET /api/projects?id=&start=&end=&owner=&industry=&industryDetail=
func (h *Handler) ListProjects(c *gin.Context) {
	if !h.store.Ready() {
		c.JSON(http.StatusConflict, gin.H{"error": store.ErrNoLedger.Error()})
		return
	}

	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := h.buildProjects(filter)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) buildProjects(filter store.Filter) projectsResponse {
	projects := h.store.Projects(filter)

	// 期間未指定ならデータ全体の範囲で按分する
	start, end := filter.Start, filter.End
	if start.IsZero() || end.IsZero() {
		if min, max, ok := h.store.DateRange(); ok {
			if start.IsZero() {
				start = min
			}
			if end.IsZero() {
				end = max
			}
		}
	}

	records := pipeline.ExpandMonthly(projects, start, end)
	revenue, profit := report.BuildMonthlyPivots(records)

	return projectsResponse{
		Projects:       projects,
		MonthlyRevenue: revenue,
		MonthlyProfit:  profit,
		RevenueSummary: report.Summarize(revenue),
		ProfitSummary:  report.Summarize(profit),
		ProjectCounts:  report.ProjectCounts(records),
		Warnings:       h.store.Warnings(),
	}
}

// parseFilter クエリパラメータからフィルタを組み立てる
// 日付は YYYY-MM-DD、multiselect 系は同名パラメータの繰り返し
func parseFilter(c *gin.Context) (store.Filter, error) {
	f := store.Filter{
		IDContains:      c.Query("id"),
		Owners:          c.QueryArray("owner"),
		Industries:      c.QueryArray("industry"),
		IndustryDetails: c.QueryArray("industryDetail"),
	}
	var err error
	if f.Start, err = parseDateParam(c.Query("start")); err != nil {
		return f, err
	}
	if f.End, err = parseDateParam(c.Query("end")); err != nil {
		return f, err
	}
	return f, nil
}

func parseDateParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
