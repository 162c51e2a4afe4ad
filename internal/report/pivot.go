// Package report 月次レコードをプロジェクト×年月のピボットやサマリ行へ整形する
package report

import (
	"sort"

	"github.com/up-yurikos/projectfinance/internal/model"
)

// MonthlyPivot プロジェクト×年月のピボット表
// 行は (レコードID, 取引先)、列は "YY/MM" 昇順、欠損セルは 0
type MonthlyPivot struct {
	Columns []string          `json:"columns"`
	Rows    []MonthlyPivotRow `json:"rows"`
}

// MonthlyPivotRow ピボットの1行
type MonthlyPivotRow struct {
	ProjectID    string             `json:"id"`
	Counterparty string             `json:"counterparty"`
	Values       map[string]float64 `json:"values"`
}

// Summary 列ごとの合計・平均のサマリ行
type Summary struct {
	Totals map[string]float64 `json:"totals"` // 月次合計
	Means  map[string]float64 `json:"means"`  // 平均単価（全行平均、0 埋めセル込み）
}

// BuildMonthlyPivots 月次レコードから売上・粗利の2つのピボットを作る
// 両者は同じ行・列集合を持つ（同じレコード集合から作るため）
func BuildMonthlyPivots(records []model.MonthlyRecord) (revenue, profit *MonthlyPivot) {
	columns := monthColumns(records)

	type rowKey struct{ id, counterparty string }
	revRows := map[rowKey]map[string]float64{}
	profRows := map[rowKey]map[string]float64{}
	order := []rowKey{}

	for _, r := range records {
		k := rowKey{r.ProjectID, r.Counterparty}
		if _, ok := revRows[k]; !ok {
			revRows[k] = map[string]float64{}
			profRows[k] = map[string]float64{}
			order = append(order, k)
		}
		revRows[k][r.YearMonth] += r.Revenue
		profRows[k][r.YearMonth] += r.Profit
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].id != order[j].id {
			return order[i].id < order[j].id
		}
		return order[i].counterparty < order[j].counterparty
	})

	build := func(rows map[rowKey]map[string]float64) *MonthlyPivot {
		p := &MonthlyPivot{Columns: columns}
		for _, k := range order {
			values := map[string]float64{}
			for _, c := range columns {
				values[c] = rows[k][c]
			}
			p.Rows = append(p.Rows, MonthlyPivotRow{
				ProjectID:    k.id,
				Counterparty: k.counterparty,
				Values:       values,
			})
		}
		return p
	}
	return build(revRows), build(profRows)
}

// Summarize 列ごとの合計と平均を計算する
func Summarize(p *MonthlyPivot) Summary {
	s := Summary{
		Totals: map[string]float64{},
		Means:  map[string]float64{},
	}
	for _, c := range p.Columns {
		var sum float64
		for _, row := range p.Rows {
			sum += row.Values[c]
		}
		s.Totals[c] = sum
		if len(p.Rows) > 0 {
			s.Means[c] = sum / float64(len(p.Rows))
		}
	}
	return s
}

// ProjectCounts 年月ごとの案件数（その月の月次売上が正のプロジェクト数）
func ProjectCounts(records []model.MonthlyRecord) map[string]int {
	seen := map[string]map[string]struct{}{}
	for _, r := range records {
		if r.Revenue <= 0 {
			continue
		}
		ids, ok := seen[r.YearMonth]
		if !ok {
			ids = map[string]struct{}{}
			seen[r.YearMonth] = ids
		}
		ids[r.ProjectID] = struct{}{}
	}

	counts := map[string]int{}
	for _, c := range monthColumns(records) {
		counts[c] = len(seen[c])
	}
	return counts
}

// monthColumns レコード中に現れる年月の昇順リスト
// "YY/MM" は 2000 年代の範囲で辞書順 = 時系列順
func monthColumns(records []model.MonthlyRecord) []string {
	set := map[string]struct{}{}
	for _, r := range records {
		set[r.YearMonth] = struct{}{}
	}
	cols := make([]string, 0, len(set))
	for c := range set {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}
