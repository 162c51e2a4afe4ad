package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/up-yurikos/projectfinance/internal/model"
	"github.com/up-yurikos/projectfinance/internal/pipeline"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// 粗利集計CSVの列並び（画面の一覧表示と同じ）
var projectCSVHeader = []string{
	"レコードID", "日付（最小）", "日付（最大）", "取引先", "取引名", "取引担当者",
	"Industry", "Industry詳細", "提案商材",
	"売上高", "人件費", "外注費", "交際費", "旅費交通費",
	"粗利", "粗利率", "月数", "月次売上",
}

// ProjectsCSV プロジェクト一覧（粗利集計）を CSV にする
// Excel がそのまま開けるよう BOM 付き UTF-8（ダウンストリーム互換の固定仕様）
func ProjectsCSV(projects []*model.Project) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(projectCSVHeader); err != nil {
		return nil, err
	}
	for _, p := range projects {
		first, last := "", ""
		if p.HasDates {
			first = pipeline.YearMonthLabel(p.FirstDate)
			last = pipeline.YearMonthLabel(p.LastDate)
		}
		record := []string{
			p.ID, first, last, p.Counterparty, p.Title, p.Owner,
			p.Industry, p.IndustryDetail, p.Product,
			formatAmount(p.Revenue), formatAmount(p.Labor), formatAmount(p.Outsourcing),
			formatAmount(p.Entertainment), formatAmount(p.Travel),
			formatAmount(p.GrossProfit), fmt.Sprintf("%.1f%%", p.GrossProfitRatio),
			strconv.Itoa(p.ActiveMonths), formatAmount(p.MonthlyRevenue),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MonthlyPivotCSV 月次ピボット（売上 or 粗利）を CSV にする
// スプレッドシート連携先の都合で Shift_JIS 固定（ダウンストリーム互換の固定仕様）
func MonthlyPivotCSV(p *MonthlyPivot) ([]byte, error) {
	var buf bytes.Buffer
	tw := transform.NewWriter(&buf, japanese.ShiftJIS.NewEncoder())
	w := csv.NewWriter(tw)

	header := append([]string{"レコードID", "取引先"}, p.Columns...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range p.Rows {
		record := make([]string, 0, len(header))
		record = append(record, row.ProjectID, row.Counterparty)
		for _, c := range p.Columns {
			record = append(record, formatAmount(row.Values[c]))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatAmount 金額セルの文字列化（整数は小数点を出さない）
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
