// Package utilization コンサルタント別の稼働時間と稼働率（チャージャビリティ）を計算する
package utilization

import (
	"fmt"
	"sort"
	"time"

	"github.com/up-yurikos/projectfinance/internal/model"
	"github.com/up-yurikos/projectfinance/internal/parser"
)

// 稼働コストファイルの列候補（優先順）
var (
	consultantPatterns = []string{"コンサルタント名", "氏名", "name"}
	hoursPatterns      = []string{"稼働時間", "hours", "workinghours", "h"}
	datePatterns       = []string{"稼働月-月次", "稼働日", "date"}
)

// Options 計算オプション
// StartYM / EndYM は "YY/MM"。空文字は制限なし
type Options struct {
	StartYM string
	EndYM   string
	// HoursPerDay 1営業日あたりの標準時間（0 なら 8）
	HoursPerDay float64
}

// Result 計算結果
type Result struct {
	Months        []string                      `json:"months"`        // 対象年月（昇順）
	Entries       []model.UtilizationEntry      `json:"-"`             // 月次集計前の明細
	Hours         map[string]map[string]float64 `json:"hours"`         // コンサル → 年月 → 稼働時間
	StandardHours map[string]float64            `json:"standardHours"` // 年月 → 平日日数 × 標準時間
	Rates         map[string]map[string]float64 `json:"rates"`         // コンサル → 年月 → 稼働率
	Consultants   []string                      `json:"consultants"`   // 行順（名前昇順）
	Warning       string                        `json:"warning,omitempty"`
}

// Calculate 稼働コストファイルから稼働率を計算する
// 必須列（コンサル名・稼働時間・日付）を解決できなければ空の結果と警告を返す
func Calculate(t *parser.Table, opts Options) *Result {
	res := &Result{
		Months:        []string{},
		Hours:         map[string]map[string]float64{},
		StandardHours: map[string]float64{},
		Rates:         map[string]map[string]float64{},
		Consultants:   []string{},
	}
	if t == nil {
		return res
	}

	consCol, consOK := parser.DetectColumn(t.Columns, consultantPatterns)
	hoursCol, hoursOK := parser.DetectColumn(t.Columns, hoursPatterns)
	dateCol, dateOK := parser.DetectColumn(t.Columns, datePatterns)
	if !consOK || !hoursOK || !dateOK {
		res.Warning = "稼働コストに コンサル名 / 稼働時間 / 日付 列が見つかりません。"
		return res
	}

	hoursPerDay := opts.HoursPerDay
	if hoursPerDay <= 0 {
		hoursPerDay = 8
	}

	consIdx := t.Index(consCol)
	hoursIdx := t.Index(hoursCol)
	dateIdx := t.Index(dateCol)

	monthSet := map[string]struct{}{}
	for i := range t.Rows {
		date, ok := parser.ParseDate(t.Cell(i, dateIdx))
		if !ok {
			continue // 解析不能な日付の行は除外
		}
		ym := yearMonthLabel(date)
		if opts.StartYM != "" && ym < opts.StartYM {
			continue
		}
		if opts.EndYM != "" && ym > opts.EndYM {
			continue
		}
		cons, ok := parser.NormalizeID(t.Cell(i, consIdx))
		if !ok {
			continue
		}
		entry := model.UtilizationEntry{
			Consultant: cons,
			YearMonth:  ym,
			Hours:      parser.ParseHours(t.Cell(i, hoursIdx)),
		}
		res.Entries = append(res.Entries, entry)
		monthSet[ym] = struct{}{}

		row, ok := res.Hours[cons]
		if !ok {
			row = map[string]float64{}
			res.Hours[cons] = row
		}
		row[ym] += entry.Hours
	}

	for ym := range monthSet {
		res.Months = append(res.Months, ym)
	}
	sort.Strings(res.Months)

	for cons := range res.Hours {
		res.Consultants = append(res.Consultants, cons)
	}
	sort.Strings(res.Consultants)

	// 標準稼働時間と稼働率
	// 毎月必ず平日があるので標準時間が 0 になることは無いが、念のため分岐は残す
	for _, ym := range res.Months {
		year, month, ok := parseYearMonthLabel(ym)
		if !ok {
			continue
		}
		std := float64(BusinessDays(year, month)) * hoursPerDay
		res.StandardHours[ym] = std
		for cons, row := range res.Hours {
			rates, ok := res.Rates[cons]
			if !ok {
				rates = map[string]float64{}
				res.Rates[cons] = rates
			}
			if std > 0 {
				rates[ym] = row[ym] / std
			} else {
				rates[ym] = 0
			}
		}
	}

	return res
}

// BusinessDays その月の平日（月〜金）の日数
func BusinessDays(year int, month time.Month) int {
	count := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

func yearMonthLabel(t time.Time) string {
	return fmt.Sprintf("%02d/%02d", t.Year()%100, int(t.Month()))
}

// parseYearMonthLabel "YY/MM" → 西暦年・月（2000年代前提）
func parseYearMonthLabel(ym string) (int, time.Month, bool) {
	var y, m int
	if _, err := fmt.Sscanf(ym, "%02d/%02d", &y, &m); err != nil {
		return 0, 0, false
	}
	if m < 1 || m > 12 {
		return 0, 0, false
	}
	return 2000 + y, time.Month(m), true
}
