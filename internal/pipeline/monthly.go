package pipeline

import (
	"fmt"
	"math"
	"time"

	"github.com/up-yurikos/projectfinance/internal/model"
)

// YearMonthLabel 年月の表示形式 "YY/MM"
func YearMonthLabel(t time.Time) string {
	return fmt.Sprintf("%02d/%02d", t.Year()%100, int(t.Month()))
}

// ExpandMonthly プロジェクトの合計を活動月へ均等按分する
// 各プロジェクトについて i = 0..月数-1 の候補月（最小日付 + i ヶ月）を作り、
// 年月単位で start ≤ 候補 ≤ end に入る月だけ MonthlyRecord にする
// 日付情報の無いプロジェクトは按分できないのでスキップ
func ExpandMonthly(projects []*model.Project, start, end time.Time) []model.MonthlyRecord {
	startYM := yearMonthOrdinal(start)
	endYM := yearMonthOrdinal(end)

	records := make([]model.MonthlyRecord, 0)
	for _, p := range projects {
		if !p.HasDates || p.ActiveMonths < 1 {
			continue
		}
		profit := math.Round(p.GrossProfit / float64(p.ActiveMonths))
		revenue := math.Round(p.MonthlyRevenue)
		for i := 0; i < p.ActiveMonths; i++ {
			m := addMonths(p.FirstDate, i)
			ym := yearMonthOrdinal(m)
			if !start.IsZero() && ym < startYM {
				continue
			}
			if !end.IsZero() && ym > endYM {
				continue
			}
			records = append(records, model.MonthlyRecord{
				ProjectID:    p.ID,
				Counterparty: p.Counterparty,
				YearMonth:    YearMonthLabel(m),
				Revenue:      revenue,
				Profit:       profit,
			})
		}
	}
	return records
}

// addMonths 月単位の加算（日付は月初に正規化して月あふれを防ぐ）
func addMonths(t time.Time, months int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
}

// yearMonthOrdinal 年月比較用の通し番号（日・時刻は無視）
func yearMonthOrdinal(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}
