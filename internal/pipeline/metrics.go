package pipeline

import (
	"github.com/up-yurikos/projectfinance/internal/model"
)

// ComputeMetrics 派生指標を計算する（純粋関数、全結合が終わった後に一度だけ呼ぶ）
//   - 月数 = max(1, (最大年-最小年)*12 + (最大月-最小月) + 1)
//   - 月次売上 = 売上高 / 月数
//   - 粗利 = 売上高 - 外注費 - 交際費 - 旅費交通費 - 人件費
//   - 粗利率 = 粗利 / 売上高 * 100（売上 0 のときは 0、NaN は出さない）
func ComputeMetrics(p *model.Project) {
	p.ActiveMonths = activeMonths(p)
	p.MonthlyRevenue = p.Revenue / float64(p.ActiveMonths)
	p.GrossProfit = p.Revenue - p.Outsourcing - p.Entertainment - p.Travel - p.Labor
	if p.Revenue > 0 {
		p.GrossProfitRatio = p.GrossProfit / p.Revenue * 100
	} else {
		p.GrossProfitRatio = 0
	}
}

// activeMonths 活動月数（同一日でも 1 ヶ月と数える）
func activeMonths(p *model.Project) int {
	if !p.HasDates {
		return 1
	}
	months := (p.LastDate.Year()-p.FirstDate.Year())*12 +
		int(p.LastDate.Month()) - int(p.FirstDate.Month()) + 1
	if months < 1 {
		return 1
	}
	return months
}
