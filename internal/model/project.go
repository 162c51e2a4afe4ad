package model

import "time"

// Project レコードID単位の集計結果
// 集計 → 稼働コスト結合 → マスタ補完 → 指標計算 の順に埋まり、
// 計算後は次回パイプライン実行まで読み取り専用
type Project struct {
	ID           string `json:"id"`           // レコードID
	Counterparty string `json:"counterparty"` // 取引先

	Revenue       float64 `json:"revenue"`       // 売上高
	Outsourcing   float64 `json:"outsourcing"`   // 外注費
	Entertainment float64 `json:"entertainment"` // 交際費
	Travel        float64 `json:"travel"`        // 旅費交通費
	Labor         float64 `json:"labor"`         // 人件費（稼働コスト由来）

	FirstDate time.Time `json:"firstDate"` // 日付（最小）
	LastDate  time.Time `json:"lastDate"`  // 日付（最大）
	HasDates  bool      `json:"hasDates"`

	// 稼働コスト由来の取引先名（売上補完時の差し替え用）
	CostCounterparty string `json:"-"`
	HasCostName      bool   `json:"-"`

	// 取引マスタ由来の任意項目
	Title          string `json:"title,omitempty"`          // 取引名
	Owner          string `json:"owner,omitempty"`          // 取引担当者
	Industry       string `json:"industry,omitempty"`       // Industry
	IndustryDetail string `json:"industryDetail,omitempty"` // Industry詳細
	Product        string `json:"product,omitempty"`        // 提案商材

	// 派生指標
	ActiveMonths     int     `json:"activeMonths"`     // 月数
	MonthlyRevenue   float64 `json:"monthlyRevenue"`   // 月次売上
	GrossProfit      float64 `json:"grossProfit"`      // 粗利
	GrossProfitRatio float64 `json:"grossProfitRatio"` // 粗利率 (%)
}

// MonthlyRecord 月次按分レコード（期間フィルタ内の月のみ生成される）
type MonthlyRecord struct {
	ProjectID    string  `json:"id"`
	Counterparty string  `json:"counterparty"`
	YearMonth    string  `json:"yearMonth"` // "YY/MM"
	Revenue      float64 `json:"revenue"`   // 月次売上（丸め済み）
	Profit       float64 `json:"profit"`    // 月次粗利（丸め済み）
}

// UtilizationEntry コンサルタントの月次稼働
type UtilizationEntry struct {
	Consultant string  `json:"consultant"`
	YearMonth  string  `json:"yearMonth"` // "YY/MM"
	Hours      float64 `json:"hours"`
}
