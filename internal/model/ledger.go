package model

import "time"

// Category 勘定科目カテゴリ
type Category string

const (
	CategoryRevenue       Category = "売上高"
	CategoryOutsourcing   Category = "外注費"
	CategoryEntertainment Category = "交際費"
	CategoryTravel        Category = "旅費交通費"
)

// CostCategories 費用側として集計する勘定科目
var CostCategories = []Category{
	CategoryOutsourcing,
	CategoryEntertainment,
	CategoryTravel,
}

// IsCostCategory 費用カテゴリかどうか
func IsCostCategory(c Category) bool {
	for _, cc := range CostCategories {
		if c == cc {
			return true
		}
	}
	return false
}

// LedgerEntry 仕訳帳の1行（貸借両側をエクスポートのまま保持）
type LedgerEntry struct {
	Date               time.Time // 取引日（解析不能はゼロ値 + DateValid=false）
	DateValid          bool
	CreditAccount      string // 貸方勘定科目
	CreditDepartment   string // 貸方部門（レコードID）
	CreditCounterparty string // 貸方取引先名
	CreditAmount       float64
	DebitAccount       string // 借方勘定科目
	DebitDepartment    string // 借方部門（レコードID）
	DebitCounterparty  string // 借方取引先名
	DebitAmount        float64
}

// UniformTransaction 仕訳から整形した取引レコード
// 売上行は貸方側、費用行は借方側から作られる
type UniformTransaction struct {
	ProjectID    string
	Counterparty string
	Category     Category
	Amount       float64
	Date         time.Time
	DateValid    bool
}
