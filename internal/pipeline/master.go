package pipeline

import (
	"github.com/up-yurikos/projectfinance/internal/model"
	"github.com/up-yurikos/projectfinance/internal/parser"
)

// 取引マスタの列候補（優先順）
var (
	masterIDPatterns       = []string{"取引id", "レコードid", "recordid", "dealid"}
	masterAmountPatterns   = []string{"金額", "売上金額", "見積金額", "amount"}
	masterTitlePatterns    = []string{"取引名", "案件名", "dealname", "title"}
	masterOwnerPatterns    = []string{"取引担当者", "担当者", "owner", "sales"}
	masterIndustryPatterns = []string{"industry", "業界"}
	masterIndDetPatterns   = []string{"industry詳細", "industrydetail", "業界詳細"}
	masterProductPatterns  = []string{"提案商材", "proposal", "product"}
)

type masterRow struct {
	amount         float64
	title          string
	owner          string
	industry       string
	industryDetail string
	product        string
}

// ReconcileMaster 取引マスタでプロジェクトを補完する
//   - ID で重複排除（先勝ち）して左結合
//   - 任意項目（取引名・担当者・Industry 等）はマスタ行があるときに転記
//   - 売上補完は全プロジェクトを対象に、売上高がちょうど 0 のものだけ
//     マスタ金額で上書きする（マスタに無い ID は金額 0 とみなす）。
//     その際に稼働コスト由来の会社名があれば取引先も差し替える
//
// 必須列（ID・金額）を解決できない場合は結合をスキップして警告を返す
func ReconcileMaster(projects []*model.Project, master *parser.Table) (warning string) {
	if master == nil {
		return ""
	}

	idCol, idOK := parser.DetectColumn(master.Columns, masterIDPatterns)
	amtCol, amtOK := parser.DetectColumn(master.Columns, masterAmountPatterns)
	if !idOK || !amtOK {
		return "取引マスタに 取引ID / 金額 列が見つからないため、マスタ補完をスキップしました。"
	}

	idIdx := master.Index(idCol)
	amtIdx := master.Index(amtCol)
	optIdx := func(patterns []string) int {
		if name, ok := parser.DetectColumn(master.Columns, patterns); ok {
			return master.Index(name)
		}
		return -1
	}
	titleIdx := optIdx(masterTitlePatterns)
	ownerIdx := optIdx(masterOwnerPatterns)
	indIdx := optIdx(masterIndustryPatterns)
	indDetIdx := optIdx(masterIndDetPatterns)
	prodIdx := optIdx(masterProductPatterns)

	byID := make(map[string]masterRow)
	for i := range master.Rows {
		id, ok := parser.NormalizeID(master.Cell(i, idIdx))
		if !ok {
			continue
		}
		if _, dup := byID[id]; dup {
			continue // 先勝ち
		}
		cell := func(idx int) string {
			if idx < 0 {
				return ""
			}
			s, _ := parser.NormalizeID(master.Cell(i, idx))
			return s
		}
		byID[id] = masterRow{
			amount:         parser.ParseAmount(master.Cell(i, amtIdx)),
			title:          cell(titleIdx),
			owner:          cell(ownerIdx),
			industry:       cell(indIdx),
			industryDetail: cell(indDetIdx),
			product:        cell(prodIdx),
		}
	}

	for _, p := range projects {
		// マスタに無い ID はゼロ値の行（金額 0）として扱う
		row, matched := byID[p.ID]
		if matched {
			p.Title = row.title
			p.Owner = row.owner
			p.Industry = row.industry
			p.IndustryDetail = row.industryDetail
			p.Product = row.product
		}

		// 売上 0 のときだけ補完する。0 以外は仕訳帳の値が常に優先
		// 取引先の差し替えは稼働コスト由来の名前があるときだけで、
		// マスタ行の有無には依らない
		if p.Revenue == 0 {
			p.Revenue = row.amount
			if p.HasCostName {
				p.Counterparty = p.CostCounterparty
			}
		}
	}
	return ""
}
