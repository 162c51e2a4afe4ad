package pipeline

import (
	"github.com/up-yurikos/projectfinance/internal/model"
	"github.com/up-yurikos/projectfinance/internal/parser"
)

// 稼働コストファイルの列候補（優先順）
var (
	costIDPatterns   = []string{"取引id", "レコードid", "recordid"}
	costCostPatterns = []string{"稼働コスト", "人件費", "cost"}
	costNamePatterns = []string{"会社名", "取引先", "client", "customer"}
)

// IntegrateCosts 稼働コストファイルを人件費としてプロジェクトへ結合する
// レコードIDごとにコストを合算し、最初に現れた会社名を補完用に控える
// 左結合: 該当コスト行が無いプロジェクトは人件費 0 のまま
// 必須列（ID・コスト）を解決できない場合は何もせず警告を返す（致命的ではない）
func IntegrateCosts(projects []*model.Project, cost *parser.Table) (warning string) {
	if cost == nil {
		return ""
	}

	idCol, idOK := parser.DetectColumn(cost.Columns, costIDPatterns)
	costCol, costOK := parser.DetectColumn(cost.Columns, costCostPatterns)
	if !idOK || !costOK {
		return "稼働コストに 取引ID / 稼働コスト 列が見つかりません。人件費は 0 として扱います。"
	}
	nameCol, nameOK := parser.DetectColumn(cost.Columns, costNamePatterns)

	type costInfo struct {
		labor   float64
		name    string
		hasName bool
	}
	byID := make(map[string]*costInfo)

	idIdx := cost.Index(idCol)
	costIdx := cost.Index(costCol)
	nameIdx := -1
	if nameOK {
		nameIdx = cost.Index(nameCol)
	}

	for i := range cost.Rows {
		id, ok := parser.NormalizeID(cost.Cell(i, idIdx))
		if !ok {
			continue
		}
		info, exists := byID[id]
		if !exists {
			info = &costInfo{}
			byID[id] = info
		}
		info.labor += parser.ParseAmount(cost.Cell(i, costIdx))
		if nameIdx >= 0 && !info.hasName {
			if name, ok := parser.NormalizeID(cost.Cell(i, nameIdx)); ok {
				info.name = name
				info.hasName = true
			}
		}
	}

	for _, p := range projects {
		info, ok := byID[p.ID]
		if !ok {
			continue
		}
		p.Labor = info.labor
		p.CostCounterparty = info.name
		p.HasCostName = info.hasName
	}
	return ""
}
