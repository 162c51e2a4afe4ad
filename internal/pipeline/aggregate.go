package pipeline

import (
	"github.com/up-yurikos/projectfinance/internal/model"
)

// AggregateProjects 統一レコードをレコードID単位に集約する
// 勘定科目ごとに金額を合算し、日付の最小・最大と最初に現れた取引先を持たせる
// 出力順は入力中の初出順で安定
func AggregateProjects(txs []model.UniformTransaction) []*model.Project {
	byID := make(map[string]*model.Project)
	order := make([]*model.Project, 0)

	for _, tx := range txs {
		p, ok := byID[tx.ProjectID]
		if !ok {
			p = &model.Project{
				ID:           tx.ProjectID,
				Counterparty: tx.Counterparty,
			}
			byID[tx.ProjectID] = p
			order = append(order, p)
		}

		switch tx.Category {
		case model.CategoryRevenue:
			p.Revenue += tx.Amount
		case model.CategoryOutsourcing:
			p.Outsourcing += tx.Amount
		case model.CategoryEntertainment:
			p.Entertainment += tx.Amount
		case model.CategoryTravel:
			p.Travel += tx.Amount
		}

		if tx.DateValid {
			if !p.HasDates {
				p.FirstDate = tx.Date
				p.LastDate = tx.Date
				p.HasDates = true
			} else {
				if tx.Date.Before(p.FirstDate) {
					p.FirstDate = tx.Date
				}
				if tx.Date.After(p.LastDate) {
					p.LastDate = tx.Date
				}
			}
		}
	}

	return order
}
