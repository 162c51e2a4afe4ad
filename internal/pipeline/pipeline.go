// Package pipeline 仕訳帳・取引マスタ・稼働コストからプロジェクト収益を導出する
//
// 処理は一方向のバッチで、入力が変わるたびに全体を作り直す:
//
//	仕訳帳 → 分解 → 集約 → 稼働コスト結合 → マスタ補完 → 指標計算
package pipeline

import (
	"github.com/up-yurikos/projectfinance/internal/idmap"
	"github.com/up-yurikos/projectfinance/internal/model"
	"github.com/up-yurikos/projectfinance/internal/parser"
)

// Options パイプライン実行オプション
type Options struct {
	Ledger *parser.Table // 必須: 仕訳帳
	Master *parser.Table // 任意: 取引マスタ
	Cost   *parser.Table // 任意: 稼働コスト
	IDMap  idmap.Mapper  // nil なら恒等
}

// Result 実行結果
// Warnings は劣化して継続した段（マスタ・稼働コスト）の通知
type Result struct {
	Projects []*model.Project
	Warnings []string
}

// Run パイプライン全体を実行する
// 仕訳帳の構造不備だけが致命的で、二次ファイルの不備は警告に落とす
func Run(opts Options) (*Result, error) {
	entries, err := ParseLedger(opts.Ledger, opts.IDMap)
	if err != nil {
		return nil, err
	}

	txs := SplitLedger(entries)
	projects := AggregateProjects(txs)

	var warnings []string
	if w := IntegrateCosts(projects, opts.Cost); w != "" {
		warnings = append(warnings, w)
	}
	if w := ReconcileMaster(projects, opts.Master); w != "" {
		warnings = append(warnings, w)
	}

	for _, p := range projects {
		ComputeMetrics(p)
	}

	return &Result{Projects: projects, Warnings: warnings}, nil
}
