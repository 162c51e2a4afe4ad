package pipeline

import (
	"fmt"
	"strings"

	"github.com/up-yurikos/projectfinance/internal/idmap"
	"github.com/up-yurikos/projectfinance/internal/model"
	"github.com/up-yurikos/projectfinance/internal/parser"
)

// 仕訳帳の必須列（候補は正規化後に完全一致で解決する）
var ledgerColumns = []struct {
	key      string
	patterns []string
}{
	{"date", []string{"取引日", "date"}},
	{"creditAccount", []string{"貸方勘定科目"}},
	{"creditDepartment", []string{"貸方部門"}},
	{"creditCounterparty", []string{"貸方取引先名", "貸方取引先"}},
	{"creditAmount", []string{"貸方金額"}},
	{"debitAccount", []string{"借方勘定科目"}},
	{"debitDepartment", []string{"借方部門"}},
	{"debitCounterparty", []string{"借方取引先名", "借方取引先"}},
	{"debitAmount", []string{"借方金額"}},
}

// ParseLedger 仕訳帳 Table を LedgerEntry 列に変換する
// 必須列が欠けている場合はエラー（仕訳帳が読めないと後段が全て成り立たない）
// 部門コードには mapper による固定置換を適用する
func ParseLedger(t *parser.Table, mapper idmap.Mapper) ([]model.LedgerEntry, error) {
	if mapper == nil {
		mapper = idmap.Identity()
	}

	resolved := make(map[string]int, len(ledgerColumns))
	var missing []string
	for _, c := range ledgerColumns {
		name, ok := parser.DetectColumn(t.Columns, c.patterns)
		if !ok {
			missing = append(missing, c.patterns[0])
			continue
		}
		resolved[c.key] = t.Index(name)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("仕訳帳に必須列がありません: %s", strings.Join(missing, ", "))
	}

	entries := make([]model.LedgerEntry, 0, t.RowCount())
	for i := range t.Rows {
		date, dateOK := parser.ParseDate(t.Cell(i, resolved["date"]))
		entries = append(entries, model.LedgerEntry{
			Date:               date,
			DateValid:          dateOK,
			CreditAccount:      strings.TrimSpace(t.Cell(i, resolved["creditAccount"])),
			CreditDepartment:   remapID(t.Cell(i, resolved["creditDepartment"]), mapper),
			CreditCounterparty: strings.TrimSpace(t.Cell(i, resolved["creditCounterparty"])),
			CreditAmount:       parser.ParseAmount(t.Cell(i, resolved["creditAmount"])),
			DebitAccount:       strings.TrimSpace(t.Cell(i, resolved["debitAccount"])),
			DebitDepartment:    remapID(t.Cell(i, resolved["debitDepartment"]), mapper),
			DebitCounterparty:  strings.TrimSpace(t.Cell(i, resolved["debitCounterparty"])),
			DebitAmount:        parser.ParseAmount(t.Cell(i, resolved["debitAmount"])),
		})
	}
	return entries, nil
}

// remapID 部門コードを正規化して固定マッピングを引く
// 置換先が無ければ元の値（trim のみ）を返す
func remapID(raw string, mapper idmap.Mapper) string {
	id, ok := parser.NormalizeID(raw)
	if !ok {
		return ""
	}
	if mapped, ok := mapper.Lookup(id); ok {
		return mapped
	}
	return id
}

// SplitLedger 仕訳を売上行・費用行の統一レコードに分解する
//   - 貸方勘定科目 = 売上高 → 売上行（貸方側の部門・取引先・金額）
//   - 借方勘定科目 ∈ 費用科目 → 費用行（借方側）
//
// どちらにも該当しない行、部門コードが欠損の行は黙って捨てる
// （仕訳帳の大半は対象外の計上行なのでエラーにはしない）
func SplitLedger(entries []model.LedgerEntry) []model.UniformTransaction {
	txs := make([]model.UniformTransaction, 0, len(entries))
	for _, e := range entries {
		if e.CreditAccount == string(model.CategoryRevenue) && e.CreditDepartment != "" {
			txs = append(txs, model.UniformTransaction{
				ProjectID:    e.CreditDepartment,
				Counterparty: e.CreditCounterparty,
				Category:     model.CategoryRevenue,
				Amount:       e.CreditAmount,
				Date:         e.Date,
				DateValid:    e.DateValid,
			})
		}
		if model.IsCostCategory(model.Category(e.DebitAccount)) && e.DebitDepartment != "" {
			txs = append(txs, model.UniformTransaction{
				ProjectID:    e.DebitDepartment,
				Counterparty: e.DebitCounterparty,
				Category:     model.Category(e.DebitAccount),
				Amount:       e.DebitAmount,
				Date:         e.Date,
				DateValid:    e.DateValid,
			})
		}
	}
	return txs
}
