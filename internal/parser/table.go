package parser

// Table ヘッダ行 + 文字列セルの表データ
// CSV / ZIP内CSV / XLSX のどれから読んでも同じ形に揃える
type Table struct {
	Columns []string
	Rows    [][]string
}

// Index 列名から列番号を引く（完全一致、見つからなければ -1）
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell 行番号と列番号からセル値を取り出す
// 行が短い・範囲外の場合は空文字
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// RowCount データ行数
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
