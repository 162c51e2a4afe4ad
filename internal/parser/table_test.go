package parser

import "testing"

func TestTable_Accessors(t *testing.T) {
	t.Parallel()

	table := &Table{
		Columns: []string{"取引ID", "金額"},
		Rows: [][]string{
			{"P1", "100"},
			{"P2"}, // 列欠けの行
		},
	}

	if table.Index("金額") != 1 || table.Index("無い列") != -1 {
		t.Fatalf("Index = %d / %d", table.Index("金額"), table.Index("無い列"))
	}
	if table.Cell(0, 1) != "100" {
		t.Fatalf("Cell = %q", table.Cell(0, 1))
	}
	// 範囲外は空文字
	if table.Cell(1, 1) != "" || table.Cell(9, 0) != "" || table.Cell(0, -1) != "" {
		t.Fatalf("out-of-range access must be empty")
	}
	if table.RowCount() != 2 {
		t.Fatalf("RowCount = %d", table.RowCount())
	}

	var nilTable *Table
	if nilTable.RowCount() != 0 {
		t.Fatalf("nil RowCount = %d", nilTable.RowCount())
	}
}
