package utilization

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/up-yurikos/projectfinance/internal/parser"
)

func TestBusinessDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.March, 21},
		{2024, time.January, 23},
		{2024, time.February, 21}, // うるう年
		{2023, time.December, 21},
	}
	for _, tt := range tests {
		if got := BusinessDays(tt.year, tt.month); got != tt.want {
			t.Fatalf("BusinessDays(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestCalculate_Rates(t *testing.T) {
	t.Parallel()

	table := &parser.Table{
		Columns: []string{"コンサルタント名", "稼働時間", "稼働月-月次"},
		Rows: [][]string{
			{"山田", "12.5h", "2024/03/01"},
			{"山田", "80", "2024/03/15"},
			{"鈴木", "160", "2024/03/01"},
		},
	}

	res := Calculate(table, Options{})
	if res.Warning != "" {
		t.Fatalf("unexpected warning: %q", res.Warning)
	}
	if len(res.Months) != 1 || res.Months[0] != "24/03" {
		t.Fatalf("months = %v", res.Months)
	}

	// 2024年3月は平日21日 × 8h = 168h
	if res.StandardHours["24/03"] != 168 {
		t.Fatalf("standard = %v", res.StandardHours["24/03"])
	}

	// "12.5h" は単位を捨てて 12.5 として合算される
	if got := res.Hours["山田"]["24/03"]; got != 92.5 {
		t.Fatalf("山田 hours = %v", got)
	}
	if got := res.Rates["山田"]["24/03"]; math.Abs(got-92.5/168) > 1e-9 {
		t.Fatalf("山田 rate = %v", got)
	}
	if got := res.Rates["鈴木"]["24/03"]; math.Abs(got-160.0/168) > 1e-9 {
		t.Fatalf("鈴木 rate = %v", got)
	}

	// 行順は名前昇順
	if len(res.Consultants) != 2 || res.Consultants[0] != "山田" || res.Consultants[1] != "鈴木" {
		t.Fatalf("consultants = %v", res.Consultants)
	}
}

func TestCalculate_WindowFilter(t *testing.T) {
	t.Parallel()

	table := &parser.Table{
		Columns: []string{"氏名", "稼働時間", "稼働日"},
		Rows: [][]string{
			{"山田", "100", "2023/12/01"}, // 下限より前
			{"山田", "100", "2024/01/15"},
			{"山田", "100", "2024/02/15"},
			{"山田", "100", "2024/05/01"}, // 上限より後
		},
	}

	res := Calculate(table, Options{StartYM: "24/01", EndYM: "24/03"})
	if len(res.Months) != 2 {
		t.Fatalf("months = %v", res.Months)
	}
	if res.Months[0] != "24/01" || res.Months[1] != "24/02" {
		t.Fatalf("months = %v", res.Months)
	}
}

func TestCalculate_InvalidRowsSkipped(t *testing.T) {
	t.Parallel()

	table := &parser.Table{
		Columns: []string{"コンサルタント名", "稼働時間", "稼働日"},
		Rows: [][]string{
			{"山田", "100", "不明"},       // 日付解析不能
			{"", "100", "2024/03/01"},  // 名前欠損
			{"山田", "80", "2024/03/01"}, // 有効
		},
	}

	res := Calculate(table, Options{})
	if got := res.Hours["山田"]["24/03"]; got != 80 {
		t.Fatalf("hours = %v", got)
	}
	if len(res.Entries) != 1 {
		t.Fatalf("entries = %d", len(res.Entries))
	}
}

func TestCalculate_MissingColumns(t *testing.T) {
	t.Parallel()

	table := &parser.Table{Columns: []string{"取引ID", "稼働コスト"}}
	res := Calculate(table, Options{})
	if !strings.Contains(res.Warning, "列が見つかりません") {
		t.Fatalf("warning = %q", res.Warning)
	}
	if len(res.Months) != 0 || len(res.Consultants) != 0 {
		t.Fatalf("expected empty result: %+v", res)
	}
}

func TestCalculate_NilTable(t *testing.T) {
	t.Parallel()

	res := Calculate(nil, Options{})
	if res == nil || len(res.Months) != 0 || res.Warning != "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCalculate_CustomHoursPerDay(t *testing.T) {
	t.Parallel()

	table := &parser.Table{
		Columns: []string{"氏名", "稼働時間", "稼働日"},
		Rows:    [][]string{{"山田", "70", "2024/03/01"}},
	}

	res := Calculate(table, Options{HoursPerDay: 7})
	// 21平日 × 7h = 147h
	if res.StandardHours["24/03"] != 147 {
		t.Fatalf("standard = %v", res.StandardHours["24/03"])
	}
}
