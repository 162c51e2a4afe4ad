package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestDecodeCSV_UTF8BOM(t *testing.T) {
	t.Parallel()

	data := append(append([]byte{}, utf8BOM...), []byte("取引日,金額\n2024-01-15,100\n")...)
	table, err := DecodeCSV(data)
	if err != nil {
		t.Fatalf("DecodeCSV: %v", err)
	}
	// BOM はヘッダ名に残らない
	if table.Columns[0] != "取引日" {
		t.Fatalf("unexpected header: %q", table.Columns[0])
	}
	if table.RowCount() != 1 {
		t.Fatalf("rows = %d", table.RowCount())
	}
}

func TestDecodeCSV_ShiftJIS(t *testing.T) {
	t.Parallel()

	src := "取引日,取引先\n2024-01-15,株式会社サンプル\n"
	sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(src))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	table, err := DecodeCSV(sjis)
	if err != nil {
		t.Fatalf("DecodeCSV: %v", err)
	}
	if table.Cell(0, 1) != "株式会社サンプル" {
		t.Fatalf("unexpected cell: %q", table.Cell(0, 1))
	}
}

func TestDecodeCSV_PlainUTF8(t *testing.T) {
	t.Parallel()

	table, err := DecodeCSV([]byte("a,b\n1,2\n3,4\n"))
	if err != nil {
		t.Fatalf("DecodeCSV: %v", err)
	}
	if len(table.Columns) != 2 || table.RowCount() != 2 {
		t.Fatalf("unexpected shape: %v / %d", table.Columns, table.RowCount())
	}
}

func TestDecodeCSV_Empty(t *testing.T) {
	t.Parallel()

	if _, err := DecodeCSV(nil); !errors.Is(err, ErrUndecodable) {
		t.Fatalf("expected ErrUndecodable, got %v", err)
	}
}

func TestReadTable_ZIP(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("仕訳帳.csv")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := f.Write([]byte("取引日,金額\n2024-01-15,100\n")); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}

	table, err := ReadTable("export.zip", buf.Bytes())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if table.RowCount() != 1 || table.Cell(0, 1) != "100" {
		t.Fatalf("unexpected table: %+v", table)
	}
}

func TestReadTable_ZIPWithoutCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, _ := zw.Create("readme.txt")
	f.Write([]byte("hello"))
	zw.Close()

	if _, err := ReadTable("export.zip", buf.Bytes()); !errors.Is(err, ErrNoCSVInZip) {
		t.Fatalf("expected ErrNoCSVInZip, got %v", err)
	}
}

func TestReadTable_XLSX(t *testing.T) {
	t.Parallel()

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	if err := wb.SetSheetRow(sheet, "A1", &[]interface{}{"取引ID", "金額"}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	if err := wb.SetSheetRow(sheet, "A2", &[]interface{}{"9775650935", "500000"}); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	table, err := ReadTable("master.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if table.Columns[0] != "取引ID" || table.Cell(0, 0) != "9775650935" {
		t.Fatalf("unexpected table: %+v", table)
	}
}
