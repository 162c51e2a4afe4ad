package parser

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// ErrUndecodable CSV をどの文字コードでも読めなかった
var ErrUndecodable = errors.New("CSV の読み込みに失敗しました。文字コードを確認してください")

// ErrNoCSVInZip ZIP の中に CSV が無い
var ErrNoCSVInZip = errors.New("ZIP に CSV が見つかりません")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTable ファイル名の拡張子で入力形式を判別して Table を返す
//   - .zip  → ZIP 内の最初の CSV
//   - .xlsx → 先頭シート（取引マスタ / 稼働コストの XLSX エクスポート用）
//   - その他 → CSV
func ReadTable(filename string, data []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zip":
		return readZipCSV(data)
	case ".xlsx":
		return readXLSX(data)
	default:
		return DecodeCSV(data)
	}
}

// DecodeCSV 文字コードを順に試して CSV を読む
// 候補順: ① BOM 付き UTF-8 ② UTF-8 ③ Shift_JIS (cp932)
// 最初に成功した候補を採用する
func DecodeCSV(data []byte) (*Table, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return parseCSV(bytes.TrimPrefix(data, utf8BOM))
	}
	if utf8.Valid(data) {
		return parseCSV(data)
	}
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return parseCSV(decoded)
}

func parseCSV(data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: ヘッダ行がありません", ErrUndecodable)
	}
	cols := make([]string, len(records[0]))
	for i, c := range records[0] {
		cols[i] = strings.TrimSpace(c)
	}
	return &Table{Columns: cols, Rows: records[1:]}, nil
}

func readZipCSV(data []byte) (*Table, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("ZIP ファイルが壊れています: %w", err)
	}
	for _, f := range zr.File {
		name := strings.ToLower(f.Name)
		if !strings.HasSuffix(name, ".csv") || strings.HasSuffix(f.Name, "/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("ZIP 内 CSV を開けません: %w", err)
		}
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("ZIP 内 CSV を読めません: %w", err)
		}
		return DecodeCSV(buf.Bytes())
	}
	return nil, ErrNoCSVInZip
}

func readXLSX(data []byte) (*Table, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("XLSX の読み込みに失敗しました: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX にシートがありません")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("XLSX の読み込みに失敗しました: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("XLSX にヘッダ行がありません")
	}
	cols := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		cols[i] = strings.TrimSpace(c)
	}
	return &Table{Columns: cols, Rows: rows[1:]}, nil
}
