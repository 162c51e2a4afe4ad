package parser

import (
	"strings"
	"unicode"
)

// normalizeHeader 列名を比較用に正規化する（空白除去 + 小文字化）
func normalizeHeader(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// DetectColumn 候補パターンに一致する列名を探す
// パターンは優先順、各パターンについて列を元の並び順で走査し、
// 正規化後に完全一致した最初の列名を返す
func DetectColumn(cols []string, patterns []string) (string, bool) {
	normalized := make([]string, len(cols))
	for i, c := range cols {
		normalized[i] = normalizeHeader(c)
	}
	for _, p := range patterns {
		want := normalizeHeader(p)
		for i, n := range normalized {
			if n == want {
				return cols[i], true
			}
		}
	}
	return "", false
}

// NormalizeID 識別子セルを正規化する
// 空・空白のみ・"nan"・"none"（大文字小文字不問）は欠損扱い
func NormalizeID(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	switch strings.ToLower(s) {
	case "nan", "none":
		return "", false
	}
	return s, true
}
