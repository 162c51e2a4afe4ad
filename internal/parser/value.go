package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonNumericRe = regexp.MustCompile(`[^\d.]`)

// ParseAmount 金額セルを数値化する（カンマ許容、解析不能は 0）
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseHours 稼働時間セルを数値化する
// "12.5h" のような単位付き入力に備えて数字と小数点以外を捨ててから解析する
// 解析不能は 0
func ParseHours(raw string) float64 {
	s := nonNumericRe.ReplaceAllString(raw, "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// 日付の候補書式（優先順に試す）
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006年1月2日",
	"2006年1月",
	"2006-01",
	"2006/01",
}

// ParseDate 日付セルを解析する
// 候補書式を順に試し、どれにも一致しなければ ok=false
// 解析不能な日付は最小/最大・期間判定から除外される
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
