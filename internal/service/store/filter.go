package store

import (
	"strings"
	"time"

	"github.com/up-yurikos/projectfinance/internal/model"
)

// Filter プロジェクトの絞り込み条件（サイドバーのフィルタ相当）
// ゼロ値は「絞り込まない」
type Filter struct {
	IDContains      string    // レコードID 部分一致
	Start           time.Time // 期間下限（日付最大がこれ以降）
	End             time.Time // 期間上限（日付最小がこれ以前）
	Owners          []string  // 取引担当者
	Industries      []string  // Industry
	IndustryDetails []string  // Industry詳細
}

func (f Filter) match(p *model.Project) bool {
	if f.IDContains != "" && !strings.Contains(p.ID, f.IDContains) {
		return false
	}
	// 期間は活動期間との重なりで判定する
	if !f.Start.IsZero() {
		if !p.HasDates || p.LastDate.Before(f.Start) {
			return false
		}
	}
	if !f.End.IsZero() {
		if !p.HasDates || p.FirstDate.After(f.End) {
			return false
		}
	}
	if len(f.Owners) > 0 && !containsString(f.Owners, p.Owner) {
		return false
	}
	if len(f.Industries) > 0 && !containsString(f.Industries, p.Industry) {
		return false
	}
	if len(f.IndustryDetails) > 0 && !containsString(f.IndustryDetails, p.IndustryDetail) {
		return false
	}
	return true
}

func containsString(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}
