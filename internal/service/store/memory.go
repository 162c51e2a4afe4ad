// Package store 入力ファイルと計算結果を保持するメモリストア
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/up-yurikos/projectfinance/internal/idmap"
	"github.com/up-yurikos/projectfinance/internal/model"
	"github.com/up-yurikos/projectfinance/internal/parser"
	"github.com/up-yurikos/projectfinance/internal/pipeline"
)

// ErrNoLedger 仕訳帳が未登録
var ErrNoLedger = errors.New("仕訳帳が読み込まれていません")

// DatasetStore 入力ファイルと派生データのメモリ保持
// 入力が変わるたびにパイプライン全体を再実行して結果を丸ごと置き換える
// （差分更新はしない。前回の中間結果は捨てるだけ）
type DatasetStore struct {
	mu     sync.RWMutex
	mapper idmap.Mapper

	ledger *parser.Table
	master *parser.Table
	cost   *parser.Table

	result  *pipeline.Result
	builtAt time.Time
}

// New メモリストアを作る（mapper nil は恒等）
func New(mapper idmap.Mapper) *DatasetStore {
	if mapper == nil {
		mapper = idmap.Identity()
	}
	return &DatasetStore{mapper: mapper}
}

// SetLedger 仕訳帳を差し替えて再計算する
func (s *DatasetStore) SetLedger(t *parser.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.ledger
	s.ledger = t
	if err := s.rebuildLocked(); err != nil {
		s.ledger = prev // 壊れた入力で既存データを失わない
		if prev != nil {
			_ = s.rebuildLocked()
		}
		return err
	}
	return nil
}

// SetMaster 取引マスタを差し替えて再計算する
func (s *DatasetStore) SetMaster(t *parser.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.master = t
	if s.ledger == nil {
		return nil // 仕訳帳が来たときに反映される
	}
	return s.rebuildLocked()
}

// SetCost 稼働コストを差し替えて再計算する
func (s *DatasetStore) SetCost(t *parser.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cost = t
	if s.ledger == nil {
		return nil
	}
	return s.rebuildLocked()
}

func (s *DatasetStore) rebuildLocked() error {
	if s.ledger == nil {
		return ErrNoLedger
	}
	result, err := pipeline.Run(pipeline.Options{
		Ledger: s.ledger,
		Master: s.master,
		Cost:   s.cost,
		IDMap:  s.mapper,
	})
	if err != nil {
		return err
	}
	s.result = result
	s.builtAt = time.Now()
	return nil
}

// Ready 計算結果があるか
func (s *DatasetStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result != nil
}

// Projects フィルタに一致するプロジェクト一覧
func (s *DatasetStore) Projects(f Filter) []*model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil
	}
	out := make([]*model.Project, 0, len(s.result.Projects))
	for _, p := range s.result.Projects {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Warnings 直近のパイプライン実行の警告
func (s *DatasetStore) Warnings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil
	}
	return s.result.Warnings
}

// CostTable 稼働コストの生データ（稼働率計算用）
func (s *DatasetStore) CostTable() *parser.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cost
}

// HasMaster / HasCost 入力ファイルの有無
func (s *DatasetStore) HasMaster() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.master != nil
}

func (s *DatasetStore) HasCost() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cost != nil
}

// ProjectCount 全プロジェクト数（フィルタなし）
func (s *DatasetStore) ProjectCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return 0
	}
	return len(s.result.Projects)
}

// DateRange 全プロジェクトの取引日範囲（期間フィルタの初期値用）
func (s *DatasetStore) DateRange() (min, max time.Time, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return time.Time{}, time.Time{}, false
	}
	for _, p := range s.result.Projects {
		if !p.HasDates {
			continue
		}
		if !ok || p.FirstDate.Before(min) {
			min = p.FirstDate
		}
		if !ok || p.LastDate.After(max) {
			max = p.LastDate
		}
		ok = true
	}
	return min, max, ok
}

// BuiltAt 直近の再計算時刻
func (s *DatasetStore) BuiltAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.builtAt
}
