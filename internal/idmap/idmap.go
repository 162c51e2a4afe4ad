// Package idmap 部門コード（レコードID）の置換を提供する
// 旧 RecordID → DealID の移行用で、パイプラインには注入して使う
package idmap

// Mapper レコードID置換
// Lookup は置換先があるときだけ ok=true を返す
type Mapper interface {
	Lookup(id string) (string, bool)
}

type identity struct{}

func (identity) Lookup(string) (string, bool) { return "", false }

// Identity 置換を行わないマッパー
func Identity() Mapper { return identity{} }

type fixed map[string]string

func (m fixed) Lookup(id string) (string, bool) {
	v, ok := m[id]
	return v, ok
}

// Fixed 固定マッピング表に基づくマッパー
func Fixed() Mapper { return fixed(fixedTable) }

// FromTable 任意の対応表からマッパーを作る（テスト・差し替え用）
func FromTable(table map[string]string) Mapper {
	m := make(fixed, len(table))
	for k, v := range table {
		m[k] = v
	}
	return m
}
