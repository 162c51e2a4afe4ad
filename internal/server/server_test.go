package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/up-yurikos/projectfinance/internal/config"
	"github.com/up-yurikos/projectfinance/internal/parser"
)

func TestServer_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := NewServer(config.DefaultConfig())

	// ルートは本番モードでツール情報の JSON を返す
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("root status = %d", w.Code)
	}
	var root struct {
		Name string `json:"name"`
		API  string `json:"api"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &root); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if root.Name != "projectfinance" || root.API != "/api" {
		t.Fatalf("root = %+v", root)
	}

	// データ投入前は未初期化
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var status struct {
		Initialized bool `json:"initialized"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if status.Initialized {
		t.Fatalf("store must start empty")
	}

	// ストアへ直接投入した結果が API に反映される
	ledger := &parser.Table{
		Columns: []string{
			"取引日", "貸方勘定科目", "貸方部門", "貸方取引先名", "貸方金額",
			"借方勘定科目", "借方部門", "借方取引先名", "借方金額",
		},
		Rows: [][]string{
			{"2024-01-15", "売上高", "P1", "株式会社A", "100000", "売掛金", "", "", "100000"},
		},
	}
	if err := srv.GetStore().SetLedger(ledger); err != nil {
		t.Fatalf("SetLedger: %v", err)
	}

	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !status.Initialized {
		t.Fatalf("status not updated after SetLedger")
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := NewServer(config.DefaultConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/status", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header")
	}
}
