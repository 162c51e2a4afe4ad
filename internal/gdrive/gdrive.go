// Package gdrive Google Drive 共有リンクからのファイル取得
package gdrive

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

var (
	fileIDRe  = regexp.MustCompile(`/file/d/([^/?#]+)`)
	queryIDRe = regexp.MustCompile(`[?&]id=([^&#]+)`)
)

// DirectURL 共有リンクを直接ダウンロード URL に変換する
// 対応形式: https://drive.google.com/file/d/<id>/view... / ...?id=<id>
func DirectURL(shareURL string) (string, error) {
	if !strings.HasPrefix(shareURL, "http") {
		return "", fmt.Errorf("リンク形式が正しくありません: %s", shareURL)
	}
	if m := fileIDRe.FindStringSubmatch(shareURL); m != nil {
		return "https://drive.google.com/uc?export=download&id=" + m[1], nil
	}
	if m := queryIDRe.FindStringSubmatch(shareURL); m != nil {
		return "https://drive.google.com/uc?export=download&id=" + m[1], nil
	}
	return "", fmt.Errorf("リンクからファイルIDを取得できません: %s", shareURL)
}

// Fetch 共有リンクの指すファイルを取得する
// 取得はブロッキングで、タイムアウト・リトライは行わない（現行挙動の踏襲）
func Fetch(shareURL string) ([]byte, error) {
	url, err := DirectURL(shareURL)
	if err != nil {
		return nil, err
	}

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("google drive 読み込み失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google drive 読み込み失敗: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
