package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/up-yurikos/projectfinance/internal/config"
	"github.com/up-yurikos/projectfinance/internal/server"
	"github.com/up-yurikos/projectfinance/internal/util"
)

var (
	port    = flag.Int("port", 0, "サービスポート (config.toml より優先)")
	devMode = flag.Bool("dev", false, "開発モード")
	dataDir = flag.String("dataDir", "", "データディレクトリ (設定ファイルを上書き)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  projectfinance - プロジェクト収益分析ツール")
	fmt.Println("==========================================")

	// 設定読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("設定の読み込みに失敗したため既定値を使います: %v", err)
		cfg = config.DefaultConfig()
	}

	// コマンドライン引数で上書き
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// データディレクトリを確保
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("データディレクトリの作成に失敗しました: %v", err)
	} else {
		fmt.Printf("データディレクトリ: %s\n", dir)
	}

	// サーバ作成
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// サーバ起動
	go func() {
		fmt.Printf("サービス起動中、ポート %d で待ち受けます...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("サービスの起動に失敗しました: %v", err)
		}
	}()

	// ブラウザを開く
	if !cfg.Server.DevMode {
		fmt.Printf("ブラウザを開いています: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("ブラウザを自動で開けませんでした。手動でアクセスしてください: %s\n", url)
		}
	} else {
		fmt.Printf("開発モード: %s にアクセスしてください\n", url)
	}

	fmt.Println("\nCtrl+C で停止します...")

	// シグナル待ち（データはメモリ保持のみなので保存処理は無い）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nサービスを終了します")
}
