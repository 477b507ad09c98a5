// Package main はmckappサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"mckapp/internal/config"
	"mckapp/internal/server"
)

// flagEnv はコマンドラインオプションと、それが上書きする環境変数の対応
var flagEnv = map[string]string{
	"host":  config.EnvHost,
	"port":  config.EnvPort,
	"root":  config.EnvStaticRoot,
	"embed": config.EnvStaticEmbed,
}

// newFlagSet はコマンドラインオプションを定義する
func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	fs.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
	fs.Int("port", 0, "サーバーのポート (デフォルト: 8080)")
	fs.String("root", "", "配信するディレクトリ (デフォルト: web)")
	fs.Bool("embed", false, "バイナリに埋め込んだファイルを配信する")
	fs.Bool("help", false, "ヘルプを表示")
	return fs
}

// applyFlags は明示的に指定されたオプションを環境変数に書き込む
// オプションは環境変数より優先され、検証は config.Load でまとめて行う
func applyFlags(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		key, ok := flagEnv[f.Name]
		if !ok || err != nil {
			return
		}
		err = os.Setenv(key, f.Value.String())
	})
	return err
}

func main() {
	fs := newFlagSet()
	_ = fs.Parse(os.Args[1:])

	// ヘルプ表示
	if fs.Lookup("help").Value.String() == "true" {
		fmt.Println("mckapp")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		fs.PrintDefaults()
		os.Exit(0)
	}

	// コマンドラインオプションで設定を上書き
	if err := applyFlags(fs); err != nil {
		log.Fatalf("オプションの反映に失敗しました: %v", err)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	server.SetMode(cfg)
	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("サーバーの作成に失敗しました: %v", err)
	}

	if err := srv.Start(context.Background()); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
