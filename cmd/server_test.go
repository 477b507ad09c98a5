package main

import (
	"testing"

	"mckapp/internal/config"
)

// clearEnv は設定に影響する環境変数を未設定扱いにする
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvConfigFile, config.EnvPort, config.EnvHost, config.EnvMode,
		config.EnvAccessLog, config.EnvStaticRoot, config.EnvStaticIndex, config.EnvStaticEmbed,
	} {
		t.Setenv(key, "")
	}
}

// TestApplyFlags はオプションが環境変数より優先されることをテストする
func TestApplyFlags(t *testing.T) {
	testCases := []struct {
		name     string
		env      map[string]string
		args     []string
		wantHost string
		wantPort int
		wantRoot string
		wantEmb  bool
	}{
		{
			name:     "不正なPORTをオプションで上書き",
			env:      map[string]string{config.EnvPort: "abc"},
			args:     []string{"-port", "9000"},
			wantHost: "0.0.0.0",
			wantPort: 9000,
			wantRoot: config.DefaultRoot,
		},
		{
			name:     "指定していないオプションは環境変数を保持",
			env:      map[string]string{config.EnvHost: "127.0.0.1", config.EnvPort: "7000"},
			args:     []string{"-root", "public"},
			wantHost: "127.0.0.1",
			wantPort: 7000,
			wantRoot: "public",
		},
		{
			name:     "埋め込み配信",
			args:     []string{"-embed"},
			wantHost: "0.0.0.0",
			wantPort: config.DefaultPort,
			wantRoot: config.DefaultRoot,
			wantEmb:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			fs := newFlagSet()
			if err := fs.Parse(tc.args); err != nil {
				t.Fatalf("オプションの解析に失敗しました: %v", err)
			}
			if err := applyFlags(fs); err != nil {
				t.Fatalf("オプションの反映に失敗しました: %v", err)
			}

			cfg, err := config.Load()
			if err != nil {
				t.Fatalf("設定の読み込みに失敗しました: %v", err)
			}
			if cfg.Server.Host != tc.wantHost {
				t.Errorf("ホストが一致しません: got %s, want %s", cfg.Server.Host, tc.wantHost)
			}
			if cfg.Server.Port != tc.wantPort {
				t.Errorf("ポートが一致しません: got %d, want %d", cfg.Server.Port, tc.wantPort)
			}
			if cfg.Static.Root != tc.wantRoot {
				t.Errorf("ルートが一致しません: got %s, want %s", cfg.Static.Root, tc.wantRoot)
			}
			if cfg.Static.Embedded != tc.wantEmb {
				t.Errorf("埋め込み指定が一致しません: got %v, want %v", cfg.Static.Embedded, tc.wantEmb)
			}
		})
	}
}

// TestApplyFlagsInvalidPort は不正なオプション値が検証で弾かれることをテストする
func TestApplyFlagsInvalidPort(t *testing.T) {
	clearEnv(t)

	fs := newFlagSet()
	if err := fs.Parse([]string{"-port", "70000"}); err != nil {
		t.Fatalf("オプションの解析に失敗しました: %v", err)
	}
	if err := applyFlags(fs); err != nil {
		t.Fatalf("オプションの反映に失敗しました: %v", err)
	}

	if _, err := config.Load(); err == nil {
		t.Error("範囲外のポートでエラーが期待されました")
	}
}
