package static

import (
	"fmt"
	"io/fs"
	"os"

	"mckapp/internal/config"
	"mckapp/web"
)

// Open は設定に従って配信するファイルシステムを返す
func Open(cfg config.StaticConfig) (fs.FS, error) {
	if cfg.Embedded {
		return EmbeddedFS(), nil
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("静的ファイルのルートを開けません: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("静的ファイルのルートがディレクトリではありません: %s", cfg.Root)
	}

	return os.DirFS(cfg.Root), nil
}

// EmbeddedFS はバイナリに埋め込まれたページのファイルシステムを返す
func EmbeddedFS() fs.FS {
	return web.Files
}
