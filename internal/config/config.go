package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 環境変数名
const (
	EnvConfigFile   = "CONFIG_FILE"
	EnvPort         = "PORT"
	EnvHost         = "SERVER_HOST"
	EnvMode         = "GIN_MODE"
	EnvAccessLog    = "ACCESS_LOG"
	EnvStaticRoot   = "STATIC_ROOT"
	EnvStaticIndex  = "STATIC_INDEX"
	EnvStaticEmbed  = "STATIC_EMBED"
	DefaultPort     = 8080
	DefaultIndex    = "index.html"
	DefaultRoot     = "web"
	defaultDotEnv   = ".env"
	defaultHostname = "0.0.0.0"
)

// minTimeout は0以外のタイムアウトに許す最小値
const minTimeout = time.Millisecond

var (
	ErrInvalidPort    = errors.New("無効なポート番号")
	ErrInvalidTimeout = errors.New("無効なタイムアウト")
	ErrInvalidMode    = errors.New("無効な動作モード")
	ErrInvalidIndex   = errors.New("無効なインデックスファイル名")
	ErrEmptyRoot      = errors.New("静的ファイルのルートが指定されていません")
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `yaml:"server"`
	Static StaticConfig `yaml:"static"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // 読み込みタイムアウト
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // 書き込みタイムアウト
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // グレースフルシャットダウンの待ち時間

	Mode      string `yaml:"mode"`       // gin の動作モード (debug/release/test)
	AccessLog bool   `yaml:"access_log"` // アクセスログを出力するか
}

// StaticConfig は静的ファイル配信の設定
type StaticConfig struct {
	Root      string `yaml:"root"`       // 配信するベースディレクトリ
	IndexFile string `yaml:"index_file"` // "/" へのリクエストで返すファイル
	Embedded  bool   `yaml:"embedded"`   // バイナリに埋め込んだファイルを配信する
}

// Default はデフォルト設定を返す
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            defaultHostname,
			Port:            DefaultPort,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			Mode:            "release",
		},
		Static: StaticConfig{
			Root:      DefaultRoot,
			IndexFile: DefaultIndex,
		},
	}
}

// Load は設定を読み込む
// デフォルト値 → 設定ファイル → 環境変数 の順に上書きする
func Load() (*Config, error) {
	// .env は存在しなくてもよい
	if err := godotenv.Load(defaultDotEnv); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(".envの読み込みに失敗: %w", err)
	}

	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// LoadFile は設定ファイルの内容で現在の設定を上書きする
// 拡張子で形式を判定する (.yaml/.yml/.toml)
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = c.decodeTOML(data)
	default:
		return fmt.Errorf("未対応の設定ファイル形式です: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("設定ファイルの解析に失敗 (%s): %w", path, err)
	}

	return nil
}

// applyEnv は環境変数で設定を上書きする
// 未設定の変数は現在の値を保持し、値が不正な場合はエラーを返す
func (c *Config) applyEnv() error {
	c.Server.Host = getEnvOrDefault(EnvHost, c.Server.Host)
	c.Server.Mode = getEnvOrDefault(EnvMode, c.Server.Mode)
	c.Static.Root = getEnvOrDefault(EnvStaticRoot, c.Static.Root)
	c.Static.IndexFile = getEnvOrDefault(EnvStaticIndex, c.Static.IndexFile)

	var err error
	if c.Server.Port, err = getEnvAsIntOrDefault(EnvPort, c.Server.Port); err != nil {
		return err
	}
	if c.Server.AccessLog, err = getEnvAsBoolOrDefault(EnvAccessLog, c.Server.AccessLog); err != nil {
		return err
	}
	if c.Static.Embedded, err = getEnvAsBoolOrDefault(EnvStaticEmbed, c.Static.Embedded); err != nil {
		return err
	}

	return nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}
	for _, d := range []time.Duration{c.Server.ReadTimeout, c.Server.WriteTimeout, c.Server.ShutdownTimeout} {
		// 0 は無制限。それ以外は1ミリ秒未満を単位の書き間違いとみなす
		if d < 0 || (d > 0 && d < minTimeout) {
			return fmt.Errorf("%w: %s", ErrInvalidTimeout, d)
		}
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Server.Mode)
	}

	// 静的ファイル設定の検証
	index := c.Static.IndexFile
	if index == "" || index == "." || index == ".." || strings.ContainsAny(index, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidIndex, index)
	}
	if !c.Static.Embedded && c.Static.Root == "" {
		return ErrEmptyRoot
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intVal, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("環境変数 %s が整数ではありません: %q", key, value)
	}
	return intVal, nil
}

// getEnvAsBoolOrDefault は環境変数を真偽値として取得する
func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("環境変数 %s が真偽値ではありません: %q", key, value)
	}
	return b, nil
}
