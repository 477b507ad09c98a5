package config

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// tomlDuration は "3s" のような文字列で書かれた時間
// 整数はエラーにする (単位のない値をナノ秒として扱わない)
type tomlDuration struct {
	d time.Duration
}

func (t *tomlDuration) UnmarshalText(text []byte) error {
	d, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("時間の形式が不正です: %q", text)
	}
	t.d = d
	return nil
}

// tomlFile はTOML設定ファイルの形
// ファイルに書かれた項目だけを上書きするため、すべてポインタで受ける
type tomlFile struct {
	Server struct {
		Host            *string       `toml:"host"`
		Port            *int          `toml:"port"`
		ReadTimeout     *tomlDuration `toml:"read_timeout"`
		WriteTimeout    *tomlDuration `toml:"write_timeout"`
		ShutdownTimeout *tomlDuration `toml:"shutdown_timeout"`
		Mode            *string       `toml:"mode"`
		AccessLog       *bool         `toml:"access_log"`
	} `toml:"server"`
	Static struct {
		Root      *string `toml:"root"`
		IndexFile *string `toml:"index_file"`
		Embedded  *bool   `toml:"embedded"`
	} `toml:"static"`
}

// decodeTOML はTOMLの内容で設定を上書きする
func (c *Config) decodeTOML(data []byte) error {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}

	s := f.Server
	setIfPresent(&c.Server.Host, s.Host)
	setIfPresent(&c.Server.Port, s.Port)
	setIfPresent(&c.Server.Mode, s.Mode)
	setIfPresent(&c.Server.AccessLog, s.AccessLog)
	setDurationIfPresent(&c.Server.ReadTimeout, s.ReadTimeout)
	setDurationIfPresent(&c.Server.WriteTimeout, s.WriteTimeout)
	setDurationIfPresent(&c.Server.ShutdownTimeout, s.ShutdownTimeout)

	st := f.Static
	setIfPresent(&c.Static.Root, st.Root)
	setIfPresent(&c.Static.IndexFile, st.IndexFile)
	setIfPresent(&c.Static.Embedded, st.Embedded)

	return nil
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setDurationIfPresent(dst *time.Duration, v *tomlDuration) {
	if v != nil {
		*dst = v.d
	}
}
