package server

import (
	"fmt"
	"log"
	"time"

	"mckapp/internal/config"
	"mckapp/internal/static"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

// newEngine はginエンジンを作成し、静的ファイルハンドラを登録する
// gin の動作モードはプロセス全体の設定なので、ここでは変更しない (SetMode を参照)
func newEngine(cfg *config.Config, files *static.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if cfg.Server.AccessLog {
		r.Use(requestID())
		r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
			Formatter: accessLogFormatter,
			Output:    log.Writer(),
		}))
	}

	// パスとファイルの対応付け以外のルーティングは行わないため、
	// すべてのメソッド・パスを静的ファイルハンドラで受ける
	r.NoRoute(files.Serve)

	return r
}

// SetMode は設定に従って gin の動作モードを切り替える
// プロセス全体に効くため、New より前に main から一度だけ呼ぶ
func SetMode(cfg *config.Config) {
	gin.SetMode(cfg.Server.Mode)
}

// requestID はリクエストごとにIDを割り当てるミドルウェア
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessLogFormatter はアクセスログの1行を組み立てる
func accessLogFormatter(p gin.LogFormatterParams) string {
	id, _ := p.Keys[requestIDKey].(string)
	return fmt.Sprintf("%s %s %s %d %s %s\n",
		p.TimeStamp.Format(time.RFC3339),
		id,
		p.Method,
		p.StatusCode,
		p.Latency,
		p.Path,
	)
}
