package static

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// レスポンスの Content-Type ラベル
const (
	ContentTypeHTML = "text/html"
	ContentTypeCSS  = "text/css"
	ContentTypeJS   = "application/javascript"
)

// NotFoundHTML はファイルが読めなかった場合に返す固定のページ
const NotFoundHTML = "<h1>404 - Página no encontrada</h1>"

// ContentType は拡張子から Content-Type ラベルを決める
// .css と .js 以外はすべて text/html として扱う
func ContentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".css"):
		return ContentTypeCSS
	case strings.HasSuffix(name, ".js"):
		return ContentTypeJS
	default:
		return ContentTypeHTML
	}
}

// ResolvePath はリクエストパスをベースディレクトリ内の相対パスに変換する
//
// "/" は index に置き換える。それ以外はそのまま使うが、
// ルート付きパスとして正規化するため ".." でベースディレクトリの外には出られない。
// 末尾のスラッシュは残すので、ディレクトリやファイル名+"/" は読み込みに失敗する。
func ResolvePath(target, index string) string {
	if target == "/" || target == "" {
		return index
	}

	name := strings.TrimPrefix(path.Clean("/"+target), "/")
	if name == "" {
		return "."
	}
	if strings.HasSuffix(target, "/") {
		name += "/"
	}
	return name
}

// Handler はファイルシステム上のファイルをそのまま返す gin ハンドラ
// リクエスト間で共有する可変状態は持たない
type Handler struct {
	files fs.FS
	index string
}

// NewHandler は files を配信する Handler を作成する
func NewHandler(files fs.FS, index string) *Handler {
	return &Handler{
		files: files,
		index: index,
	}
}

// Serve はリクエストパスに対応するファイルを読み込んで返す
// 読み込みに失敗した場合は原因に関わらず 404 を返す
func (h *Handler) Serve(c *gin.Context) {
	// デコード済みのパスを使う (クエリ文字列は含まない)
	name := ResolvePath(c.Request.URL.Path, h.index)

	// レスポンスは読み込みの完了後に送る
	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		c.Data(http.StatusNotFound, ContentTypeHTML, []byte(NotFoundHTML))
		return
	}

	c.Data(http.StatusOK, ContentType(name), data)
}
