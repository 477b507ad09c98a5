// Package web はページの静的ファイル (HTML/CSS/JS) を保持する
//
// ブラウザで動くのは app.js。internal/page は同じ振る舞いを
// DOMのインターフェース越しに実装したもので、テストはそちらで行う。
// 両者が同じID・クラス名・メッセージを使うことは embed_test.go で確認する。
package web

import "embed"

// Files はバイナリに埋め込まれた静的ファイル
//
//go:embed index.html styles.css app.js
var Files embed.FS
