// Package static はリクエストパスとファイルの対応付けを担当します。
//
// 責務:
//   - リクエストパスからベースディレクトリ内のパスを求める
//   - 拡張子から Content-Type ラベルを決める
//   - ファイルを読み込んでレスポンスとして返す
//
// 仕様:
//   - "/" はインデックスファイル (デフォルト: index.html) に置き換える
//   - Content-Type は .css / .js / それ以外 (text/html) の3種類のみ
//   - 読み込みエラーはすべて同じ 404 ページになる
//   - ディスク上のディレクトリとバイナリ埋め込みのどちらも配信できる
package static
