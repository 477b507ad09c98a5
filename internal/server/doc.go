// Package server は、静的ファイルを配信するHTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動と停止、
// ginエンジンの構築、静的ファイルハンドラの登録を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 静的ファイル（HTML/CSS/JS）の配信
//   - アクセスログとリクエストIDの付与（設定で有効化）
//
// 仕様:
//   - ginをHTTPエンジンとして使用
//   - 明示的に作成したServerが起動・停止のライフサイクルを持つ
//   - 起動時にリッスンしているポートを1行ログに出す
//   - グレースフルシャットダウンに対応
package server
