// Package page はトップページの振る舞い (タイトルの回転とログインボタン) を実装します。
//
// DOM には直接依存せず、Document / Element / Console / Dialog の
// インターフェースに対してハンドラを登録します。
// 配信しているページで動くのは web/app.js で、このパッケージは
// 同じ振る舞いをテストできる形で持つ参照実装です。ID・クラス名・メッセージが
// app.js と一致することは web パッケージのテストで確認します。
// テストでは pagetest のメモリ上のDOMを使い、cmd/page は syscall/js で
// 実際のブラウザにつなぐ場合のエントリポイントです。
//
// タイトル要素は idle と rotating の2状態を持ちます:
//   - mouseenter: idle → rotating (rotating クラスを付ける)
//   - animationend: rotating → idle (rotating クラスを外す)
package page
