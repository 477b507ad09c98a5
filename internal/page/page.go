package page

import (
	"errors"
	"fmt"
)

// ページが参照する要素IDとクラス名
const (
	TitleID       = "title"
	LoginButtonID = "loginBtn"
	RotatingClass = "rotating"
)

// 購読するイベント名
const (
	EventContentLoaded = "DOMContentLoaded"
	EventMouseEnter    = "mouseenter"
	EventAnimationEnd  = "animationend"
	EventClick         = "click"
)

// 画面とコンソールに出すメッセージ
const (
	MessageLoginPressed = "Botón de login presionado"
	MessageLoginSoon    = "Funcionalidad de login próximamente"
	MessageLoaded       = "Aplicación cargada correctamente"
)

// ErrElementNotFound は必要な要素がページに存在しない場合のエラー
var ErrElementNotFound = errors.New("要素が見つかりません")

// Element はイベントを受け取りクラスを切り替えられるDOM要素
type Element interface {
	AddEventListener(event string, fn func())
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
}

// Document はページ全体のイベントと要素の検索を提供する
type Document interface {
	AddEventListener(event string, fn func())
	ElementByID(id string) (Element, bool)
}

// Console は診断用のログ出力先
type Console interface {
	Log(msg string)
}

// Dialog はユーザーに通知を表示する (閉じられるまでブロックする)
type Dialog interface {
	Alert(msg string)
}

// State はタイトル要素のアニメーション状態
type State int

const (
	StateIdle State = iota
	StateRotating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRotating:
		return "rotating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TitleState はタイトル要素の現在の状態を返す
func TitleState(title Element) State {
	if title.HasClass(RotatingClass) {
		return StateRotating
	}
	return StateIdle
}

// Behavior はページにイベントハンドラを登録する
type Behavior struct {
	doc     Document
	console Console
	dialog  Dialog
}

// New は新しいBehaviorを作成する
func New(doc Document, console Console, dialog Dialog) *Behavior {
	return &Behavior{
		doc:     doc,
		console: console,
		dialog:  dialog,
	}
}

// Install はページの読み込み完了時にハンドラを登録するよう予約する
func (b *Behavior) Install() {
	b.doc.AddEventListener(EventContentLoaded, func() {
		if err := b.Attach(); err != nil {
			b.console.Log(err.Error())
		}
	})
}

// Attach はタイトルとログインボタンにハンドラを登録する
// どちらかの要素がなければ何も登録せずにエラーを返す
func (b *Behavior) Attach() error {
	title, ok := b.doc.ElementByID(TitleID)
	if !ok {
		return fmt.Errorf("%w: #%s", ErrElementNotFound, TitleID)
	}
	loginBtn, ok := b.doc.ElementByID(LoginButtonID)
	if !ok {
		return fmt.Errorf("%w: #%s", ErrElementNotFound, LoginButtonID)
	}

	// ホバーで回転、アニメーション終了でクラスを外して再実行できるようにする
	title.AddEventListener(EventMouseEnter, func() {
		title.AddClass(RotatingClass)
	})
	title.AddEventListener(EventAnimationEnd, func() {
		title.RemoveClass(RotatingClass)
	})

	// ログインは未実装
	loginBtn.AddEventListener(EventClick, func() {
		b.console.Log(MessageLoginPressed)
		b.dialog.Alert(MessageLoginSoon)
	})

	b.console.Log(MessageLoaded)
	return nil
}
