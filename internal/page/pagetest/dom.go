// Package pagetest はブラウザなしで page パッケージを動かすためのメモリ上のDOMを提供する
package pagetest

import (
	"slices"

	"mckapp/internal/page"
)

// Document はメモリ上のドキュメント
type Document struct {
	listeners map[string][]func()
	elements  map[string]*Element
}

// NewDocument は指定したIDの要素を持つドキュメントを作成する
func NewDocument(ids ...string) *Document {
	d := &Document{
		listeners: make(map[string][]func()),
		elements:  make(map[string]*Element),
	}
	for _, id := range ids {
		d.elements[id] = NewElement(id)
	}
	return d
}

// AddEventListener implements page.Document.
func (d *Document) AddEventListener(event string, fn func()) {
	d.listeners[event] = append(d.listeners[event], fn)
}

// ElementByID implements page.Document.
func (d *Document) ElementByID(id string) (page.Element, bool) {
	el, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

// Element はテストから要素を直接参照する
func (d *Document) Element(id string) *Element {
	return d.elements[id]
}

// Dispatch はドキュメントのイベントを発火する
func (d *Document) Dispatch(event string) {
	for _, fn := range d.listeners[event] {
		fn()
	}
}

// ListenerCount は登録済みのリスナー数を返す
func (d *Document) ListenerCount(event string) int {
	return len(d.listeners[event])
}

// Element はメモリ上の要素
type Element struct {
	ID        string
	classes   []string
	listeners map[string][]func()
}

// NewElement は新しい要素を作成する
func NewElement(id string) *Element {
	return &Element{
		ID:        id,
		listeners: make(map[string][]func()),
	}
}

// AddEventListener implements page.Element.
func (e *Element) AddEventListener(event string, fn func()) {
	e.listeners[event] = append(e.listeners[event], fn)
}

// AddClass implements page.Element.
func (e *Element) AddClass(name string) {
	if !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

// RemoveClass implements page.Element.
func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
}

// HasClass implements page.Element.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes は現在のクラス一覧を返す
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// Dispatch は要素のイベントを発火する
func (e *Element) Dispatch(event string) {
	for _, fn := range e.listeners[event] {
		fn()
	}
}

// ListenerCount は登録済みのリスナー数を返す
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// Console は出力されたログを記録する
type Console struct {
	Lines []string
}

// Log implements page.Console.
func (c *Console) Log(msg string) {
	c.Lines = append(c.Lines, msg)
}

// Dialog は表示された通知を記録する
type Dialog struct {
	Alerts []string
}

// Alert implements page.Dialog.
func (d *Dialog) Alert(msg string) {
	d.Alerts = append(d.Alerts, msg)
}
