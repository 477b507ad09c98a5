//go:build js && wasm

// Package main は internal/page をブラウザのDOMにつなぐWebAssemblyエントリポイントです
//
// 配信しているページが読み込むのは web/app.js で、このバイナリは web/ に含まれない。
// internal/page の実装を実際のブラウザで確かめるときに使う:
//
//	GOOS=js GOARCH=wasm go build -o page.wasm ./cmd/page
package main

import (
	"syscall/js"

	"mckapp/internal/page"
)

// target は addEventListener を持つJSオブジェクト
type target struct {
	v js.Value
}

func (t target) AddEventListener(event string, fn func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	// リスナーはページが閉じられるまで残るので Release しない
	t.v.Call("addEventListener", event, cb)
}

type element struct {
	target
}

func (e element) AddClass(name string) {
	e.v.Get("classList").Call("add", name)
}

func (e element) RemoveClass(name string) {
	e.v.Get("classList").Call("remove", name)
}

func (e element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

type document struct {
	target
}

func (d document) ElementByID(id string) (page.Element, bool) {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return element{target{v}}, true
}

type console struct{}

func (console) Log(msg string) {
	js.Global().Get("console").Call("log", msg)
}

type dialog struct{}

func (dialog) Alert(msg string) {
	js.Global().Call("alert", msg)
}

func main() {
	doc := document{target{js.Global().Get("document")}}
	b := page.New(doc, console{}, dialog{})

	// wasm の起動が DOMContentLoaded より後になることがある
	if doc.v.Get("readyState").String() == "loading" {
		b.Install()
	} else if err := b.Attach(); err != nil {
		console{}.Log(err.Error())
	}

	select {}
}
