//go:build js

// Package dom wraps the browser APIs the wasm tracker reads from.
package dom

import (
	"sync"
	"syscall/js"

	"github.com/JackWithOneEye/innerer/internal/geometry"
)

var (
	window   = js.Global()
	document = js.Global().Get("document")
	console  = js.Global().Get("console")
)

// ScrollY returns the vertical scroll offset of the page.
func ScrollY() float64 {
	if v := window.Get("pageYOffset"); v.Truthy() {
		return v.Float()
	}
	if v := document.Get("documentElement").Get("scrollTop"); v.Truthy() {
		return v.Float()
	}
	if body := document.Get("body"); body.Truthy() {
		return body.Get("scrollTop").Float()
	}
	return 0
}

func ViewportHeight() float64 {
	if v := window.Get("innerHeight"); v.Truthy() {
		return v.Float()
	}
	return document.Get("documentElement").Get("clientHeight").Float()
}

func RectOf(el js.Value) geometry.Rect {
	r := el.Call("getBoundingClientRect")
	return geometry.Rect{
		Top:    r.Get("top").Float(),
		Right:  r.Get("right").Float(),
		Bottom: r.Get("bottom").Float(),
		Left:   r.Get("left").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

// Lookup returns the element matching selector, or the document itself when
// selector is empty. A miss yields null.
func Lookup(selector string) js.Value {
	if selector == "" {
		return document
	}
	return document.Call("querySelector", selector)
}

func QueryAll(root js.Value, selector string) []js.Value {
	list := root.Call("querySelectorAll", selector)
	els := make([]js.Value, list.Length())
	for i := range els {
		els[i] = list.Index(i)
	}
	return els
}

// Ready is closed once the document has finished loading.
func Ready() <-chan struct{} {
	ch := make(chan struct{})
	if document.Get("readyState").String() == "complete" {
		close(ch)
		return ch
	}

	var once sync.Once
	var onChange js.Func
	onChange = js.FuncOf(func(this js.Value, args []js.Value) any {
		if document.Get("readyState").String() != "complete" {
			return nil
		}
		once.Do(func() {
			document.Call("removeEventListener", "readystatechange", onChange)
			onChange.Release()
			close(ch)
		})
		return nil
	})
	document.Call("addEventListener", "readystatechange", onChange)
	return ch
}

func AddListener(event string, fn js.Func) {
	window.Call("addEventListener", event, fn)
}

func RemoveListener(event string, fn js.Func) {
	window.Call("removeEventListener", event, fn)
}

func Warn(msg string) {
	console.Call("warn", msg)
}

func Error(msg string) {
	console.Call("error", msg)
}
