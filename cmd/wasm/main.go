//go:build js

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"syscall/js"
	"time"

	"github.com/JackWithOneEye/innerer/cmd/wasm/dom"
	"github.com/JackWithOneEye/innerer/cmd/web"
	"github.com/JackWithOneEye/innerer/internal/direction"
	"github.com/JackWithOneEye/innerer/internal/retry"
	"github.com/JackWithOneEye/innerer/internal/session"
)

const (
	errorTag         = "[Innerer]"
	defaultQueryAttr = "data-innerer"
	cacheSize        = 256
)

type tracker struct {
	mu       sync.Mutex
	globals  web.Globals
	session  *session.Session
	callback js.Value
	elements []js.Value
	handler  js.Func
	cancel   context.CancelFunc
	active   bool
}

func main() {
	g := loadGlobals()
	convention := direction.DefaultConvention
	if g.InvertDirection {
		convention = direction.OffsetIncreaseIsUp
	}
	t := &tracker{
		globals: g,
		session: session.New(session.WithConvention(convention), session.WithCacheSize(cacheSize)),
	}

	createFunc := js.FuncOf(t.create)
	destroyFunc := js.FuncOf(t.destroy)
	defer func() {
		createFunc.Release()
		destroyFunc.Release()
	}()

	global := js.Global()
	global.Set("innerer", js.ValueOf(map[string]any{
		"create":  createFunc,
		"destroy": destroyFunc,
	}))
	global.Call("dispatchEvent", global.Get("Event").New("innerer:ready"))
	log.Println("innerer tracker ready")

	select {}
}

func loadGlobals() web.Globals {
	g := web.Globals{QueryAttr: defaultQueryAttr, RetryAttempts: 10, RetryIntervalMs: 200}
	raw := js.Global().Get("__INNERER_GLOBALS__")
	if !raw.Truthy() {
		return g
	}
	b := js.Global().Get("JSON").Call("stringify", raw).String()
	err := json.Unmarshal([]byte(b), &g)
	if err != nil {
		log.Printf("could not read globals: %s", err)
	}
	if g.QueryAttr == "" {
		g.QueryAttr = defaultQueryAttr
	}
	return g
}

// create(callback, ref?) starts tracking the marked elements below ref.
func (t *tracker) create(this js.Value, args []js.Value) any {
	if len(args) == 0 || args[0].Type() != js.TypeFunction {
		got := "undefined"
		if len(args) > 0 {
			got = args[0].Type().String()
		}
		return makeError(fmt.Sprintf("%s: Data set invalid format, expected function, got %s", errorTag, got)).Value
	}
	ref := ""
	if len(args) > 1 && args[1].Type() == js.TypeString {
		ref = args[1].String()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active || t.cancel != nil {
		return makeError(errorTag + ": already created").Value
	}
	t.callback = args[0]

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	go t.mount(ctx, ref)
	return js.Undefined()
}

func (t *tracker) mount(ctx context.Context, ref string) {
	select {
	case <-dom.Ready():
	case <-ctx.Done():
		return
	}

	policy := retry.Policy{
		Attempts: t.globals.RetryAttempts,
		Interval: time.Duration(t.globals.RetryIntervalMs) * time.Millisecond,
	}
	var root js.Value
	err := policy.Do(ctx, func(int) error {
		root = dom.Lookup(ref)
		if root.IsNull() || root.IsUndefined() {
			return fmt.Errorf("reference %s not found on DOM", ref)
		}
		return nil
	})
	if err != nil {
		dom.Error(fmt.Sprintf("%s: %s", errorTag, err))
		t.reset()
		return
	}

	els := dom.QueryAll(root, fmt.Sprintf("[%s]", t.globals.QueryAttr))
	if len(els) == 0 {
		dom.Warn(errorTag + ": There is no elements to track in current document.")
		t.reset()
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	t.elements = els
	t.session.Mount(dom.ScrollY())
	t.handler = js.FuncOf(t.onViewportUpdated)
	dom.AddListener("scroll", t.handler)
	dom.AddListener("resize", t.handler)
	t.active = true
}

func (t *tracker) onViewportUpdated(this js.Value, args []js.Value) any {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return nil
	}
	els := t.elements
	callback := t.callback
	t.mu.Unlock()

	frame := session.Frame{
		ViewportHeight: dom.ViewportHeight(),
		ScrollOffset:   dom.ScrollY(),
		Elements:       make([]session.Element, len(els)),
	}
	for i, el := range els {
		frame.Elements[i] = session.Element{
			Tag:  el.Call("getAttribute", t.globals.QueryAttr).String(),
			Rect: dom.RectOf(el),
		}
	}

	// the callback may call destroy, so it runs without t.mu held
	seq, err := t.session.Records(frame)
	if err != nil {
		log.Printf("could not process viewport update: %s", err)
		return nil
	}
	for r := range seq {
		callback.Invoke(js.ValueOf(dom.RecordObject(r)))
	}
	return nil
}

func (t *tracker) destroy(this js.Value, args []js.Value) any {
	t.reset()
	return js.Undefined()
}

func (t *tracker) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.active {
		dom.RemoveListener("scroll", t.handler)
		dom.RemoveListener("resize", t.handler)
		t.handler.Release()
		t.active = false
	}
	t.elements = nil
	t.session.Unmount()
}

func makeError(msg string) js.Error {
	return js.Error{Value: js.Global().Get("Error").New(msg)}
}
