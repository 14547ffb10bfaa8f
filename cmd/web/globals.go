// Package web holds the browser-facing pieces: the globals handed to the
// wasm tracker, the demo page and the frontend sources.
package web

// Globals is served at /globals and injected into every tracked page.
type Globals struct {
	QueryAttr       string `json:"queryAttr"`
	RetryAttempts   int    `json:"retryAttempts"`
	RetryIntervalMs int64  `json:"retryIntervalMs"`
	InvertDirection bool   `json:"invertDirection"`
	WasmPath        string `json:"wasmPath"`
}
