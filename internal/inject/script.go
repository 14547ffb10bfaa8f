package inject

import (
	"bytes"
	"encoding/json"
	"text/template"
)

// Bootstrap configures the injected loader.
type Bootstrap struct {
	// Globals is serialized to window.__INNERER_GLOBALS__.
	Globals any
	// Src is the module that loads the wasm tracker.
	Src string
}

type bootstrapScriptConfig struct {
	Globals string
	Src     string
}

const bootstrapScript = `
  window.__INNERER_GLOBALS__ = {{.Globals}};
  import({{.Src}}).catch((e) => console.error("[Innerer]: could not load tracker", e));
`

var bootstrapScriptTemplate = template.Must(template.New("bootstrapScript").Parse(bootstrapScript))

func (b Bootstrap) render() (string, error) {
	globals, err := json.Marshal(b.Globals)
	if err != nil {
		return "", err
	}
	// json.Marshal escapes <, > and &, so both values are safe inside <script>
	src, err := json.Marshal(b.Src)
	if err != nil {
		return "", err
	}
	buf := &bytes.Buffer{}
	err = bootstrapScriptTemplate.Execute(buf, &bootstrapScriptConfig{Globals: string(globals), Src: string(src)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
