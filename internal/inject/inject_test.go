package inject

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testBootstrap = Bootstrap{
	Globals: map[string]any{"queryAttr": "data-innerer"},
	Src:     "/assets/js/index.js",
}

func serve(h gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/", Script(testBootstrap, h))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestScriptInjectsIntoHead(t *testing.T) {
	w := serve(func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`<html><head><title>x</title></head><body><p data-innerer="a">a</p></body></html>`))
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<script type="module">`)
	assert.Contains(t, body, `window.__INNERER_GLOBALS__ = {"queryAttr":"data-innerer"};`)
	assert.Contains(t, body, `import("/assets/js/index.js")`)
	assert.Contains(t, body, `<p data-innerer="a">a</p>`)
	assert.Less(t, strings.Index(body, "<script"), strings.Index(body, "</head>"))
}

func TestScriptWithoutHeadTag(t *testing.T) {
	// the parser synthesizes <head>
	w := serve(func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html", []byte(`<p>plain</p>`))
	})
	assert.Contains(t, w.Body.String(), "__INNERER_GLOBALS__")
	assert.Contains(t, w.Body.String(), "<p>plain</p>")
}

func TestScriptPassesThroughNonHTML(t *testing.T) {
	w := serve(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestScriptPassesThroughErrors(t *testing.T) {
	w := serve(func(c *gin.Context) {
		c.Data(http.StatusNotFound, "text/html", []byte("<p>missing</p>"))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "<p>missing</p>", w.Body.String())
}

func TestBootstrapEscapesScriptClose(t *testing.T) {
	s, err := Bootstrap{Globals: "</script>", Src: "x.js"}.render()
	require.NoError(t, err)
	assert.NotContains(t, s, "</script>")
}
