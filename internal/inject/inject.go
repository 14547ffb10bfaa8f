// Package inject appends the tracker bootstrap script to HTML responses.
package inject

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type injectorWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *injectorWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *injectorWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// Script wraps handlerFunc so that 200 HTML responses carry the bootstrap
// script at the end of <head>. Other responses pass through untouched.
func Script(b Bootstrap, handlerFunc gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orig := ctx.Writer
		w := &injectorWriter{
			body:           &bytes.Buffer{},
			ResponseWriter: orig,
		}
		ctx.Writer = w
		handlerFunc(ctx)
		ctx.Next()
		ctx.Writer = orig

		if w.Status() != http.StatusOK || !isHTML(orig.Header().Get("Content-Type")) {
			passThrough(orig, w.body)
			return
		}

		script, err := b.render()
		if err != nil {
			log.Printf("could not render bootstrap script: %s", err)
			passThrough(orig, w.body)
			return
		}

		raw := w.body.Bytes()
		doc, err := html.Parse(bytes.NewReader(raw))
		if err != nil {
			log.Printf("could not parse response body: %s", err)
			passThrough(orig, w.body)
			return
		}

		err = injectScriptIntoHead(doc.FirstChild, script)
		if err != nil {
			log.Printf("could not inject bootstrap script: %s", err)
			passThrough(orig, w.body)
			return
		}

		orig.Header().Del("Content-Length")
		err = html.Render(orig, doc)
		if err != nil {
			log.Printf("could not render modified HTML response: %s", err)
		}
	}
}

func isHTML(contentType string) bool {
	return strings.HasPrefix(contentType, "text/html")
}

func passThrough(w gin.ResponseWriter, body *bytes.Buffer) {
	if body.Len() == 0 {
		w.WriteHeaderNow()
		return
	}
	_, _ = w.Write(body.Bytes())
}

func injectScriptIntoHead(n *html.Node, content string) error {
	if n == nil {
		return errors.New("no <head> element node found")
	}

	if n.Type == html.ElementNode && n.DataAtom == atom.Head {
		n.AppendChild(&html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Script,
			Data:     atom.Script.String(),
			Attr:     []html.Attribute{{Key: "type", Val: "module"}},
			FirstChild: &html.Node{
				Type: html.TextNode,
				Data: content,
			},
		})
		return nil
	}

	next := n.FirstChild
	if next == nil {
		next = n.NextSibling
	}
	if next == nil && n.Parent != nil {
		next = n.Parent.NextSibling
	}

	return injectScriptIntoHead(next, content)
}
