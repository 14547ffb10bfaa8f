package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/JackWithOneEye/innerer/cmd/web"
	"github.com/JackWithOneEye/innerer/internal/direction"
	"github.com/JackWithOneEye/innerer/internal/engine"
	"github.com/JackWithOneEye/innerer/internal/geometry"
	"github.com/JackWithOneEye/innerer/internal/inject"
	"github.com/JackWithOneEye/innerer/internal/protocol"
	"github.com/JackWithOneEye/innerer/internal/session"
	"github.com/a-h/templ"
	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

type ServerConfig interface {
	engine.EngineConfig
	PagesDir() string
	Port() uint
	QueryAttr() string
	RetryAttempts() int
	RetryInterval() time.Duration
}

const (
	assetsDir   = "./cmd/web/assets"
	loaderPath  = "/assets/js/index.js"
	wasmPath    = "/assets/innerer.wasm"
	trackPath   = "/track"
	readLimit   = 1 << 20
	globalsPath = "/globals"
)

type server struct {
	cfg     ServerConfig
	ctx     context.Context
	globals web.Globals
}

func NewServer(cfg ServerConfig, ctx context.Context) *http.Server {
	s := &server{
		cfg: cfg,
		ctx: ctx,
		globals: web.Globals{
			QueryAttr:       cfg.QueryAttr(),
			RetryAttempts:   cfg.RetryAttempts(),
			RetryIntervalMs: cfg.RetryInterval().Milliseconds(),
			InvertDirection: cfg.InvertDirection(),
			WasmPath:        wasmPath,
		},
	}

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port()),
		Handler:           s.registerRoutes(),
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}
}

func (s *server) registerRoutes() http.Handler {
	r := gin.Default()

	r.Static("/assets", assetsDir)

	bootstrap := inject.Bootstrap{Globals: &s.globals, Src: loaderPath}

	r.GET("/", inject.Script(bootstrap, func(c *gin.Context) {
		templ.Handler(web.Demo(&s.globals)).ServeHTTP(c.Writer, c.Request)
	}))

	r.GET("/pages/*page", inject.Script(bootstrap, s.pageHandler))

	r.GET(globalsPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, &s.globals)
	})

	r.POST("/classify", s.classifyHandler)

	r.GET(trackPath, s.trackHandler)

	return r
}

func (s *server) pageHandler(c *gin.Context) {
	page := path.Clean("/" + c.Param("page"))
	if page == "/" {
		page = "/index.html"
	}
	if !strings.HasSuffix(page, ".html") {
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.File(filepath.Join(s.cfg.PagesDir(), filepath.FromSlash(page)))
}

type classifyRequest struct {
	ViewportHeight float64             `json:"viewportHeight"`
	Direction      direction.Direction `json:"direction"`
	Rect           geometry.Rect       `json:"rect"`
}

type classifyResponse struct {
	Viewport geometry.ViewportResult `json:"viewport"`
	Centered geometry.CenteredResult `json:"centered"`
}

func (s *server) classifyHandler(c *gin.Context) {
	var req classifyRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %s", err)})
		return
	}
	if !(req.ViewportHeight > 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "viewportHeight must be positive"})
		return
	}
	c.JSON(http.StatusOK, &classifyResponse{
		Viewport: geometry.Classify(req.Rect, req.ViewportHeight, req.Direction),
		Centered: geometry.Center(req.Rect, req.ViewportHeight),
	})
}

func (s *server) trackHandler(c *gin.Context) {
	ctx := c.Request.Context()
	socket, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("could not open websocket: %s", err)
		return
	}
	defer socket.CloseNow()
	socket.SetReadLimit(readLimit)

	eng := engine.NewEngine(s.cfg)
	defer eng.Close()

	readerMsgChan := make(chan []byte)
	readerErrChan := make(chan error, 1)
	reader := func() {
		_, data, err := socket.Read(ctx)
		if err != nil {
			readerErrChan <- err
			return
		}
		select {
		case readerMsgChan <- data:
		case <-ctx.Done():
		}
	}

	go reader()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.ctx.Done():
			socket.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case payload, ok := <-eng.Output():
			if !ok {
				return
			}
			err := socket.Write(ctx, websocket.MessageText, payload)
			if isClosed(err) {
				return
			}
			if err != nil {
				log.Printf("could not write to websocket: %s", err)
				return
			}
		case msg := <-readerMsgChan:
			err = eng.SubmitMessage(msg)
			if err != nil {
				log.Printf("tracking message produced an error: %s", err)
				err = writeError(ctx, socket, err)
				if err != nil {
					log.Printf("could not write to websocket: %s", err)
					return
				}
			}
			go reader()
		case err := <-readerErrChan:
			if isClosed(err) {
				return
			}
			log.Printf("could not read from websocket: %s", err)
			return
		}
	}
}

func isClosed(err error) bool {
	status := websocket.CloseStatus(err)
	return status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway
}

// writeError reports a rejected message to the client without closing the
// session.
func writeError(ctx context.Context, socket *websocket.Conn, cause error) error {
	o := protocol.Output{Records: []session.Record{}, Error: cause.Error()}
	b, err := o.Encode()
	if err != nil {
		return err
	}
	return socket.Write(ctx, websocket.MessageText, b)
}
