package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/freshblock/pkg/config"
	"github.com/umputun/freshblock/pkg/domain"
	"github.com/umputun/freshblock/pkg/render"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer
//go:generate moq -out mocks/block_builder.go -pkg mocks -skip-ensure -fmt goimports . BlockBuilder
//go:generate moq -out mocks/payload_fetcher.go -pkg mocks -skip-ensure -fmt goimports . PayloadFetcher
//go:generate moq -out mocks/site_settings.go -pkg mocks -skip-ensure -fmt goimports . SiteSettings

//go:embed templates/*.html
var templatesFS embed.FS

// frontRegion is the region rendered on the front page
const frontRegion = "content"

// placeholderPath is the prefix of lazy placeholder loaders
const placeholderPath = "/placeholder/"

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	db       Database
	renderer Renderer
	blocks   BlockBuilder
	fetcher  PayloadFetcher
	site     SiteSettings
	version  string
	debug    bool
	now      func() time.Time

	lock          sync.Mutex
	httpServer    *http.Server
	router        *routegroup.Bundle
	pageTemplates map[string]*template.Template
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetRenderConfig() config.RenderConfig
	GetFullConfig() *config.Config
}

// Database interface for block and content storage
type Database interface {
	ListBlocks(ctx context.Context, region string) ([]domain.Block, error)
	GetBlock(ctx context.Context, id string) (*domain.Block, error)
	CreateBlock(ctx context.Context, b *domain.Block) error
	UpdateBlock(ctx context.Context, b *domain.Block) error
	DeleteBlock(ctx context.Context, id string) error
	ListContent(ctx context.Context, limit, offset int) ([]domain.ContentItem, error)
	GetContent(ctx context.Context, id int64) (*domain.ContentItem, error)
	CreateContent(ctx context.Context, item *domain.ContentItem) error
	UpdateContent(ctx context.Context, item *domain.ContentItem) error
	DeleteContent(ctx context.Context, id int64) error
}

// Renderer resolves deferred placeholders
type Renderer interface {
	Resolve(ctx context.Context, token string) (template.HTML, error)
	Substitute(ctx context.Context, page []byte) ([]byte, error)
	Invalidate(ctx context.Context, tags ...string) error
}

// BlockBuilder makes the cacheable placeholder of a block
type BlockBuilder interface {
	Build(cfg domain.BlockConfig) (render.Placeholder, error)
}

// PayloadFetcher loads the current payload of a block configuration
type PayloadFetcher interface {
	Fetch(ctx context.Context, cfg domain.BlockConfig, now time.Time) (domain.RenderPayload, error)
}

// SiteSettings reads and stores site wide settings
type SiteSettings interface {
	Timezone(ctx context.Context) string
	SetTimezone(ctx context.Context, tz string) error
}

// Params holds server dependencies
type Params struct {
	Config   ConfigProvider
	DB       Database
	Renderer Renderer
	Blocks   BlockBuilder
	Fetcher  PayloadFetcher
	Site     SiteSettings
	Version  string
	Debug    bool
	Now      func() time.Time // time.Now if nil
}

// New initializes a new server instance
func New(p Params) (*Server, error) {
	if p.Now == nil {
		p.Now = time.Now
	}
	s := &Server{
		config:   p.Config,
		db:       p.DB,
		renderer: p.Renderer,
		blocks:   p.Blocks,
		fetcher:  p.Fetcher,
		site:     p.Site,
		version:  p.Version,
		debug:    p.Debug,
		now:      p.Now,
		router:   routegroup.New(http.NewServeMux()),
	}

	if err := s.loadTemplates(); err != nil {
		return nil, err
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	srv := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the routed http handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("freshblock", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /{$}", s.frontHandler)
	s.router.HandleFunc("GET "+placeholderPath+"{token}", s.placeholderHandler)
	s.router.HandleFunc("GET /rss/{block}", s.rssHandler)

	s.router.Mount("/admin").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /blocks", s.blocksHandler)
		r.HandleFunc("GET /blocks/add", s.addBlockFormHandler)
		r.HandleFunc("POST /blocks/add", s.addBlockHandler)
		r.HandleFunc("GET /blocks/{id}", s.editBlockFormHandler)
		r.HandleFunc("POST /blocks/{id}", s.editBlockHandler)
		r.HandleFunc("POST /blocks/{id}/delete", s.deleteBlockHandler)
		r.HandleFunc("GET /settings", s.settingsHandler)
		r.HandleFunc("POST /settings", s.saveSettingsHandler)
	})

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /blocks", s.listBlocksHandler)
		r.HandleFunc("GET /blocks/{id}/payload", s.blockPayloadHandler)
		r.HandleFunc("GET /content", s.listContentHandler)
		r.HandleFunc("POST /content", s.createContentHandler)
		r.HandleFunc("PUT /content/{id}", s.updateContentHandler)
		r.HandleFunc("DELETE /content/{id}", s.deleteContentHandler)
	})
}

// loadTemplates parses every page together with the shared layout
func (s *Server) loadTemplates() error {
	pages := []string{"front.html", "blocks.html", "block-form.html", "settings.html"}
	s.pageTemplates = make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(template.FuncMap{
			"isoTime": func(t time.Time) string { return t.Format(time.RFC3339) },
		}).ParseFS(templatesFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", page, err)
		}
		s.pageTemplates[page] = tmpl
	}
	return nil
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w io.Writer, templateName string, data any) error {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		return fmt.Errorf("template %s not found", templateName)
	}
	return tmpl.ExecuteTemplate(w, templateName, data)
}

// respondWithError logs the error and sends a plain text error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, err error) {
	log.Printf("[ERROR] %s: %v", message, err)
	http.Error(w, message, code)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    s.now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
