package server

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/umputun/freshblock/pkg/block"
	"github.com/umputun/freshblock/pkg/domain"
	"github.com/umputun/freshblock/pkg/render"
	"github.com/umputun/freshblock/pkg/repository"
)

// blockIDRegex validates block machine names
var blockIDRegex = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// frontBlock is a block placed on the front page
type frontBlock struct {
	ID      string
	Label   string
	Content template.HTML
}

// blockFormData holds data for the block add/edit page
type blockFormData struct {
	IsNew  bool
	Block  domain.Block
	Form   block.FormSpec
	Errors map[string]string // placement field errors
}

// settingsData holds data for the site settings page
type settingsData struct {
	Timezone string
	Error    string
	Saved    bool
}

// frontHandler renders blocks of the content region. Placeholders are substituted before the
// response is written unless lazy rendering is enabled.
func (s *Server) frontHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	blocks, err := s.db.ListBlocks(ctx, frontRegion)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load blocks", err)
		return
	}

	lazy := s.config.GetRenderConfig().Lazy
	placed := make([]frontBlock, 0, len(blocks))
	for _, b := range blocks {
		ph, err := s.blocks.Build(b.Settings)
		if err != nil {
			log.Printf("[WARN] can't build block %s: %v", b.ID, err)
			continue
		}
		fb := frontBlock{ID: b.ID, Label: b.Label, Content: ph.Markup()}
		if lazy {
			fb.Content = ph.LazyMarkup(placeholderPath)
		}
		placed = append(placed, fb)
	}

	var buf bytes.Buffer
	if err := s.renderPage(&buf, "front.html", map[string]any{"Blocks": placed}); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
		return
	}

	page := buf.Bytes()
	if !lazy {
		if page, err = s.renderer.Substitute(ctx, page); err != nil {
			s.respondWithError(w, http.StatusInternalServerError, "Failed to render blocks", err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		log.Printf("[WARN] failed to write front page: %v", err)
	}
}

// placeholderHandler resolves a single placeholder, used by lazy loaders
func (s *Server) placeholderHandler(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	html, err := s.renderer.Resolve(r.Context(), token)
	if errors.Is(err, render.ErrUnknownPlaceholder) {
		http.Error(w, "Placeholder not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render block", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("[WARN] failed to write placeholder %s: %v", token, err)
	}
}

// blocksHandler lists all placed blocks
func (s *Server) blocksHandler(w http.ResponseWriter, r *http.Request) {
	blocks, err := s.db.ListBlocks(r.Context(), "")
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load blocks", err)
		return
	}
	if err := s.renderPage(w, "blocks.html", map[string]any{"Blocks": blocks}); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// addBlockFormHandler shows the form of a new block with default settings
func (s *Server) addBlockFormHandler(w http.ResponseWriter, _ *http.Request) {
	b := domain.Block{Region: frontRegion, Settings: block.Defaults()}
	s.renderBlockForm(w, http.StatusOK, blockFormData{IsNew: true, Block: b, Form: block.Form(b.Settings)})
}

// addBlockHandler places a new block
func (s *Server) addBlockHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	b, data, ok := s.blockFromForm(r, domain.Block{ID: strings.TrimSpace(r.PostFormValue("id"))}, true)
	if !ok {
		s.renderBlockForm(w, http.StatusBadRequest, data)
		return
	}

	if _, err := s.db.GetBlock(ctx, b.ID); err == nil {
		data.Errors["id"] = "already exists"
		s.renderBlockForm(w, http.StatusBadRequest, data)
		return
	}

	if err := s.db.CreateBlock(ctx, &b); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to create block", err)
		return
	}
	log.Printf("[INFO] block %s placed in %s", b.ID, b.Region)
	http.Redirect(w, r, "/admin/blocks", http.StatusSeeOther)
}

// editBlockFormHandler shows the configuration form of an existing block
func (s *Server) editBlockFormHandler(w http.ResponseWriter, r *http.Request) {
	b, ok := s.loadBlock(w, r)
	if !ok {
		return
	}
	s.renderBlockForm(w, http.StatusOK, blockFormData{Block: *b, Form: block.Form(b.Settings)})
}

// editBlockHandler stores the submitted configuration of an existing block
func (s *Server) editBlockHandler(w http.ResponseWriter, r *http.Request) {
	existing, ok := s.loadBlock(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	b, data, ok := s.blockFromForm(r, *existing, false)
	if !ok {
		s.renderBlockForm(w, http.StatusBadRequest, data)
		return
	}

	if err := s.db.UpdateBlock(r.Context(), &b); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Block not found", http.StatusNotFound)
			return
		}
		s.respondWithError(w, http.StatusInternalServerError, "Failed to update block", err)
		return
	}
	s.dropBlockContent(r, existing.Settings)
	http.Redirect(w, r, "/admin/blocks", http.StatusSeeOther)
}

// deleteBlockHandler removes a block
func (s *Server) deleteBlockHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.db.DeleteBlock(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Block not found", http.StatusNotFound)
			return
		}
		s.respondWithError(w, http.StatusInternalServerError, "Failed to delete block", err)
		return
	}
	log.Printf("[INFO] block %s removed", id)

	// return empty response for HTMX to remove the element
	if r.Header.Get("HX-Request") == "true" {
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/admin/blocks", http.StatusSeeOther)
}

// settingsHandler shows site settings
func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	data := settingsData{Timezone: s.site.Timezone(r.Context()), Saved: r.URL.Query().Get("saved") == "1"}
	if err := s.renderPage(w, "settings.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// saveSettingsHandler stores the site timezone
func (s *Server) saveSettingsHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	tz := strings.TrimSpace(r.PostFormValue("timezone"))

	err := s.site.SetTimezone(r.Context(), tz)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		w.WriteHeader(http.StatusBadRequest)
		if err := s.renderPage(w, "settings.html", settingsData{Timezone: tz, Error: verr.Reason}); err != nil {
			log.Printf("[ERROR] failed to render settings: %v", err)
		}
		return
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}

	// day boundaries moved, cached lists are stale
	if err := s.renderer.Invalidate(r.Context(), block.CacheTagContentList); err != nil {
		log.Printf("[WARN] can't invalidate cached blocks: %v", err)
	}
	log.Printf("[INFO] site timezone set to %s", tz)
	http.Redirect(w, r, "/admin/settings?saved=1", http.StatusSeeOther)
}

// loadBlock gets the block from the id path value, writes the error response on failure
func (s *Server) loadBlock(w http.ResponseWriter, r *http.Request) (*domain.Block, bool) {
	b, err := s.db.GetBlock(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Block not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load block", err)
		return nil, false
	}
	return b, true
}

// blockFromForm applies posted placement fields and block settings to b.
// Returns false with form data carrying the errors if anything is invalid.
func (s *Server) blockFromForm(r *http.Request, b domain.Block, isNew bool) (domain.Block, blockFormData, bool) {
	values := block.Values{}
	for _, name := range []string{block.FieldTitle, block.FieldNoResultsMessage, block.FieldCacheHours, block.FieldResultLimit} {
		if v, ok := r.PostForm[name]; ok && len(v) > 0 {
			values[name] = v[0]
		}
	}

	b.Label = strings.TrimSpace(r.PostFormValue("label"))
	if region := strings.TrimSpace(r.PostFormValue("region")); region != "" {
		b.Region = region
	}
	if b.Region == "" {
		b.Region = frontRegion
	}

	data := blockFormData{IsNew: isNew, Block: b, Errors: map[string]string{}}
	if weight := strings.TrimSpace(r.PostFormValue("weight")); weight != "" {
		n, err := strconv.Atoi(weight)
		if err != nil {
			data.Errors["weight"] = "not an integer"
		}
		b.Weight = n
	}
	if isNew && !blockIDRegex.MatchString(b.ID) {
		data.Errors["id"] = "use lowercase letters, digits and underscores"
	}

	// keep submitted values in the form when it is shown again
	submitted := block.Form(b.Settings)
	for i := range submitted.Fields {
		if v, ok := values[submitted.Fields[i].Name]; ok {
			submitted.Fields[i].Value = v
		} else if submitted.Fields[i].Type == "textfield" {
			submitted.Fields[i].Value = ""
		}
	}
	data.Block = b
	data.Form = submitted

	if err := block.Validate(values); err != nil {
		verrs := block.FieldErrors(err)
		if len(verrs) == 0 {
			verrs = append(verrs, &domain.ValidationError{Field: block.FieldResultLimit, Reason: err.Error()})
		}
		for _, verr := range verrs {
			data.Form = data.Form.WithError(verr)
		}
		return b, data, false
	}
	if len(data.Errors) > 0 {
		return b, data, false
	}

	b.Settings = block.Submit(values)
	return b, data, true
}

// renderBlockForm renders the block configuration page with the given status
func (s *Server) renderBlockForm(w http.ResponseWriter, code int, data blockFormData) {
	if data.Errors == nil {
		data.Errors = map[string]string{}
	}
	var buf bytes.Buffer
	if err := s.renderPage(&buf, "block-form.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[WARN] failed to write block form: %v", err)
	}
}

// dropBlockContent removes the cached fragment built for cfg, the next render rebuilds it with
// the current settings
func (s *Server) dropBlockContent(r *http.Request, cfg domain.BlockConfig) {
	token := render.Token(block.BuilderName, block.LazyArgs(cfg))
	if err := s.renderer.Invalidate(r.Context(), render.TokenTag(token)); err != nil {
		log.Printf("[WARN] can't drop cached content of block: %v", err)
	}
}
