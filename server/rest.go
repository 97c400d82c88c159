package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/freshblock/pkg/block"
	"github.com/umputun/freshblock/pkg/domain"
	"github.com/umputun/freshblock/pkg/repository"
)

const defaultContentPageSize = 50

// contentRequest is the body of content create and update calls
type contentRequest struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  int64     `json:"author_id"`
	Published *bool     `json:"published"`
	Changed   time.Time `json:"changed"`
}

// listBlocksHandler returns all placed blocks
func (s *Server) listBlocksHandler(w http.ResponseWriter, r *http.Request) {
	blocks, err := s.db.ListBlocks(r.Context(), r.URL.Query().Get("region"))
	if err != nil {
		log.Printf("[ERROR] failed to list blocks: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, blocks)
}

// blockPayloadHandler returns the current payload of a block, bypassing the render cache
func (s *Server) blockPayloadHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, err := s.db.GetBlock(ctx, r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("block not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get block: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	payload, err := s.fetcher.Fetch(ctx, b.Settings, s.now())
	if err != nil {
		log.Printf("[ERROR] failed to fetch block %s payload: %v", b.ID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, payload)
}

// listContentHandler returns content items, most recently changed first
func (s *Server) listContentHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultContentPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	items, err := s.db.ListContent(r.Context(), limit, offset)
	if err != nil {
		log.Printf("[ERROR] failed to list content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, items)
}

// createContentHandler adds a content item
func (s *Server) createContentHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodeContentRequest(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	item := &domain.ContentItem{
		Type:      req.Type,
		Title:     req.Title,
		Body:      req.Body,
		AuthorID:  req.AuthorID,
		Published: req.Published == nil || *req.Published,
		Changed:   req.Changed,
	}
	if err := s.db.CreateContent(r.Context(), item); err != nil {
		log.Printf("[ERROR] failed to create content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.invalidateContentLists(r)
	renderJSON(w, r, http.StatusCreated, item)
}

// updateContentHandler replaces the editable fields of a content item
func (s *Server) updateContentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid content ID"), http.StatusBadRequest)
		return
	}
	req, err := decodeContentRequest(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	item, err := s.db.GetContent(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("content not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if req.Type != "" {
		item.Type = req.Type
	}
	item.Title = req.Title
	item.Body = req.Body
	item.AuthorID = req.AuthorID
	if req.Published != nil {
		item.Published = *req.Published
	}
	item.Changed = req.Changed // zero means now

	if err := s.db.UpdateContent(ctx, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("content not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to update content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.invalidateContentLists(r)
	renderJSON(w, r, http.StatusOK, item)
}

// deleteContentHandler removes a content item
func (s *Server) deleteContentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid content ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteContent(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("content not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to delete content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.invalidateContentLists(r)
	w.WriteHeader(http.StatusNoContent)
}

// invalidateContentLists drops cached block fragments after a content change
func (s *Server) invalidateContentLists(r *http.Request) {
	if err := s.renderer.Invalidate(r.Context(), block.CacheTagContentList); err != nil {
		log.Printf("[WARN] can't invalidate cached blocks: %v", err)
	}
}

func decodeContentRequest(r *http.Request) (contentRequest, error) {
	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return contentRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return contentRequest{}, fmt.Errorf("title is required")
	}
	return req, nil
}
