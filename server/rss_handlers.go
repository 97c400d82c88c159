package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/umputun/freshblock/pkg/feed"
	"github.com/umputun/freshblock/pkg/repository"
)

// rssHandler serves today's content of a block as RSS feed
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, err := s.db.GetBlock(ctx, r.PathValue("block"))
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Block not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get block for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	now := s.now()
	payload, err := s.fetcher.Fetch(ctx, b.Settings, now)
	if err != nil {
		log.Printf("[ERROR] failed to get items for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	generator := feed.NewGenerator(s.config.GetFullConfig().Server.BaseURL)
	rss, err := generator.GenerateRSS(*b, payload, now)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
