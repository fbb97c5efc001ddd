package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/cometholdings/comet/content"
)

// VersionHeader carries the content version a response was built from.
const VersionHeader = "X-Content-Version"

// ProjectSummary is one card in the portfolio listing.
type ProjectSummary struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Image    string `json:"image"`
	Industry string `json:"industry,omitempty"`
}

// handleContent returns the full content record.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.store.Site())
}

// handleListPortfolio lists portfolio companies in display order.
func (s *Server) handleListPortfolio(w http.ResponseWriter, r *http.Request) {
	site := s.store.Site()
	items := make([]ProjectSummary, 0, len(site.Portfolio))
	for _, p := range site.Portfolio {
		items = append(items, ProjectSummary{
			Slug:     p.Slug,
			Name:     p.Name,
			Tagline:  p.Tagline,
			Image:    p.DisplayImage(),
			Industry: p.Industry,
		})
	}
	s.writeJSON(w, map[string]any{"portfolio": items})
}

// handleGetProject returns one portfolio company by slug.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := s.store.Site().Project(slug)
	if errors.Is(err, content.ErrNotFound) {
		jsonError(w, fmt.Sprintf("project %q not found", slug), http.StatusNotFound)
		return
	}
	if err != nil {
		jsonError(w, "failed to load project: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, p)
}

// handleChangelog renders the release notes as HTML. Output is cached per
// content version.
func (s *Server) handleChangelog(w http.ResponseWriter, r *http.Request) {
	version := s.store.Version()

	s.mu.Lock()
	cached := s.changelog
	s.mu.Unlock()

	if cached.version != version || cached.html == nil {
		html, err := s.render(changelogMarkdown(s.store.Site()))
		if err != nil {
			s.log.Error("render changelog", zap.Error(err))
			jsonError(w, "failed to render changelog", http.StatusInternalServerError)
			return
		}
		cached = rendered{version: version, html: html}
		s.mu.Lock()
		s.changelog = cached
		s.mu.Unlock()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set(VersionHeader, strconv.Itoa(cached.version))
	w.Write(cached.html)
}

// handleInventory returns the copy inventory as markdown, or HTML with
// ?format=html.
func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	md := s.store.Site().Inventory()
	w.Header().Set(VersionHeader, strconv.Itoa(s.store.Version()))

	switch r.URL.Query().Get("format") {
	case "", "md", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(md))
	case "html":
		html, err := s.render(md)
		if err != nil {
			s.log.Error("render inventory", zap.Error(err))
			jsonError(w, "failed to render inventory", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
	default:
		jsonError(w, "format must be md or html", http.StatusBadRequest)
	}
}

// handleContactQR serves a PNG QR code encoding a mailto link to the
// contact address. ?size overrides the configured edge length.
func (s *Server) handleContactQR(w http.ResponseWriter, r *http.Request) {
	email := s.store.Site().Contact.Email
	if email == "" {
		jsonError(w, "no contact email configured", http.StatusNotFound)
		return
	}

	size := s.cfg.QRSize
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 64 || n > 2048 {
			jsonError(w, "size must be an integer between 64 and 2048", http.StatusBadRequest)
			return
		}
		size = n
	}
	if size <= 0 {
		size = 256
	}

	png, err := qrcode.Encode("mailto:"+email, qrcode.Medium, size)
	if err != nil {
		s.log.Error("encode contact qr", zap.Error(err))
		jsonError(w, "failed to encode qr code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}

func (s *Server) render(md string) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(md), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(VersionHeader, strconv.Itoa(s.store.Version()))
	json.NewEncoder(w).Encode(v)
}

// changelogMarkdown lists release notes in file order.
func changelogMarkdown(site *content.Site) string {
	var b strings.Builder
	b.WriteString("# Changelog\n\n")
	if len(site.Changelog) == 0 {
		b.WriteString("No releases yet.\n")
		return b.String()
	}
	for _, c := range site.Changelog {
		fmt.Fprintf(&b, "## %s\n\n", c.Version)
		if c.Date != "" {
			fmt.Fprintf(&b, "*%s*\n\n", c.Date)
		}
		b.WriteString(strings.TrimSpace(c.Notes))
		b.WriteString("\n\n")
	}
	return b.String()
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
