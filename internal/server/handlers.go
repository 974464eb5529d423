package server

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/theme"
)

// projectsResponse is the JSON body for GET /api/projects.
type projectsResponse struct {
	Tag      string            `json:"tag"`
	Query    string            `json:"query"`
	Tags     []string          `json:"tags"`
	Projects []catalog.Project `json:"projects"`
}

// healthResponse is the JSON body for GET /healthz.
type healthResponse struct {
	Status   string `json:"status"`
	Projects int    `json:"projects"`
	Error    string `json:"error,omitempty"`
}

func filterState(r *http.Request) gallery.FilterState {
	q := r.URL.Query()
	s := gallery.FilterState{Tag: q.Get("tag"), Query: q.Get("q")}
	if s.Tag == "" {
		s.Tag = gallery.AllTag
	}
	return s
}

// pageFor renders the gallery for state from the current snapshot.
func (s *Server) pageFor(state gallery.FilterState) (*render.Page, *gallery.Gallery) {
	page := render.NewPage(render.Links{}, s.cfg.MaxCardTags)
	page.Query = state.Query
	g := gallery.New(page, gallery.WithState(state), gallery.WithLocale(s.cfg.Locale))

	snap := s.current.Load()
	if snap.err != nil {
		g.Fail(snap.err)
	} else {
		g.SetCatalog(snap.catalog)
	}
	return page, g
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, page *render.Page, state gallery.FilterState) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	err := s.renderer.WritePage(w, render.PageData{
		Page:       page,
		State:      state,
		Theme:      theme.FromRequest(r),
		LiveReload: s.hub != nil,
	})
	if err != nil {
		s.logger.Sugar().Errorw("rendering page", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := filterState(r)
	page, g := s.pageFor(state)

	status := http.StatusOK
	if key := r.URL.Query().Get("project"); key != "" && g.Err() == nil {
		if err := g.OpenDetail(key); err != nil {
			status = http.StatusNotFound
		}
	}
	s.writePage(w, r, status, page, state)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	state := filterState(r)
	page, g := s.pageFor(state)

	status := http.StatusOK
	switch {
	case g.Err() != nil:
		status = http.StatusServiceUnavailable
	case g.OpenDetail(chi.URLParam(r, "slug")) != nil:
		status = http.StatusNotFound
	}
	s.writePage(w, r, status, page, state)
}

func (s *Server) handleGridFragment(w http.ResponseWriter, r *http.Request) {
	page, _ := s.pageFor(filterState(r))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.renderer.WriteGrid(w, page); err != nil {
		s.logger.Sugar().Errorw("rendering grid", "error", err)
	}
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	mode := theme.FromRequest(r).Toggle()
	if v := r.PostFormValue("mode"); v != "" {
		mode = theme.Parse(v)
	}
	theme.Write(w, mode)
	http.Redirect(w, r, safeReturn(r.PostFormValue("return")), http.StatusSeeOther)
}

// safeReturn only allows redirects back into this site.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	snap := s.current.Load()
	if snap.err != nil {
		writeError(w, http.StatusServiceUnavailable, snap.err.Error())
		return
	}
	state := filterState(r)
	writeJSON(w, http.StatusOK, projectsResponse{
		Tag:      state.ActiveTag(),
		Query:    state.Query,
		Tags:     gallery.TagVocabularyFor(snap.catalog, s.cfg.Locale),
		Projects: state.Visible(snap.catalog),
	})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	snap := s.current.Load()
	if snap.err != nil {
		writeError(w, http.StatusServiceUnavailable, snap.err.Error())
		return
	}
	p, ok := snap.catalog.Lookup(chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	snap := s.current.Load()
	if snap.err != nil {
		writeError(w, http.StatusServiceUnavailable, snap.err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"tags": gallery.TagVocabularyFor(snap.catalog, s.cfg.Locale),
	})
}

func (s *Server) handleRawCatalog(w http.ResponseWriter, r *http.Request) {
	snap := s.current.Load()
	if snap.err != nil {
		writeError(w, http.StatusServiceUnavailable, snap.err.Error())
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	if raw := snap.catalog.Raw(); raw != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)
		return
	}
	writeJSON(w, http.StatusOK, snap.catalog.Projects())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.current.Load()
	resp := healthResponse{Status: "ok", Projects: snap.catalog.Len()}
	if snap.err != nil {
		resp.Status = "degraded"
		resp.Error = snap.err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(render.Assets, "assets")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
