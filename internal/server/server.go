// Package server serves the knowledge base as HTML pages.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gravitrone/kbase/internal/browser"
	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/render"
	"github.com/gravitrone/kbase/internal/search"
)

// Options configures a Server. Library must already be loaded.
type Options struct {
	Library *kb.Library
	FAQ     []kb.FAQEntry
	// FAQErr is shown on the FAQ page when the FAQ collection failed to load.
	FAQErr      error
	Table       search.Table
	Source      kb.Source
	Names       browser.NameStore
	DisplayName string
	Logger      *zap.Logger
}

// Server renders a fresh browser state per request. The display name is the
// only state shared between requests.
type Server struct {
	lib    *kb.Library
	faq    []kb.FAQEntry
	faqErr error
	tpl    search.Templater
	exp    search.Expander
	html   *render.HTML
	src    kb.Source
	names  browser.NameStore
	logger *zap.Logger

	mu   sync.Mutex
	name string
}

// New builds a server.
func New(opts Options) (*Server, error) {
	if opts.Library == nil {
		return nil, errors.New("library is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		lib:    opts.Library,
		faq:    opts.FAQ,
		faqErr: opts.FAQErr,
		tpl:    opts.Table.Templater(),
		exp:    opts.Table.Expander(),
		src:    opts.Source,
		names:  opts.Names,
		logger: logger,
		name:   strings.TrimSpace(opts.DisplayName),
	}
	h, err := render.NewHTML(s.link)
	if err != nil {
		return nil, err
	}
	s.html = h
	return s, nil
}

// Handler returns the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", s.handlePage)
	r.Get("/faq", s.handleFAQ)
	r.Get("/preview", s.handlePreview)
	r.Post("/name", s.handleName)

	if dir, ok := s.src.(*kb.DirSource); ok {
		r.Handle("/files/*", http.StripPrefix("/files", http.FileServer(http.FS(dir.FS()))))
	}
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		<-errCh
		return nil
	}
}

// DisplayName returns the current display name.
func (s *Server) DisplayName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *Server) label() string {
	return browser.NewNameFlow(nil, s.DisplayName()).Label()
}

// link sends resource paths of a directory site through /files; other sites
// resolve against their base URL.
func (s *Server) link(p string) string {
	if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if _, ok := s.src.(*kb.DirSource); ok {
		return "/files/" + strings.TrimPrefix(p, "/")
	}
	if s.src != nil {
		return s.src.Resolve(p)
	}
	return p
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st := browser.New(s.lib)
	st.DisplayName = s.DisplayName()
	if id := q.Get("section"); id != "" {
		if err := st.Select(id); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
	}
	st.SetGlobalQuery(q.Get("q"))
	st.SetSectionQuery(q.Get("sq"))

	s.write(w, func(buf *strings.Builder) error {
		return s.html.Page(buf, render.PageData{
			Nav:          st.Nav(),
			Panel:        st.Panel(s.tpl),
			GlobalQuery:  st.GlobalQuery,
			SectionQuery: st.SectionQuery,
			NameLabel:    s.label(),
			AskName:      st.DisplayName == "",
		})
	})
}

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	if s.faqErr != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := s.html.LoadError(w, s.faqErr); err != nil {
			s.logger.Error("render failed", zap.Error(err))
		}
		return
	}
	f := browser.NewFAQ(s.faq, s.exp)
	f.Search(r.URL.Query().Get("q"))

	s.write(w, func(buf *strings.Builder) error {
		return s.html.FAQPage(buf, render.FAQData{
			Query:     f.Query(),
			Rows:      f.Rows(),
			Visible:   f.VisibleCount(),
			NameLabel: s.label(),
		})
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.write(w, func(buf *strings.Builder) error {
		return s.html.Preview(buf, render.PreviewData{
			Type:  q.Get("type"),
			Path:  q.Get("path"),
			Title: q.Get("title"),
		})
	})
}

func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	flow := browser.NewNameFlow(s.names, s.name)
	var err error
	if r.PostForm.Get("skip") != "" {
		err = flow.Skip()
	} else {
		err = flow.Confirm(r.PostForm.Get("name"))
	}
	s.name = flow.Name()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("save display name failed", zap.Error(err))
		http.Error(w, "could not save name", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, backURL(r), http.StatusSeeOther)
}

// write renders to a buffer; a template error sends a 500, never a partial page.
func (s *Server) write(w http.ResponseWriter, fn func(*strings.Builder) error) {
	var buf strings.Builder
	if err := fn(&buf); err != nil {
		s.logger.Error("render failed", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(buf.String()))
}

// backURL returns the same-host page the form was posted from, or "/".
func backURL(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	return ref.RequestURI()
}
