// Package web serves the quiz as a sequence of HTML pages.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index", "question", "summary", "error"}

// Questions is the read side the pages need: sequencing, direct lookup by
// ID for the question page, and the total for progress lines.
type Questions interface {
	quiz.Sequencer
	Question(ctx context.Context, id int64) (*store.Question, error)
	Count(ctx context.Context) (int, error)
}

// Options configures a Server.
type Options struct {
	Questions Questions
	Answers   quiz.Responses
	UserID    int64
	Logger    *log.Logger
}

// Server routes quiz pages for a single fixed user.
type Server struct {
	questions Questions
	answers   quiz.Responses
	userID    int64
	logger    *log.Logger
	pages     map[string]*template.Template
	router    *mux.Router
}

// New parses the page templates and builds the router.
func New(opts Options) (*Server, error) {
	if opts.Questions == nil || opts.Answers == nil {
		return nil, errors.New("web: questions and answers are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}

	s := &Server{
		questions: opts.Questions,
		answers:   opts.Answers,
		userID:    opts.UserID,
		logger:    logger,
		pages:     pages,
		router:    mux.NewRouter(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Use(s.requestLogger)
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/start", s.handleStart).Methods(http.MethodGet)
	s.router.HandleFunc("/questions/{id:[0-9]+}", s.handleQuestion).Methods(http.MethodGet)
	s.router.HandleFunc("/questions/{id:[0-9]+}", s.handleAnswer).Methods(http.MethodPost)
	s.router.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	s.router.NotFoundHandler = s.requestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.renderError(w, http.StatusNotFound, "There is no page here.")
	}))
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// render executes a page into a buffer first so a template failure still
// produces a clean 500.
func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Printf("render %s: %v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

type errorPage struct {
	Status  string
	Message string
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	s.render(w, status, "error", errorPage{
		Status:  fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Message: message,
	})
}

// fail maps store and flow errors onto HTTP statuses.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.renderError(w, http.StatusNotFound, "That question does not exist.")
	case errors.Is(err, store.ErrReferentialViolation):
		s.renderError(w, http.StatusUnprocessableEntity, "That answer is for a question that does not exist.")
	case store.IsUnavailable(err):
		s.logger.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		s.renderError(w, http.StatusServiceUnavailable, "The quiz is unavailable right now. Please try again later.")
	default:
		s.logger.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		s.renderError(w, http.StatusInternalServerError, "Something went wrong.")
	}
}
