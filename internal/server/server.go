package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/coursegen/internal/planner"
	"github.com/abhisek/coursegen/internal/store"
	"github.com/abhisek/coursegen/internal/tutor"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// New builds and wires all routes.
func New(addr string, plannerSvc *planner.Service, tutorSvc *tutor.Service, courses store.CourseRepo, lessons store.LessonRepo) *Server {
	courseHandler := &courseHandler{planner: plannerSvc, courses: courses}
	lessonHandler := &lessonHandler{tutor: tutorSvc, lessons: lessons}

	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: Router(courseHandler, lessonHandler),
		},
	}
}

// Router assembles the chi router for the given handlers.
func Router(courses *courseHandler, lessons *lessonHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(api chi.Router) {
		api.Post("/courses", courses.plan)
		api.Get("/courses", courses.list)
		api.Get("/courses/{id}", courses.get)
		api.Post("/courses/{id}/lesson", lessons.generate)
		api.Post("/courses/{id}/lesson/stream", lessons.stream)
	})

	return r
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// ShutdownTimeout is how long Shutdown waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
