package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/coursegen/internal/planner"
	"github.com/abhisek/coursegen/internal/store"
)

type courseHandler struct {
	planner *planner.Service
	courses store.CourseRepo
}

type courseJSON struct {
	ID               string       `json:"id"`
	Goal             string       `json:"goal"`
	KnowledgeProfile string       `json:"knowledge_profile,omitempty"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	Modules          []moduleJSON `json:"modules,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

type moduleJSON struct {
	Order       int            `json:"order"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Subtopics   []subtopicJSON `json:"subtopics"`
}

type subtopicJSON struct {
	Order int    `json:"order"`
	Title string `json:"title"`
}

func courseToJSON(c *store.Course) courseJSON {
	out := courseJSON{
		ID:               c.ID,
		Goal:             c.Goal,
		KnowledgeProfile: c.KnowledgeProfile,
		Title:            c.Title,
		Description:      c.Description,
		CreatedAt:        c.CreatedAt,
	}
	for _, m := range c.Modules {
		mod := moduleJSON{
			Order:       m.Order,
			Title:       m.Title,
			Description: m.Description,
		}
		for _, st := range m.Subtopics {
			mod.Subtopics = append(mod.Subtopics, subtopicJSON{Order: st.Order, Title: st.Title})
		}
		out.Modules = append(out.Modules, mod)
	}
	return out
}

func (h *courseHandler) plan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Goal             string `json:"goal"`
		KnowledgeProfile string `json:"knowledge_profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.Goal == "" {
		writeError(w, http.StatusBadRequest, "goal is required")
		return
	}

	course, err := h.planner.PlanCourse(r.Context(), planner.PlanInput{
		Goal:             body.Goal,
		KnowledgeProfile: body.KnowledgeProfile,
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, "course planning failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, courseToJSON(course))
}

func (h *courseHandler) list(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list courses: "+err.Error())
		return
	}

	out := make([]courseJSON, len(courses))
	for i, c := range courses {
		out[i] = courseToJSON(c)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *courseHandler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	course, err := h.courses.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "course not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "get course: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, courseToJSON(course))
}
