package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/coursegen/internal/store"
	"github.com/abhisek/coursegen/internal/stream"
	"github.com/abhisek/coursegen/internal/tutor"
)

type lessonHandler struct {
	tutor   *tutor.Service
	lessons store.LessonRepo
}

type lessonRequest struct {
	Module           int    `json:"module"`
	Subtopic         int    `json:"subtopic"`
	KnowledgeProfile string `json:"knowledge_profile"`
}

type lessonJSON struct {
	CourseID             string    `json:"course_id"`
	Module               int       `json:"module"`
	Subtopic             int       `json:"subtopic"`
	Title                string    `json:"title"`
	Content              string    `json:"content"`
	EstimatedReadTimeMin int       `json:"estimated_read_time_min,omitempty"`
	Model                string    `json:"model,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (h *lessonHandler) params(r *http.Request) (stream.StartParams, error) {
	var body lessonRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return stream.StartParams{}, fmt.Errorf("invalid JSON body")
	}
	if body.Module < 1 || body.Subtopic < 1 {
		return stream.StartParams{}, fmt.Errorf("module and subtopic must be positive")
	}
	return stream.StartParams{
		CourseID:         chi.URLParam(r, "id"),
		ModuleOrder:      body.Module,
		SubtopicOrder:    body.Subtopic,
		KnowledgeProfile: body.KnowledgeProfile,
	}, nil
}

func (h *lessonHandler) generate(w http.ResponseWriter, r *http.Request) {
	p, err := h.params(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lesson, err := h.tutor.GenerateLesson(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusBadGateway, "lesson generation failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, lessonJSON{
		CourseID:             lesson.CourseID,
		Module:               lesson.ModuleOrder,
		Subtopic:             lesson.SubtopicOrder,
		Title:                lesson.Title,
		Content:              lesson.Content,
		EstimatedReadTimeMin: lesson.EstimatedReadTimeMin,
		Model:                lesson.Model,
		UpdatedAt:            lesson.UpdatedAt,
	})
}

// stream proxies the raw provider stream to the client as SSE data lines
// while feeding a server-side session, so the finalized lesson is persisted
// even when the client only renders the live text.
func (h *lessonHandler) stream(w http.ResponseWriter, r *http.Request) {
	p, err := h.params(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fallbackTitle, err := h.tutor.SubtopicTitle(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	p.SubtopicTitle = fallbackTitle

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	src, err := h.tutor.OpenLessonStream(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusBadGateway, "open stream: "+err.Error())
		return
	}
	defer src.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	session := stream.NewSession()

	// Tee every proxied byte into the session so finalization sees the
	// same stream the client did.
	pr, pw := io.Pipe()
	ingestDone := make(chan struct{})
	go func() {
		defer close(ingestDone)
		if err := session.Ingest(context.WithoutCancel(r.Context()), pr); err != nil {
			log.Printf("lesson stream ingest: %v", err)
		}
	}()

	tee := io.TeeReader(src, pw)
	buf := make([]byte, 4096)
	for {
		n, readErr := tee.Read(buf)
		if n > 0 {
			writeSSEChunk(w, string(buf[:n]))
			flusher.Flush()
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			// Mid-stream failure: terminate without the done sentinel so
			// the client treats the stream as truncated.
			pw.CloseWithError(readErr)
			<-ingestDone
			log.Printf("lesson stream read: %v", readErr)
			return
		}
	}

	pw.Close()
	<-ingestDone

	res := session.Finalize(fallbackTitle)
	if res.Content != "" {
		if err := h.tutor.SaveLessonContent(context.WithoutCancel(r.Context()), p, res); err != nil {
			log.Printf("warning: persist streamed lesson: %v", err)
		}
	}

	fmt.Fprintf(w, "data: %s\n\n", stream.DoneSentinel)
	flusher.Flush()
}

// writeSSEChunk emits one chunk as an SSE event. Raw newlines inside the
// chunk become separate data lines; JSON string values never contain raw
// newlines, so the client can concatenate payloads losslessly.
func writeSSEChunk(w io.Writer, chunk string) {
	for _, line := range strings.Split(chunk, "\n") {
		fmt.Fprintf(w, "data: %s\n", line)
	}
	fmt.Fprint(w, "\n")
}
