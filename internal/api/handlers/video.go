package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/paulajardimf/poo-1-exercicios/internal/api/apierr"
	"github.com/paulajardimf/poo-1-exercicios/internal/log"
	"github.com/paulajardimf/poo-1-exercicios/internal/storage/models"
	"github.com/paulajardimf/poo-1-exercicios/internal/storage/repository"
)

type VideoHandler struct {
	repo *repository.VideoRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewVideoHandler(repo *repository.VideoRepository) *VideoHandler {
	return &VideoHandler{
		repo: repo,
		log:  log.WithComponent("handlers"),
		now:  time.Now,
	}
}

// ListVideos handles GET /videos. An optional ?q= filters by substring match
// on the title.
func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	videos, err := h.repo.FindVideos(r.Context(), q)
	if err != nil {
		h.fail(w, "list videos", apierr.Wrap(err))
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

// CreateVideo handles POST /videos. The id comes from the caller and must
// not be taken yet; uploadedAt is stamped here.
func (h *VideoHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, "create video", apierr.New(apierr.Validation, err.Error()))
		return
	}

	id, ok := req.ID.(string)
	if !ok {
		h.fail(w, "create video", apierr.New(apierr.Validation, "'id' deve ser uma string"))
		return
	}
	title, ok := req.Title.(string)
	if !ok {
		h.fail(w, "create video", apierr.New(apierr.Validation, "'title' deve ser uma string"))
		return
	}
	duration, ok := req.Duration.(float64)
	if !ok {
		h.fail(w, "create video", apierr.New(apierr.Validation, "'duration' deve ser number"))
		return
	}

	_, exists, err := h.repo.FindVideoByID(r.Context(), id)
	if err != nil {
		h.fail(w, "create video", apierr.Wrap(err))
		return
	}
	if exists {
		h.fail(w, "create video", apierr.New(apierr.Conflict, "'id' já existe"))
		return
	}

	video := models.Video{
		ID:         id,
		Title:      title,
		Duration:   duration,
		UploadedAt: h.now().UTC().Format(time.RFC3339),
	}

	if err := h.repo.InsertVideo(r.Context(), video); err != nil {
		h.fail(w, "create video", apierr.Wrap(err))
		return
	}

	writeJSON(w, http.StatusOK, video)
}

// UpdateVideo handles PUT /videos/{id}. A missing id answers 400 before
// anything is written. Falsy incoming values (empty title, zero duration)
// keep the stored value; id and uploadedAt never change.
func (h *VideoHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, "update video", apierr.New(apierr.Validation, err.Error()))
		return
	}

	current, exists, err := h.repo.FindVideoByID(r.Context(), id)
	if err != nil {
		h.fail(w, "update video", apierr.Wrap(err))
		return
	}
	if !exists {
		h.fail(w, "update video", apierr.New(apierr.NotFound, "'id' não encontrado"))
		return
	}

	updated := current
	if req.Title != nil {
		title, ok := req.Title.(string)
		if !ok {
			h.fail(w, "update video", apierr.New(apierr.Validation, "'title' deve ser uma string"))
			return
		}
		if title != "" {
			updated.Title = title
		}
	}
	if req.Duration != nil {
		duration, ok := req.Duration.(float64)
		if !ok {
			h.fail(w, "update video", apierr.New(apierr.Validation, "'duration' deve ser um number"))
			return
		}
		if duration != 0 {
			updated.Duration = duration
		}
	}

	if err := h.repo.UpdateVideoByID(r.Context(), id, updated); err != nil {
		h.fail(w, "update video", apierr.Wrap(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]models.Video{"videoAtualizado": updated})
}

// DeleteVideo handles DELETE /videos/{id}. The deleted record is echoed
// back so the caller sees what went away.
func (h *VideoHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	video, exists, err := h.repo.FindVideoByID(r.Context(), id)
	if err != nil {
		h.fail(w, "delete video", apierr.Wrap(err))
		return
	}
	if !exists {
		h.fail(w, "delete video", apierr.New(apierr.NotFound, "Vídeo não encontrado!"))
		return
	}

	if err := h.repo.DeleteVideoByID(r.Context(), id); err != nil {
		h.fail(w, "delete video", apierr.Wrap(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Vídeo deletado com sucesso!",
		"video":   video,
	})
}

func (h *VideoHandler) fail(w http.ResponseWriter, op string, err *apierr.Error) {
	evt := h.log.Warn()
	if err.Kind == apierr.Internal {
		evt = h.log.Error().Err(err.Err)
	}
	evt.Str("op", op).Msg(err.Error())
	writeErr(w, err)
}
