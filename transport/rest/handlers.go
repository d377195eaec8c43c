package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/duel-arcade/internal/apperror"
	"github.com/rocketscienceinc/duel-arcade/internal/entity"
	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
)

const (
	defaultArchiveLimit = 20
	maxArchiveLimit     = 100
)

type ScoreReader interface {
	GetMatch(ctx context.Context, roomID string) (*entity.MatchSummary, error)
	GetSolo(ctx context.Context, name string) (*entity.SoloScore, error)
}

type ArchiveReader interface {
	ListRecent(ctx context.Context, limit int) ([]*entity.ArchivedMatch, error)
}

type GridReader interface {
	GetByID(ctx context.Context, roomID string) (*entity.GridRoom, error)
}

// gridRoomResponse - suit choices stay hidden until both players chose.
type gridRoomResponse struct {
	Board  entity.Board   `json:"board"`
	Turn   string         `json:"turn"`
	Scores map[string]int `json:"scores"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	scores  ScoreReader
	archive ArchiveReader
	grid    GridReader
}

func newHandlers(scores ScoreReader, archive ArchiveReader, grid GridReader) *handlers {
	return &handlers{
		scores:  scores,
		archive: archive,
		grid:    grid,
	}
}

// GetMatch - the stored summary of a finished duel.
func (that *handlers) GetMatch(w http.ResponseWriter, r *http.Request) {
	roomID, ok := keyParam(w, r, "roomID")
	if !ok {
		return
	}

	summary, err := that.scores.GetMatch(r.Context(), roomID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// GetSolo - the last solo result of a player.
func (that *handlers) GetSolo(w http.ResponseWriter, r *http.Request) {
	name, ok := keyParam(w, r, "name")
	if !ok {
		return
	}

	score, err := that.scores.GetSolo(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, score)
}

// GetGridRoom - board, turn and scores of a grid game room.
func (that *handlers) GetGridRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := keyParam(w, r, "roomID")
	if !ok {
		return
	}

	room, err := that.grid.GetByID(r.Context(), roomID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gridRoomResponse{
		Board:  room.Board,
		Turn:   room.Turn,
		Scores: room.Scores,
	})
}

// ListMatches - most recent archived duels first, ?limit=n.
func (that *handlers) ListMatches(w http.ResponseWriter, r *http.Request) {
	limit := defaultArchiveLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive number"})
			return
		}

		limit = min(parsed, maxArchiveLimit)
	}

	matches, err := that.archive.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matches)
}

// keyParam - a URL parameter that must be a single store key.
func keyParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if err := realtime.ValidKey(value); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return "", false
	}

	return value, true
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperror.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrNotFound.Error()})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
