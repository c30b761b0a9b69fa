package api

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/huangsam/awardgap/core"
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/logging"
)

// maxUploadBytes bounds the size of an uploaded movie list.
const maxUploadBytes = 32 << 20

// Handler serves the movie endpoints from a store manager.
type Handler struct {
	mgr contract.StoreManager
}

// NewHandler creates a Handler backed by mgr.
func NewHandler(mgr contract.StoreManager) *Handler {
	return &Handler{mgr: mgr}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Health reports that the server is up
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "It works!"
// @Router / [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "It works!")
}

// ListProducerWinners returns the producers with the shortest and longest gap between wins
// @Summary Producer award intervals
// @Description Producers with the smallest and the largest gap between two consecutive wins
// @Tags movies
// @Produce json
// @Success 200 {object} schema.IntervalReport
// @Failure 500 {object} ErrorResponse
// @Router /list-producer-winners [get]
func (h *Handler) ListProducerWinners(w http.ResponseWriter, r *http.Request) {
	report, err := core.GetProducerIntervals(r.Context(), h.mgr)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ListMovies returns every stored movie
// @Summary List movies
// @Tags movies
// @Produce json
// @Success 200 {array} schema.Movie
// @Failure 500 {object} ErrorResponse
// @Router /movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := core.ListMovies(r.Context(), h.mgr)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// Populate validates an uploaded movie list and upserts every row
// @Summary Upload movie list
// @Description Semicolon-delimited file with the columns year;title;studios;producers;winner
// @Tags movies
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Movie list (.csv)"
// @Success 201 {object} schema.PopulateResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /populate [post]
func (h *Handler) Populate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, msgFileRequired)
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		writeError(w, http.StatusBadRequest, msgFileNotCSV)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgFileRequired)
		return
	}

	result, err := core.PopulateMovies(r.Context(), h.mgr, string(content))
	if err != nil {
		if isInputError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.internalError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("populated movies",
		logging.FieldComponent, "api",
		logging.FieldRows, result.Count)
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("request failed",
		logging.FieldComponent, "api",
		logging.FieldPath, r.URL.Path,
		"error", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
}
