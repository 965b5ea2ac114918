// Package server exposes boards over HTTP.
//
// The API is a thin JSON surface over the storage gateway: clients read and
// write full board documents per board ID and can trigger an auto-arrange
// pass server-side. Layout recovery lives in the gateway, so a GET always
// returns a usable board.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridboard/pkg/arrange"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/storage"
)

// Server handles board HTTP requests.
type Server struct {
	gateway     *storage.Gateway
	arrangeOpts arrange.Options
	logger      *log.Logger
}

// New creates a board server backed by gateway.
func New(gateway *storage.Gateway, arrangeOpts arrange.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		gateway:     gateway,
		arrangeOpts: arrangeOpts,
		logger:      logger,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/boards/{boardID}", func(r chi.Router) {
		r.Get("/", s.handleGetBoard)
		r.Put("/", s.handlePutBoard)
		r.Delete("/", s.handleDeleteBoard)
		r.Post("/arrange", s.handleArrangeBoard)
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// boardDocument is the wire shape of a full board.
type boardDocument struct {
	BoardID string           `json:"boardId"`
	Items   []storage.Record `json:"items"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")

	items := s.gateway.Load(r.Context(), boardID)
	writeJSON(w, http.StatusOK, boardDocument{
		BoardID: boardID,
		Items:   storage.EncodeRecords(items),
	})
}

func (s *Server) handlePutBoard(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")

	var doc boardDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidDocument, err, "failed to parse board document"))
		return
	}

	items := storage.DecodeRecords(doc.Items)
	if err := s.gateway.Save(r.Context(), boardID, items); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, boardDocument{
		BoardID: boardID,
		Items:   storage.EncodeRecords(items),
	})
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")

	if err := s.gateway.Delete(r.Context(), boardID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleArrangeBoard(w http.ResponseWriter, r *http.Request) {
	boardID := chi.URLParam(r, "boardID")

	items := s.gateway.Load(r.Context(), boardID)
	packed := arrange.Pack(items, s.arrangeOpts)
	if err := s.gateway.Save(r.Context(), boardID, packed); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, boardDocument{
		BoardID: boardID,
		Items:   storage.EncodeRecords(packed),
	})
}

// =============================================================================
// Response helpers
// =============================================================================

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, statusFor(code), errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(code),
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidWidgetType, errors.ErrCodeInvalidHandle:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeBoardNotFound, errors.ErrCodeItemNotFound:
		return http.StatusNotFound
	case errors.ErrCodeStorage, errors.ErrCodeStorageUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
