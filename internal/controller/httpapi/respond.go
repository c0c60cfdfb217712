package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Freeeeeet/thunders/internal/assist"
	"github.com/Freeeeeet/thunders/internal/gameweek"
	"github.com/Freeeeeet/thunders/internal/service"
	"github.com/Freeeeeet/thunders/internal/signup"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// maxBodyBytes ограничение размера JSON тела запроса
const maxBodyBytes = 1 << 20

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON читает тело запроса в dst
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json: %v", errBadRequest, err)
	}
	return nil
}

// pathID достаёт uuid из {id} маршрута
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id", errBadRequest)
	}
	return id, nil
}

// errorStatus сопоставляет ошибку сервиса с HTTP статусом
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, signup.ErrMissingFields),
		errors.Is(err, signup.ErrConsentRequired),
		errors.Is(err, gameweek.ErrInvalidCount),
		errors.Is(err, service.ErrInvalidColor),
		errors.Is(err, service.ErrInvalidVideoURL),
		errors.Is(err, service.ErrInvalidCursor),
		errors.Is(err, service.ErrDuplicateVideo):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrGuestNotFound),
		errors.Is(err, service.ErrMemberNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail пишет ошибку клиенту. Внутренние ошибки логируются, клиент видит общий текст
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)

	switch {
	case errors.Is(err, assist.ErrNotConfigured):
		writeError(w, status, err.Error())
		return
	case status == http.StatusInternalServerError:
		s.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, status, "internal error")
		return
	}

	writeError(w, status, err.Error())
}
