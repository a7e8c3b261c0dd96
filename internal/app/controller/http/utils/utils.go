package httputils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/model"
)

const (
	RequestTimeout = 3 * time.Second

	ErrTokenExpired = "token has expired or is invalid"
	ErrInvalidAuth  = "auth credentials are invalid"
	ErrInvalidBody  = "request body is invalid"
	ErrInternal     = "internal server error"
)

const maxBodySize = 1 << 20

// ParseUserID reads the user id set by the token middleware and writes the
// response itself when the caller is not authenticated.
func ParseUserID(w http.ResponseWriter, r *http.Request) (entity.UserID, error) {
	userIDCtx, ok := r.Context().Value(entity.UserIDCtxKey{}).(entity.UserIDCtx)
	if !ok {
		WriteError(w, http.StatusInternalServerError, ErrInternal)
		return entity.UserID(""), fmt.Errorf("user id couldn't obtain from context")
	}

	if userIDCtx.StatusCode == http.StatusBadRequest {
		WriteError(w, http.StatusUnauthorized, ErrInvalidAuth)
		return entity.UserID(""), fmt.Errorf("failed auth credentials")
	}

	if userIDCtx.StatusCode == http.StatusUnauthorized {
		WriteError(w, http.StatusUnauthorized, ErrTokenExpired)
		return entity.UserID(""), fmt.Errorf(ErrTokenExpired)
	}

	if userIDCtx.StatusCode != http.StatusOK || !userIDCtx.UserID.Valid() {
		WriteError(w, http.StatusUnauthorized, ErrInvalidAuth)
		return entity.UserID(""), fmt.Errorf("invalid user id with status ok")
	}

	return userIDCtx.UserID, nil
}

func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := decoder.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, ErrInvalidBody)
		return fmt.Errorf("error while decoding request body: %w", err)
	}

	return nil
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	out, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("error while marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}

func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, model.ErrorResponse{
		Error: message,
	})
}
