package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/logger"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to encode response: %v", err)
	}
}

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a JSON body into dst and runs struct validation on it.
func (s *Server) decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError(fmt.Sprintf("invalid JSON body: %v", err))
	}
	if err := s.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var ve validator.ValidationErrors
	if !stderrors.As(err, &ve) || len(ve) == 0 {
		return errors.NewBadRequestError("invalid input")
	}
	fe := ve[0]
	reason := fe.Tag()
	if fe.Param() != "" {
		reason = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
	}
	return errors.NewValidationError(fieldPath(fe.Namespace()), "failed "+reason)
}

// fieldPath drops the struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewBadRequestError(fmt.Sprintf("invalid %s: %q", name, raw))
	}
	return id, nil
}
