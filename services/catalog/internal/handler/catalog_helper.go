package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cuihairu/labcatalog/internal/ports"
	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

const (
	apiPrefix   = "/lab2"
	maxBodySize = 1 << 20
)

// writeCatalogError renders err as the uniform error body with the status of
// its kind. Anything unclassified is logged and reported as a 500.
func writeCatalogError(ctx context.Context, w http.ResponseWriter, err error) {
	body := types.ErrorResponse{Timestamp: time.Now().Format(time.RFC3339)}
	var (
		status = http.StatusInternalServerError
		verr   *ports.ValidationError
	)
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		body.Error, body.Message, body.Field = "Bad Request", verr.Message, verr.Field
	case errors.Is(err, ports.ErrNotFound):
		status = http.StatusNotFound
		body.Error, body.Message = "Not Found", err.Error()
	case errors.Is(err, ports.ErrConflict):
		status = http.StatusConflict
		body.Error, body.Message = "Conflict", err.Error()
	default:
		logx.WithContext(ctx).Errorf("[catalog] request failed: %v", err)
		body.Error, body.Message = "Internal Server Error", "An unexpected error occurred"
	}
	httpx.WriteJsonCtx(ctx, w, status, body)
}

// parseBody checks the raw body against schema, then decodes it into v.
func parseBody(r *http.Request, schema *validation.Schema, v any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return ports.Invalid("", "Malformed JSON request")
	}
	if err := schema.Validate(raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return ports.Invalid("", "Malformed JSON request")
	}
	return nil
}

func parseID(r *http.Request) (uint, error) {
	var req types.IdPath
	if err := httpx.ParsePath(r, &req); err != nil {
		return 0, invalidID()
	}
	return req.Id, nil
}

func invalidID() error {
	return ports.Invalid("id", "Invalid id")
}

func writeCreated(ctx context.Context, w http.ResponseWriter, collection string, id uint, resp any) {
	w.Header().Set("Location", fmt.Sprintf("%s/%s/%d", apiPrefix, collection, id))
	httpx.WriteJsonCtx(ctx, w, http.StatusCreated, resp)
}

func invalidIndex() error {
	return ports.Invalid("index", "Invalid index")
}
