package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shandysiswandi/goproduct/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goproduct/internal/product/usecase"
)

const statsSegment = "stats"

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) List(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.List(ctx, usecase.ListParams{
		Category: pkgrouter.GetQuery(r, "category"),
		Search:   pkgrouter.GetQuery(r, "search"),
		Page:     usecase.ParsePositiveInt(pkgrouter.GetQuery(r, "page"), usecase.DefaultPage),
		Limit:    usecase.ParsePositiveInt(pkgrouter.GetQuery(r, "limit"), usecase.DefaultLimit),
	})
	if err != nil {
		return nil, err
	}

	return toListResponse(result), nil
}

func (h *HTTPEndpoint) Stats(ctx context.Context, _ *http.Request) (any, error) {
	stats, err := h.uc.Stats(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CategoryStats, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, toHTTPCategoryStats(s))
	}

	return resp, nil
}

func (h *HTTPEndpoint) Get(ctx context.Context, r *http.Request) (any, error) {
	id := pkgrouter.GetParam(ctx, "id")
	if id == statsSegment {
		return h.Stats(ctx, r)
	}

	product, err := h.uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toHTTPProduct(product), nil
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	payload, err := decodeBody(r)
	if err != nil {
		return nil, err
	}

	product, err := h.uc.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	return CreateProductResponse{Product: toHTTPProduct(product)}, nil
}

func (h *HTTPEndpoint) Update(ctx context.Context, r *http.Request) (any, error) {
	payload, err := decodeBody(r)
	if err != nil {
		return nil, err
	}

	product, err := h.uc.Update(ctx, pkgrouter.GetParam(ctx, "id"), payload)
	if err != nil {
		return nil, err
	}

	return toHTTPProduct(product), nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, _ *http.Request) (any, error) {
	if err := h.uc.Delete(ctx, pkgrouter.GetParam(ctx, "id")); err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *HTTPEndpoint) Clear(ctx context.Context, _ *http.Request) (any, error) {
	if err := h.uc.Clear(ctx); err != nil {
		return nil, err
	}

	return nil, nil
}

// decodeBody reads exactly one JSON object. An empty body decodes to an empty object.
func decodeBody(r *http.Request) (map[string]any, error) {
	payload := map[string]any{}
	if r.Body == nil {
		return payload, nil
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, bodyError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, bodyError(err)
	}

	if payload == nil {
		payload = map[string]any{}
	}

	return payload, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return pkgerror.New("request body too large", http.StatusRequestEntityTooLarge)
	}
	return pkgerror.NewBadRequest("invalid request body")
}
