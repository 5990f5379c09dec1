package pkgrouter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/julienschmidt/httprouter"
)

const maxLoggedBodyBytes = 64 * 1024

const masked = "***"

// sensitiveKeys are matched case-insensitively against header names and JSON keys.
//
//nolint:gochecknoglobals // lookup table
var sensitiveKeys = map[string]struct{}{
	"authorization": {},
	"x-api-key":     {},
	"api_key":       {},
	"apikey":        {},
	"cookie":        {},
	"set-cookie":    {},
	"password":      {},
	"token":         {},
}

func isSensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if isSensitive(key) {
			result.Set(key, masked)
		}
	}
	return result
}

func maskData(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			if isSensitive(k) {
				out[k] = masked
				continue
			}
			out[k] = maskData(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = maskData(child)
		}
		return out
	default:
		return v
	}
}

// loggableBody renders a captured body for the log: masked JSON when it
// parses, text otherwise.
func loggableBody(body []byte, truncated bool) any {
	if len(body) == 0 {
		return nil
	}

	var out any
	var decoded any
	switch {
	case json.Unmarshal(body, &decoded) == nil:
		out = maskData(decoded)
	case utf8.Valid(body):
		out = string(body)
	default:
		return "<binary body omitted>"
	}

	if truncated {
		return map[string]any{"body": out, "truncated": true}
	}
	return out
}

type responseRecorder struct {
	http.ResponseWriter
	status    int
	bytes     int
	body      bytes.Buffer
	truncated bool
}

func (w *responseRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if room := maxLoggedBodyBytes - w.body.Len(); room < len(p) {
		w.body.Write(p[:max(room, 0)])
		w.truncated = true
	} else {
		w.body.Write(p)
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *responseRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// replayBody serves the logged prefix again, then the unread remainder.
type replayBody struct {
	io.Reader
	io.Closer
}

func matchedRoutePath(r *http.Request) string {
	if pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); pattern != "" {
		return pattern
	}
	return r.URL.Path
}

func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := matchedRoutePath(r)

		var reqBody []byte
		var reqTruncated bool
		if r.Body != nil && r.Body != http.NoBody {
			body := r.Body
			//nolint:errcheck // best effort, the handler reads the rest
			prefix, _ := io.ReadAll(io.LimitReader(body, maxLoggedBodyBytes+1))
			reqTruncated = len(prefix) > maxLoggedBodyBytes
			reqBody = prefix[:min(len(prefix), maxLoggedBodyBytes)]
			r.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(prefix), body), Closer: body}
		}

		slog.InfoContext(r.Context(), "request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"headers", maskHeaders(r.Header),
			"body", loggableBody(reqBody, reqTruncated),
		)

		rec := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		slog.Log(r.Context(), level, "response sent",
			"method", r.Method,
			"route", route,
			"status", status,
			"bytes", rec.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
			"body", loggableBody(rec.body.Bytes(), rec.truncated),
		)
	})
}
