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

// maxLoggedBodyBytes bounds both the request preview and the captured error body.
const maxLoggedBodyBytes = 4 * 1024

//nolint:gochecknoglobals // read-only lookup table
var sensitiveHeaders = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"cookie":              {},
	"set-cookie":          {},
	"x-api-key":           {},
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if _, found := sensitiveHeaders[strings.ToLower(key)]; found {
			result.Set(key, "***")
		}
	}
	return result
}

// statusRecorder tracks the status and size of a response. Bodies of error
// responses are kept so their detail can be logged; success bodies may be
// whole datasets and are only counted.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int
	errBody bytes.Buffer
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if w.status >= http.StatusBadRequest {
		if remaining := maxLoggedBodyBytes - w.errBody.Len(); remaining > 0 {
			w.errBody.Write(p[:min(len(p), remaining)])
		}
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusRecorder) detail() string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.errBody.Bytes(), &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return strings.TrimSpace(w.errBody.String())
}

func matchedRoutePath(r *http.Request) string {
	pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath()
	if pattern != "" {
		return pattern
	}
	return r.URL.Path
}

func isMultipart(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "multipart/")
}

// describeBody renders a request body preview for the log.
func describeBody(preview []byte, truncated bool) any {
	switch {
	case len(preview) == 0:
		return nil
	case !utf8.Valid(preview):
		return "<binary body omitted>"
	case truncated:
		return string(preview) + "...(truncated)"
	default:
		return string(preview)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := matchedRoutePath(r)
		start := time.Now()

		var reqBody any
		if isMultipart(r.Header.Get("Content-Type")) {
			// Uploaded files are streamed to the handler untouched.
			reqBody = "<multipart body omitted>"
		} else if r.Body != nil && r.Body != http.NoBody {
			//nolint:errcheck // best effort for logging only
			preview, _ := io.ReadAll(io.LimitReader(r.Body, maxLoggedBodyBytes+1))
			r.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(preview), r.Body), Closer: r.Body}

			truncated := len(preview) > maxLoggedBodyBytes
			if truncated {
				preview = preview[:maxLoggedBodyBytes]
			}
			reqBody = describeBody(preview, truncated)
		}

		slog.InfoContext(
			r.Context(),
			"request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"content_length", r.ContentLength,
			"headers", maskHeaders(r.Header),
			"body", reqBody,
		)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		attrs := []any{
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if status >= http.StatusBadRequest {
			attrs = append(attrs, "detail", rec.detail())
		}

		slog.Log(r.Context(), levelForStatus(status), "response sent", attrs...)
	})
}

type readCloser struct {
	io.Reader
	io.Closer
}
