package inbound

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/csvboard/internal/dataset/cache"
	"github.com/shandysiswandi/csvboard/internal/dataset/event"
	"github.com/shandysiswandi/csvboard/internal/dataset/store"
	"github.com/shandysiswandi/csvboard/internal/dataset/usecase"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkguid"
)

type testServer struct {
	router http.Handler
	dir    string
}

func newTestServer(t *testing.T, maxUpload int64) testServer {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "data")
	fs, err := store.NewFileSystem(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ids, err := pkguid.NewSnowflake(1)
	if err != nil {
		t.Fatalf("new snowflake: %v", err)
	}

	runner := pkgroutine.NewManager(4)
	bus := event.NewBus(16)
	consumer := event.NewConsumer(bus, event.Handlers{event.Logger{}, event.CacheInvalidator{Cache: cache.Noop{}}}, event.ConsumerConfig{
		Workers:     1,
		BaseBackoff: time.Millisecond,
	})
	consumer.Start()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := consumer.Stop(ctx); err != nil {
			t.Errorf("stop consumer: %v", err)
		}
		if err := runner.Wait(); err != nil {
			t.Errorf("runner wait: %v", err)
		}
	})

	uc := usecase.New(usecase.Dependency{
		Store:   fs,
		Cache:   cache.Noop{},
		Events:  bus,
		Runner:  runner,
		ID:      ids,
		RootCtx: context.Background(),
	})

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc, Options{MaxUploadBytes: maxUpload})

	return testServer{router: router, dir: fs.Dir()}
}

func (s testServer) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body %q: %v", rec.Body.String(), err)
		}
	}
	return rec, body
}

func (s testServer) get(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return s.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (s testServer) upload(t *testing.T, filename, content string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("note", "ignored"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return s.do(t, req)
}

func TestRootBanner(t *testing.T) {
	s := newTestServer(t, 0)

	rec, body := s.get(t, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if body["message"] != serviceTitle || body["version"] != serviceVersion {
		t.Fatalf("unexpected banner: %v", body)
	}
	endpoints, ok := body["endpoints"].(map[string]any)
	if !ok || endpoints["/upload"] == nil {
		t.Fatalf("unexpected endpoints: %v", body["endpoints"])
	}
}

func TestFilesEmpty(t *testing.T) {
	s := newTestServer(t, 0)

	rec, body := s.get(t, "/files")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); !strings.Contains(got, `"files":[]`) {
		t.Fatalf("expected empty files array, got %s", got)
	}
	if body["count"] != float64(0) {
		t.Fatalf("unexpected count: %v", body["count"])
	}
	if body["data_directory"] != s.dir || !filepath.IsAbs(s.dir) {
		t.Fatalf("unexpected data directory: %v", body["data_directory"])
	}
}

func TestDataMissingFile(t *testing.T) {
	s := newTestServer(t, 0)

	for _, path := range []string{"/data/missing.csv", "/data/missing.csv/info"} {
		rec, body := s.get(t, path)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: unexpected status: %d", path, rec.Code)
		}
		detail, _ := body["detail"].(string)
		if !strings.Contains(detail, "missing.csv") {
			t.Fatalf("%s: unexpected detail: %q", path, detail)
		}
	}
}

func TestUploadReadDelete(t *testing.T) {
	s := newTestServer(t, 0)

	rec, body := s.upload(t, "sales.csv", "x,y\n1,2\n,3\n4,5.5\n")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected upload status: %d body=%s", rec.Code, rec.Body.String())
	}
	if body["message"] != "file sales.csv uploaded successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["rows"] != float64(2) {
		t.Fatalf("unexpected rows: %v", body["rows"])
	}
	if _, err := os.Stat(filepath.Join(s.dir, "sales.csv")); err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}

	_, body = s.get(t, "/files")
	if body["count"] != float64(1) {
		t.Fatalf("unexpected count after upload: %v", body["count"])
	}

	rec, body = s.get(t, "/data/sales.csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected data status: %d", rec.Code)
	}
	if body["total_rows"] != float64(2) {
		t.Fatalf("unexpected total_rows: %v", body["total_rows"])
	}
	if raw := rec.Body.String(); !strings.Contains(raw, `"data":[{"x":1,"y":2.0},{"x":4,"y":5.5}]`) {
		t.Fatalf("unexpected data payload: %s", raw)
	}
	if raw := rec.Body.String(); !strings.Contains(raw, `"data_types":{"x":"int64","y":"float64"}`) {
		t.Fatalf("unexpected data types: %s", raw)
	}

	rec, body = s.get(t, "/data/sales.csv/info")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected info status: %d", rec.Code)
	}
	if body["filename"] != "sales.csv" || body["rows"] != float64(2) {
		t.Fatalf("unexpected info: %v", body)
	}
	if _, ok := body["sample_data"].([]any); !ok {
		t.Fatalf("expected sample_data array: %v", body)
	}

	rec, body = s.do(t, httptest.NewRequest(http.MethodDelete, "/files/sales.csv", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected delete status: %d", rec.Code)
	}
	if body["message"] != "file sales.csv deleted successfully" {
		t.Fatalf("unexpected delete message: %v", body["message"])
	}

	rec, _ = s.do(t, httptest.NewRequest(http.MethodDelete, "/files/sales.csv", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestUploadRejections(t *testing.T) {
	s := newTestServer(t, 0)

	rec, body := s.upload(t, "notes.txt", "a\n1\n")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status for txt: %d", rec.Code)
	}
	if body["detail"] == "" {
		t.Fatal("expected detail for txt upload")
	}
	if _, err := os.Stat(filepath.Join(s.dir, "notes.txt")); !os.IsNotExist(err) {
		t.Fatalf("txt upload must not be written: %v", err)
	}

	rec, body = s.upload(t, "broken.csv", "a\n1,2,3\n")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status for malformed csv: %d", rec.Code)
	}
	if detail, _ := body["detail"].(string); !strings.HasPrefix(detail, "failed to process csv") {
		t.Fatalf("unexpected detail: %q", detail)
	}
	if _, err := os.Stat(filepath.Join(s.dir, "broken.csv")); !os.IsNotExist(err) {
		t.Fatalf("malformed upload must be removed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("a,b\n1,2\n"))
	req.Header.Set("Content-Type", "text/csv")
	rec, _ = s.do(t, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status for non multipart: %d", rec.Code)
	}
}

func TestUploadTooLarge(t *testing.T) {
	s := newTestServer(t, 512)

	rec, body := s.upload(t, "big.csv", "v\n"+strings.Repeat("1\n", 1024))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	if detail, _ := body["detail"].(string); !strings.Contains(detail, "512") {
		t.Fatalf("unexpected detail: %q", detail)
	}
	if _, err := os.Stat(filepath.Join(s.dir, "big.csv")); !os.IsNotExist(err) {
		t.Fatalf("oversized upload must be removed: %v", err)
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	s := newTestServer(t, 0)

	rec, body := s.get(t, "/nope")
	if rec.Code != http.StatusNotFound || body["detail"] != "Not Found" {
		t.Fatalf("unexpected unknown route response: %d %v", rec.Code, body)
	}

	rec, body = s.do(t, httptest.NewRequest(http.MethodPut, "/files", nil))
	if rec.Code != http.StatusMethodNotAllowed || body["detail"] != "Method Not Allowed" {
		t.Fatalf("unexpected method response: %d %v", rec.Code, body)
	}
}

func TestFailedOverwriteRemovesPreviousFile(t *testing.T) {
	s := newTestServer(t, 0)

	rec, _ := s.upload(t, "a.csv", "x\n1\n")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status for first upload: %d", rec.Code)
	}

	rec, _ = s.upload(t, "a.csv", "x\n1,2,3\n")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status for broken overwrite: %d", rec.Code)
	}

	if _, err := os.Stat(filepath.Join(s.dir, "a.csv")); !os.IsNotExist(err) {
		t.Fatalf("expected the name to be gone after a failed overwrite: %v", err)
	}
	rec, _ = s.get(t, "/data/a.csv")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after failed overwrite, got %d", rec.Code)
	}
}
