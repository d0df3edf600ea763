package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/csvboard/internal/dataset/entity"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgerror"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkguid"
)

//go:generate mockgen -destination=mocks/dependencies_mock.go -package=mocks -source=usecase.go

// Store is the flat data directory holding the CSV files.
type Store interface {
	Dir() string
	List(ctx context.Context) ([]string, error)
	Stat(ctx context.Context, filename string) (entity.Fingerprint, error)
	Read(ctx context.Context, filename string) ([]byte, error)
	Write(ctx context.Context, filename string, r io.Reader) error
	Remove(ctx context.Context, filename string) error
}

// Cache keeps parsed datasets keyed by file version.
type Cache interface {
	Get(ctx context.Context, filename string, fp entity.Fingerprint) (entity.Dataset, bool, error)
	Set(ctx context.Context, fp entity.Fingerprint, ds entity.Dataset) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.FileEvent) error
}

// Runner starts background work without waiting for a free slot.
type Runner interface {
	TryGo(ctx context.Context, f func(ctx context.Context) error) bool
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store    Store
	Cache    Cache
	Events   EventPublisher
	Runner   Runner
	Clock    Clock
	ID       pkguid.NumberID
	Decoders []Decoder
	RootCtx  context.Context
}

type Usecase struct {
	store    Store
	cache    Cache
	events   EventPublisher
	runner   Runner
	clock    Clock
	id       pkguid.NumberID
	decoders []Decoder
	rootCtx  context.Context
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	decoders := dep.Decoders
	if len(decoders) == 0 {
		decoders = DefaultDecoders()
	}

	return &Usecase{
		store:    dep.Store,
		cache:    dep.Cache,
		events:   dep.Events,
		runner:   dep.Runner,
		clock:    clock,
		id:       dep.ID,
		decoders: decoders,
		rootCtx:  root,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (u *Usecase) List(ctx context.Context) (ListResult, error) {
	files, err := u.store.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list csv files", "error", err)
		return ListResult{}, pkgerror.NewInternal("failed to list files", err)
	}

	return ListResult{Files: files, DataDirectory: u.store.Dir()}, nil
}

func (u *Usecase) Dataset(ctx context.Context, filename string) (entity.Dataset, error) {
	fp, err := u.store.Stat(ctx, filename)
	if err != nil {
		return entity.Dataset{}, u.fileErr(ctx, filename, err)
	}

	if cached, ok := u.cached(ctx, filename, fp); ok {
		return cached, nil
	}

	ds, err := u.load(ctx, filename)
	if err != nil {
		return entity.Dataset{}, err
	}

	u.remember(ctx, cachedDataset{fingerprint: fp, dataset: ds})

	return ds, nil
}

func (u *Usecase) Info(ctx context.Context, filename string) (entity.Info, error) {
	ds, err := u.Dataset(ctx, filename)
	if err != nil {
		return entity.Info{}, err
	}
	return ds.Info, nil
}

// Upload writes r verbatim under filename, overwriting any existing file,
// then parses it back. A file that fails the read-back is removed again.
func (u *Usecase) Upload(ctx context.Context, filename string, r io.Reader) (UploadResult, error) {
	if filename == "" {
		return UploadResult{}, pkgerror.NewBadInput("filename is required", nil)
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return UploadResult{}, pkgerror.NewBadInput("only csv files are allowed", nil)
	}

	if err := u.store.Write(ctx, filename, r); err != nil {
		if errors.Is(err, entity.ErrInvalidFilename) {
			return UploadResult{}, pkgerror.NewBadInput(fmt.Sprintf("invalid file name %s", filename), err)
		}
		u.discard(ctx, filename)
		slog.ErrorContext(ctx, "failed to upload file", "filename", filename, "error", err)
		return UploadResult{}, pkgerror.NewInternal("failed to upload file", err)
	}

	ds, err := u.load(ctx, filename)
	if err != nil {
		u.discard(ctx, filename)
		return UploadResult{}, err
	}

	if fp, err := u.store.Stat(ctx, filename); err == nil {
		u.remember(ctx, cachedDataset{fingerprint: fp, dataset: ds})
	}

	u.publish(ctx, entity.FileUploaded, filename)

	slog.InfoContext(ctx, "file uploaded", "filename", filename, "rows", ds.TotalRows())

	return UploadResult{
		Filename: filename,
		Rows:     ds.TotalRows(),
		Columns:  ds.Info.Columns,
	}, nil
}

func (u *Usecase) Delete(ctx context.Context, filename string) (DeleteResult, error) {
	if err := u.store.Remove(ctx, filename); err != nil {
		return DeleteResult{}, u.fileErr(ctx, filename, err)
	}

	u.publish(ctx, entity.FileDeleted, filename)

	slog.InfoContext(ctx, "file deleted", "filename", filename)

	return DeleteResult{Filename: filename}, nil
}

// load reads and parses a stored file. Errors are logged with the filename.
func (u *Usecase) load(ctx context.Context, filename string) (entity.Dataset, error) {
	content, err := u.store.Read(ctx, filename)
	if err != nil {
		return entity.Dataset{}, u.fileErr(ctx, filename, err)
	}

	text, encoding, err := decode(content, u.decoders)
	if err != nil {
		slog.ErrorContext(ctx, "failed to decode csv", "filename", filename, "error", err)
		return entity.Dataset{}, pkgerror.NewBadInput("unreadable CSV", err)
	}

	ds, err := parseCSV(filename, text)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse csv", "filename", filename, "encoding", encoding, "error", err)
		return entity.Dataset{}, pkgerror.NewInternal("failed to process csv", err)
	}

	slog.DebugContext(ctx, "csv parsed", "filename", filename, "encoding", encoding, "rows", ds.TotalRows())

	return ds, nil
}

func (u *Usecase) fileErr(ctx context.Context, filename string, err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) || errors.Is(err, entity.ErrInvalidFilename) {
		return pkgerror.NewNotFound(fmt.Sprintf("file %s not found", filename))
	}

	slog.ErrorContext(ctx, "failed to access file", "filename", filename, "error", err)
	return pkgerror.NewInternal("failed to process csv", err)
}

func (u *Usecase) cached(ctx context.Context, filename string, fp entity.Fingerprint) (entity.Dataset, bool) {
	if u.cache == nil {
		return entity.Dataset{}, false
	}

	ds, ok, err := u.cache.Get(ctx, filename, fp)
	if err != nil {
		slog.WarnContext(ctx, "failed to read dataset cache", "filename", filename, "error", err)
		return entity.Dataset{}, false
	}
	return ds, ok
}

// remember stores the dataset in the cache in the background. The fill is
// skipped when no worker is free.
func (u *Usecase) remember(ctx context.Context, entry cachedDataset) {
	if u.cache == nil || u.runner == nil {
		return
	}

	started := u.runner.TryGo(u.rootCtx, func(bgCtx context.Context) error {
		if err := u.cache.Set(bgCtx, entry.fingerprint, entry.dataset); err != nil {
			slog.WarnContext(bgCtx, "failed to write dataset cache", "filename", entry.dataset.Info.Filename, "error", err)
		}
		return nil
	})
	if !started {
		slog.DebugContext(ctx, "skip dataset cache fill, workers busy", "filename", entry.dataset.Info.Filename)
	}
}

func (u *Usecase) discard(ctx context.Context, filename string) {
	if err := u.store.Remove(ctx, filename); err != nil && !errors.Is(err, pkgerror.ErrNotFound) {
		slog.WarnContext(ctx, "failed to clean up rejected upload", "filename", filename, "error", err)
	}
}

func (u *Usecase) publish(ctx context.Context, kind entity.FileEventKind, filename string) {
	if u.events == nil {
		return
	}

	event := entity.FileEvent{
		Kind:     kind,
		Filename: filename,
		At:       u.clock.Now().Unix(),
	}
	if u.id != nil {
		event.ID = u.id.Generate()
	}

	if err := u.events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish file event", "filename", filename, "kind", kind, "error", err)
	}
}
