package inbound

import (
	"context"
	"io"

	"github.com/shandysiswandi/csvboard/internal/dataset/entity"
	"github.com/shandysiswandi/csvboard/internal/dataset/usecase"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgrouter"
)

type uc interface {
	List(ctx context.Context) (usecase.ListResult, error)
	Dataset(ctx context.Context, filename string) (entity.Dataset, error)
	Info(ctx context.Context, filename string) (entity.Info, error)
	Upload(ctx context.Context, filename string, r io.Reader) (usecase.UploadResult, error)
	Delete(ctx context.Context, filename string) (usecase.DeleteResult, error)
}

type Options struct {
	// MaxUploadBytes caps the multipart body of POST /upload. Zero disables the cap.
	MaxUploadBytes int64
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, opts Options) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/", end.Root)
	r.GET("/files", end.Files)
	r.GET("/data/:filename", end.Data)
	r.GET("/data/:filename/info", end.Info)
	r.POST("/upload", end.Upload, pkgrouter.MaxBodyBytes(opts.MaxUploadBytes))
	r.DELETE("/files/:filename", end.Delete)
}
