package inbound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shandysiswandi/csvboard/internal/pkg/pkgerror"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgrouter"
)

const (
	serviceTitle   = "CSV Dashboard API"
	serviceVersion = "1.0.0"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Root(context.Context, *http.Request) (any, error) {
	return RootResponse{
		Message: serviceTitle,
		Version: serviceVersion,
		Endpoints: map[string]string{
			"/files":                "List available CSV files",
			"/data/{filename}":      "Parsed data of one CSV file",
			"/data/{filename}/info": "Metadata of one CSV file",
			"/upload":               "Upload a new CSV file",
		},
	}, nil
}

func (h *HTTPEndpoint) Files(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.List(ctx)
	if err != nil {
		return nil, err
	}

	files := result.Files
	if files == nil {
		files = []string{}
	}

	return FilesResponse{
		Files:         files,
		Count:         len(files),
		DataDirectory: result.DataDirectory,
	}, nil
}

func (h *HTTPEndpoint) Data(ctx context.Context, _ *http.Request) (any, error) {
	ds, err := h.uc.Dataset(ctx, pkgrouter.GetParam(ctx, "filename"))
	if err != nil {
		return nil, err
	}

	return DataResponse{
		Info:      ds.Info,
		Data:      ds.Records,
		TotalRows: ds.TotalRows(),
	}, nil
}

func (h *HTTPEndpoint) Info(ctx context.Context, _ *http.Request) (any, error) {
	return h.uc.Info(ctx, pkgrouter.GetParam(ctx, "filename"))
}

func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	part, err := extractMultipartFile(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = part.Close() }()

	filename := part.FileName()

	result, err := h.uc.Upload(ctx, filename, part)
	if err != nil {
		return nil, translateBodyErr(err)
	}

	return UploadResponse{
		Message:  fmt.Sprintf("file %s uploaded successfully", result.Filename),
		Filename: result.Filename,
		Rows:     result.Rows,
		Columns:  result.Columns,
	}, nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Delete(ctx, pkgrouter.GetParam(ctx, "filename"))
	if err != nil {
		return nil, err
	}

	return DeleteResponse{
		Message: fmt.Sprintf("file %s deleted successfully", result.Filename),
	}, nil
}

type filePart interface {
	io.ReadCloser
	FileName() string
}

// extractMultipartFile streams the "file" form field without buffering the body.
func extractMultipartFile(r *http.Request) (filePart, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, pkgerror.NewBadInput("request must be multipart/form-data", err)
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, pkgerror.NewBadInput("file is required", nil)
			}
			return nil, translateBodyErr(pkgerror.NewBadInput("malformed multipart body", err))
		}

		if part.FormName() == "file" {
			return part, nil
		}
		_ = part.Close()
	}
}

func translateBodyErr(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return pkgerror.NewBusiness(fmt.Sprintf("file exceeds the %d bytes upload limit", tooLarge.Limit), pkgerror.CodeTooLarge)
	}
	return err
}
