package inbound

import "github.com/shandysiswandi/csvboard/internal/dataset/entity"

type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type FilesResponse struct {
	Files         []string `json:"files"`
	Count         int      `json:"count"`
	DataDirectory string   `json:"data_directory"`
}

type DataResponse struct {
	Info      entity.Info     `json:"info"`
	Data      []entity.Record `json:"data"`
	TotalRows int             `json:"total_rows"`
}

type UploadResponse struct {
	Message  string   `json:"message"`
	Filename string   `json:"filename"`
	Rows     int      `json:"rows"`
	Columns  []string `json:"columns"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
