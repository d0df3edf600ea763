package usecase

import "github.com/shandysiswandi/csvboard/internal/dataset/entity"

type ListResult struct {
	Files         []string
	DataDirectory string
}

type UploadResult struct {
	Filename string
	Rows     int
	Columns  []string
}

type DeleteResult struct {
	Filename string
}

type cachedDataset struct {
	fingerprint entity.Fingerprint
	dataset     entity.Dataset
}
