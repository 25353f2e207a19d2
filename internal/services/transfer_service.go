package services

import (
	"time"

	"github.com/google/uuid"

	"packtrack/internal/domain"
	"packtrack/internal/repos"
)

const exportVersion = "2.0"

// ImportCounts reports how many rows each table received.
type ImportCounts struct {
	Suitcases  int `json:"suitcases"`
	Items      int `json:"items"`
	Categories int `json:"categories"`
	ItemTypes  int `json:"item_types"`
}

// TransferService handles full-dataset export and destructive import.
type TransferService struct {
	Repo *repos.TransferRepo
}

func NewTransferService(repo *repos.TransferRepo) *TransferService {
	return &TransferService{Repo: repo}
}

func (s *TransferService) Export() (domain.ExportPayload, error) {
	p, err := s.Repo.DumpAll()
	if err != nil {
		return p, err
	}
	p.Version = exportVersion
	p.ExportID = uuid.NewString()
	p.ExportDate = time.Now().UTC().Format(time.RFC3339)
	return p, nil
}

// Import replaces the whole dataset with the payload, preserving ids.
// A "2.0" payload carrying categories and item_types restores all four
// tables; anything else is treated as a legacy dump of suitcases and
// items only. Returns the per-table counts and the detected version.
func (s *TransferService) Import(p domain.ExportPayload) (ImportCounts, string, error) {
	isV2 := p.Version == exportVersion && p.Categories != nil && p.ItemTypes != nil

	if err := s.Repo.ReplaceAll(p, isV2); err != nil {
		return ImportCounts{}, "", err
	}

	counts := ImportCounts{Suitcases: len(p.Suitcases), Items: len(p.Items)}
	version := "1.0 (backward compatible)"
	if isV2 {
		counts.Categories = len(p.Categories)
		counts.ItemTypes = len(p.ItemTypes)
		version = exportVersion
	}
	return counts, version, nil
}
