package services

import (
	"packtrack/internal/domain"
	"packtrack/internal/repos"
)

// AggregationService is the read side: it collapses the row-per-unit
// item table into grouped views. Pure reads, no side effects.
type AggregationService struct {
	Items *repos.ItemRepo
}

func NewAggregationService(items *repos.ItemRepo) *AggregationService {
	return &AggregationService{Items: items}
}

func (s *AggregationService) AllGroups() ([]domain.ItemGroup, error) {
	return s.Items.ListGroups()
}

func (s *AggregationService) Search(q string) ([]domain.SearchGroup, error) {
	return s.Items.Search(q)
}

func (s *AggregationService) BySuitcase(suitcaseID int64) ([]domain.SuitcaseGroup, error) {
	return s.Items.GroupsBySuitcase(suitcaseID)
}

func (s *AggregationService) Summary() ([]domain.SummaryRow, error) {
	return s.Items.Summary()
}
