package services

import (
	"math/rand"

	"packtrack/internal/repos"
)

// palette holds the fixed set of pastel colors a new category can draw
// from. The pick is random at creation time and stable afterwards.
var palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E2", "#F8B88B", "#ABEBC6",
	"#FAD7A0", "#D7BDE2", "#A9CCE3", "#F9E79F", "#A3E4D7",
	"#E8DAEF", "#D5F4E6", "#FADBD8", "#F5CBA7", "#D6EAF8",
	"#FCF3CF", "#E59866", "#85929E", "#F39C12", "#27AE60",
}

// RegistryService lazily creates categories and item types on first
// use. Nothing here is ever deleted or merged; registry rows accumulate.
type RegistryService struct {
	Reg *repos.RegistryRepo
}

func NewRegistryService(reg *repos.RegistryRepo) *RegistryService {
	return &RegistryService{Reg: reg}
}

// EnsureCategory returns the id of the named category, creating it with
// a random palette color if absent. An empty name means "no category"
// and yields a nil id.
func (s *RegistryService) EnsureCategory(name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	color := palette[rand.Intn(len(palette))]
	id, err := s.Reg.UpsertCategory(name, color)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// EnsureItemType registers the type name if new. A non-empty category
// name (re)points the type at that category, creating the category if
// needed; an empty one leaves any existing assignment alone.
func (s *RegistryService) EnsureItemType(name, categoryName string) error {
	if categoryName == "" {
		return s.Reg.UpsertItemType(name, nil)
	}
	catID, err := s.EnsureCategory(categoryName)
	if err != nil {
		return err
	}
	if err := s.Reg.UpsertItemType(name, catID); err != nil {
		return err
	}
	return s.Reg.SetItemTypeCategory(name, *catID)
}
