package services

import (
	"packtrack/internal/domain"
	"packtrack/internal/repos"
)

// PackingService implements the write side of the packing model: count
// changes, renames, moves, reordering and deletion, all of which must
// keep the row-per-unit representation consistent.
type PackingService struct {
	Items     *repos.ItemRepo
	Suitcases *repos.SuitcaseRepo
	Registry  *RegistryService
}

func NewPackingService(items *repos.ItemRepo, suitcases *repos.SuitcaseRepo, reg *RegistryService) *PackingService {
	return &PackingService{Items: items, Suitcases: suitcases, Registry: reg}
}

func (s *PackingService) ListSuitcases() ([]domain.Suitcase, error) {
	return s.Suitcases.List()
}

func (s *PackingService) CreateSuitcase(name string) (domain.Suitcase, error) {
	return s.Suitcases.Create(name)
}

// DeleteSuitcase removes the container and everything in it.
func (s *PackingService) DeleteSuitcase(id int64) (int64, error) {
	return s.Suitcases.DeleteCascade(id)
}

// AddItems registers the type (and category, if named), then inserts
// exactly count unit rows at the suitcase's next free position. Returns
// the position the new group landed on.
func (s *PackingService) AddItems(typ string, suitcaseID int64, count int, category string) (int, error) {
	if count < 1 {
		count = 1
	}
	if err := s.Registry.EnsureItemType(typ, category); err != nil {
		return 0, err
	}
	pos, err := s.Items.NextPosition(suitcaseID)
	if err != nil {
		return 0, err
	}
	if err := s.Items.InsertBulk(typ, suitcaseID, count, pos); err != nil {
		return 0, err
	}
	return pos, nil
}

// Increment appends one unit row at the group's existing position
// (position 0 when the group had no rows yet).
func (s *PackingService) Increment(typ string, suitcaseID int64) error {
	pos, _, err := s.Items.GroupPosition(typ, suitcaseID)
	if err != nil {
		return err
	}
	return s.Items.InsertOne(typ, suitcaseID, pos)
}

// Decrement removes one arbitrary unit row of the group. A group at
// count 1 happily drops to zero rows, which reads as deletion.
func (s *PackingService) Decrement(typ string, suitcaseID int64) error {
	ok, err := s.Items.DeleteOne(typ, suitcaseID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Reorder applies the client's full new ordering as one batch.
func (s *PackingService) Reorder(updates []domain.PositionUpdate) error {
	return s.Items.UpdatePositions(updates)
}

// Rename changes a type name. With a suitcase id it only touches that
// container's rows; without one it is global and also renames the
// registry entry. A global rename onto a different registered type is
// rejected rather than silently merging the two identities.
func (s *PackingService) Rename(oldType, newType string, suitcaseID *int64) (int64, error) {
	if suitcaseID != nil {
		return s.Items.RenameInSuitcase(oldType, newType, *suitcaseID)
	}
	if newType != oldType {
		if _, exists, err := s.Registry.Reg.GetItemType(newType); err != nil {
			return 0, err
		} else if exists {
			return 0, ErrConflict
		}
	}
	return s.Items.RenameAll(oldType, newType)
}

// Move re-homes a whole group. Without an explicit position the group is
// appended past the destination's current max.
func (s *PackingService) Move(typ string, fromID, toID int64, position *int) (int, int64, error) {
	pos := 0
	if position != nil {
		pos = *position
	} else {
		next, err := s.Items.NextPosition(toID)
		if err != nil {
			return 0, 0, err
		}
		pos = next
	}
	n, err := s.Items.MoveGroup(typ, fromID, toID, pos)
	if err != nil {
		return 0, 0, err
	}
	return pos, n, nil
}

func (s *PackingService) DeleteGroup(typ string, suitcaseID int64) (int64, error) {
	return s.Items.DeleteGroup(typ, suitcaseID)
}
