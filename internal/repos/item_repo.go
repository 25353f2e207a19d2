package repos

import (
	"database/sql"
	"strings"

	"packtrack/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

// ListGroups returns every (type, suitcase) group with joined suitcase
// and category info. Counts and representative id/position are derived
// at query time, never stored.
func (r *ItemRepo) ListGroups() ([]domain.ItemGroup, error) {
	out := []domain.ItemGroup{}
	err := r.db.Select(&out, `
	  SELECT
	    MIN(items.id) AS id,
	    items.type,
	    items.suitcase_id,
	    suitcases.name AS suitcase_name,
	    MIN(items.position) AS position,
	    categories.name AS category_name,
	    categories.color AS category_color,
	    COUNT(*) AS count
	  FROM items
	  JOIN suitcases ON items.suitcase_id = suitcases.id
	  LEFT JOIN item_types ON items.type = item_types.name
	  LEFT JOIN categories ON item_types.category_id = categories.id
	  GROUP BY items.type, items.suitcase_id, suitcases.name, categories.name, categories.color
	  ORDER BY suitcases.name, MIN(items.position), items.type
	`)
	return out, err
}

// Search matches a case-insensitive substring against the type name.
func (r *ItemRepo) Search(q string) ([]domain.SearchGroup, error) {
	out := []domain.SearchGroup{}
	err := r.db.Select(&out, `
	  SELECT
	    MIN(items.id) AS id,
	    items.type,
	    items.suitcase_id,
	    suitcases.name AS suitcase_name,
	    COUNT(*) AS count
	  FROM items
	  JOIN suitcases ON items.suitcase_id = suitcases.id
	  WHERE items.type LIKE ?
	  GROUP BY items.type, items.suitcase_id, suitcases.name
	  ORDER BY items.type
	`, "%"+q+"%")
	return out, err
}

func (r *ItemRepo) GroupsBySuitcase(suitcaseID int64) ([]domain.SuitcaseGroup, error) {
	out := []domain.SuitcaseGroup{}
	err := r.db.Select(&out, `
	  SELECT
	    MIN(id) AS id,
	    type,
	    suitcase_id,
	    MIN(position) AS position,
	    COUNT(*) AS count
	  FROM items
	  WHERE suitcase_id = ?
	  GROUP BY type, suitcase_id
	  ORDER BY MIN(position), type
	`, suitcaseID)
	return out, err
}

func (r *ItemRepo) Summary() ([]domain.SummaryRow, error) {
	out := []domain.SummaryRow{}
	err := r.db.Select(&out, `
	  SELECT
	    items.type,
	    categories.name AS category_name,
	    categories.color AS category_color,
	    suitcases.name AS suitcase_name,
	    COUNT(*) AS count
	  FROM items
	  JOIN suitcases ON items.suitcase_id = suitcases.id
	  LEFT JOIN item_types ON items.type = item_types.name
	  LEFT JOIN categories ON item_types.category_id = categories.id
	  GROUP BY items.type, categories.name, categories.color, suitcases.name
	  ORDER BY items.type, suitcases.name
	`)
	return out, err
}

// NextPosition computes the append slot for a suitcase: one past the
// current max position, or 0 when the suitcase is empty.
func (r *ItemRepo) NextPosition(suitcaseID int64) (int, error) {
	var pos int
	err := r.db.Get(&pos, `
	  SELECT COALESCE(MAX(position), -1) + 1 FROM items WHERE suitcase_id = ?
	`, suitcaseID)
	return pos, err
}

// GroupPosition reads the position of any row in the group; ok is false
// when the group has no rows.
func (r *ItemRepo) GroupPosition(typ string, suitcaseID int64) (int, bool, error) {
	var pos int
	err := r.db.Get(&pos, `
	  SELECT position FROM items WHERE type = ? AND suitcase_id = ? LIMIT 1
	`, typ, suitcaseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return pos, true, nil
}

// InsertBulk appends count unit rows for one group, all at position pos.
func (r *ItemRepo) InsertBulk(typ string, suitcaseID int64, count, pos int) error {
	placeholders := strings.TrimSuffix(strings.Repeat("(?, ?, ?),", count), ",")
	args := make([]any, 0, count*3)
	for i := 0; i < count; i++ {
		args = append(args, typ, suitcaseID, pos)
	}
	_, err := r.db.Exec(`INSERT INTO items(type, suitcase_id, position) VALUES `+placeholders, args...)
	return err
}

func (r *ItemRepo) InsertOne(typ string, suitcaseID int64, pos int) error {
	_, err := r.db.Exec(`INSERT INTO items(type, suitcase_id, position) VALUES(?, ?, ?)`,
		typ, suitcaseID, pos)
	return err
}

// DeleteOne removes a single arbitrary row of the group. Returns false
// when the group has no rows.
func (r *ItemRepo) DeleteOne(typ string, suitcaseID int64) (bool, error) {
	res, err := r.db.Exec(`
	  DELETE FROM items WHERE id IN (
	    SELECT id FROM items WHERE type = ? AND suitcase_id = ? LIMIT 1
	  )
	`, typ, suitcaseID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// UpdatePositions applies a reorder batch. The whole batch runs in one
// transaction so a mid-sequence failure cannot leave a half-applied
// ordering.
func (r *ItemRepo) UpdatePositions(updates []domain.PositionUpdate) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range updates {
		if _, err := tx.Exec(`
		  UPDATE items SET position = ? WHERE type = ? AND suitcase_id = ?
		`, u.Position, u.Type, u.SuitcaseID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// RenameAll renames a type everywhere: the registry entry and every item
// row, in one transaction to avoid a dangling registry name.
func (r *ItemRepo) RenameAll(oldType, newType string) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE item_types SET name = ? WHERE name = ?`, newType, oldType); err != nil {
		return 0, err
	}
	res, err := tx.Exec(`UPDATE items SET type = ? WHERE type = ?`, newType, oldType)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, tx.Commit()
}

// RenameInSuitcase renames only one suitcase's group; the registry is
// left alone.
func (r *ItemRepo) RenameInSuitcase(oldType, newType string, suitcaseID int64) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE items SET type = ? WHERE type = ? AND suitcase_id = ?
	`, newType, oldType, suitcaseID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// MoveGroup repoints a whole group at another suitcase with a new shared
// position.
func (r *ItemRepo) MoveGroup(typ string, fromID, toID int64, pos int) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE items SET suitcase_id = ?, position = ? WHERE type = ? AND suitcase_id = ?
	`, toID, pos, typ, fromID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// DeleteGroup removes every row of the group. Deleting an absent group
// is a no-op.
func (r *ItemRepo) DeleteGroup(typ string, suitcaseID int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM items WHERE type = ? AND suitcase_id = ?`, typ, suitcaseID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
