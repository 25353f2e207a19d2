package repos

import (
	"database/sql"

	"packtrack/internal/domain"

	"github.com/jmoiron/sqlx"
)

// RegistryRepo backs the lazy category / item-type registry. Creation
// goes through upserts so two racing first-uses of a name cannot trip
// over the check-then-insert gap.
type RegistryRepo struct{ db *sqlx.DB }

func NewRegistryRepo(db *sqlx.DB) *RegistryRepo { return &RegistryRepo{db: db} }

func (r *RegistryRepo) ListCategories() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `SELECT id, name, color FROM categories ORDER BY name`)
	return out, err
}

// UpsertCategory creates the category with the given color if absent and
// returns its id. An existing category keeps its original color.
func (r *RegistryRepo) UpsertCategory(name, color string) (int64, error) {
	if _, err := r.db.Exec(`
	  INSERT INTO categories(name, color) VALUES(?, ?)
	  ON CONFLICT(name) DO NOTHING
	`, name, color); err != nil {
		return 0, err
	}
	var id int64
	err := r.db.Get(&id, `SELECT id FROM categories WHERE name = ?`, name)
	return id, err
}

func (r *RegistryRepo) GetItemType(name string) (domain.ItemType, bool, error) {
	var t domain.ItemType
	err := r.db.Get(&t, `SELECT id, name, category_id FROM item_types WHERE name = ?`, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ItemType{}, false, nil
		}
		return domain.ItemType{}, false, err
	}
	return t, true, nil
}

// UpsertItemType creates the type row if absent, leaving category_id as
// given; an existing row is not touched.
func (r *RegistryRepo) UpsertItemType(name string, categoryID *int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO item_types(name, category_id) VALUES(?, ?)
	  ON CONFLICT(name) DO NOTHING
	`, name, categoryID)
	return err
}

// SetItemTypeCategory repoints an existing type at a category. This is
// global: every item sharing the type name is re-categorized.
func (r *RegistryRepo) SetItemTypeCategory(name string, categoryID int64) error {
	_, err := r.db.Exec(`UPDATE item_types SET category_id = ? WHERE name = ?`, categoryID, name)
	return err
}

func (r *RegistryRepo) ListItemTypes() ([]domain.TypeWithCategory, error) {
	out := []domain.TypeWithCategory{}
	err := r.db.Select(&out, `
	  SELECT
	    item_types.id,
	    item_types.name,
	    item_types.category_id,
	    categories.name AS category_name,
	    categories.color AS category_color
	  FROM item_types
	  LEFT JOIN categories ON item_types.category_id = categories.id
	  ORDER BY item_types.name
	`)
	return out, err
}
