package repos

import (
	"packtrack/internal/domain"

	"github.com/jmoiron/sqlx"
)

// TransferRepo dumps and replaces the whole dataset for export/import.
type TransferRepo struct{ db *sqlx.DB }

func NewTransferRepo(db *sqlx.DB) *TransferRepo { return &TransferRepo{db: db} }

func (r *TransferRepo) DumpAll() (domain.ExportPayload, error) {
	var p domain.ExportPayload
	p.Suitcases = []domain.Suitcase{}
	p.Items = []domain.Item{}
	p.Categories = []domain.Category{}
	p.ItemTypes = []domain.ItemType{}

	if err := r.db.Select(&p.Suitcases, `SELECT id, name FROM suitcases ORDER BY id`); err != nil {
		return p, err
	}
	if err := r.db.Select(&p.Items, `SELECT id, type, suitcase_id, position FROM items ORDER BY id`); err != nil {
		return p, err
	}
	if err := r.db.Select(&p.Categories, `SELECT id, name, color FROM categories ORDER BY id`); err != nil {
		return p, err
	}
	err := r.db.Select(&p.ItemTypes, `SELECT id, name, category_id FROM item_types ORDER BY id`)
	return p, err
}

// ReplaceAll wipes every table and bulk-inserts the payload, preserving
// original ids. Deletes run child-first to respect foreign keys, and the
// whole replace is one transaction so a failed import cannot leave a
// half-wiped store.
func (r *TransferRepo) ReplaceAll(p domain.ExportPayload, withRegistry bool) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		`DELETE FROM items`,
		`DELETE FROM item_types`,
		`DELETE FROM categories`,
		`DELETE FROM suitcases`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	for _, s := range p.Suitcases {
		if _, err := tx.Exec(`INSERT INTO suitcases(id, name) VALUES(?, ?)`, s.ID, s.Name); err != nil {
			return err
		}
	}
	if withRegistry {
		for _, c := range p.Categories {
			if _, err := tx.Exec(`INSERT INTO categories(id, name, color) VALUES(?, ?, ?)`,
				c.ID, c.Name, c.Color); err != nil {
				return err
			}
		}
		for _, t := range p.ItemTypes {
			if _, err := tx.Exec(`INSERT INTO item_types(id, name, category_id) VALUES(?, ?, ?)`,
				t.ID, t.Name, t.CategoryID); err != nil {
				return err
			}
		}
	}
	for _, it := range p.Items {
		if _, err := tx.Exec(`INSERT INTO items(id, type, suitcase_id, position) VALUES(?, ?, ?, ?)`,
			it.ID, it.Type, it.SuitcaseID, it.Position); err != nil {
			return err
		}
	}

	return tx.Commit()
}
