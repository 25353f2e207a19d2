package repos

import (
	"packtrack/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SuitcaseRepo struct{ db *sqlx.DB }

func NewSuitcaseRepo(db *sqlx.DB) *SuitcaseRepo { return &SuitcaseRepo{db: db} }

func (r *SuitcaseRepo) List() ([]domain.Suitcase, error) {
	out := []domain.Suitcase{}
	err := r.db.Select(&out, `SELECT id, name FROM suitcases`)
	return out, err
}

func (r *SuitcaseRepo) Create(name string) (domain.Suitcase, error) {
	res, err := r.db.Exec(`INSERT INTO suitcases(name) VALUES(?)`, name)
	if err != nil {
		return domain.Suitcase{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Suitcase{}, err
	}
	return domain.Suitcase{ID: id, Name: name}, nil
}

// DeleteCascade removes the suitcase and every item it contains in one
// transaction, so a failure between the two deletes cannot strand items
// with a dangling suitcase_id.
func (r *SuitcaseRepo) DeleteCascade(id int64) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM items WHERE suitcase_id = ?`, id); err != nil {
		return 0, err
	}
	res, err := tx.Exec(`DELETE FROM suitcases WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, tx.Commit()
}
