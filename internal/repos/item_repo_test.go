package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"packtrack/internal/domain"
	"packtrack/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	schema := `
	CREATE TABLE suitcases(id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL);
	CREATE TABLE categories(id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL UNIQUE, color TEXT NOT NULL);
	CREATE TABLE item_types(id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL UNIQUE, category_id INTEGER);
	CREATE TABLE items(id INTEGER PRIMARY KEY AUTOINCREMENT, type TEXT NOT NULL, suitcase_id INTEGER NOT NULL, position INTEGER DEFAULT 0);

	INSERT INTO suitcases(name) VALUES ('Bedroom'), ('Attic');
	INSERT INTO categories(name, color) VALUES ('Clothing', '#4ECDC4');
	INSERT INTO item_types(name, category_id) VALUES ('shirt', 1), ('lamp', NULL);
	INSERT INTO items(type, suitcase_id, position) VALUES
	  ('shirt', 1, 1), ('shirt', 1, 1),
	  ('lamp', 1, 0),
	  ('shirt', 2, 0), ('shirt', 2, 0), ('shirt', 2, 0);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestListGroupsCountsAndOrdering(t *testing.T) {
	r := repos.NewItemRepo(memdb(t))

	groups, err := r.ListGroups()
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 3 {
		t.Fatalf("want 3 groups, got %d: %+v", len(groups), groups)
	}

	// suitcase name first ('Attic' < 'Bedroom'), then position
	if groups[0].SuitcaseName != "Attic" || groups[0].Type != "shirt" || groups[0].Count != 3 {
		t.Fatalf("want Attic shirt x3 first, got %+v", groups[0])
	}
	if groups[1].SuitcaseName != "Bedroom" || groups[1].Type != "lamp" {
		t.Fatalf("want Bedroom lamp (position 0) second, got %+v", groups[1])
	}
	if groups[2].Type != "shirt" || groups[2].Count != 2 {
		t.Fatalf("want Bedroom shirt x2 last, got %+v", groups[2])
	}

	// categorized vs uncategorized joins
	if groups[2].CategoryName == nil || *groups[2].CategoryName != "Clothing" {
		t.Fatalf("shirt should join to Clothing, got %+v", groups[2])
	}
	if groups[1].CategoryName != nil {
		t.Fatalf("lamp has no category, got %+v", groups[1])
	}
}

func TestSearchSubstringCaseInsensitive(t *testing.T) {
	r := repos.NewItemRepo(memdb(t))

	out, err := r.Search("HIR")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("want shirt groups from both suitcases, got %+v", out)
	}
	for _, g := range out {
		if g.Type != "shirt" {
			t.Fatalf("unexpected match %+v", g)
		}
	}

	out, err = r.Search("zzz")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("want no matches, got %+v", out)
	}
}

func TestNextPosition(t *testing.T) {
	db := memdb(t)
	r := repos.NewItemRepo(db)

	pos, err := r.NextPosition(1)
	if err != nil {
		t.Fatal(err)
	}
	if pos != 2 {
		t.Fatalf("want 2 (max position 1 + 1), got %d", pos)
	}

	// empty suitcase starts at 0
	if _, err := db.Exec(`INSERT INTO suitcases(name) VALUES ('Empty')`); err != nil {
		t.Fatal(err)
	}
	pos, err = r.NextPosition(3)
	if err != nil {
		t.Fatal(err)
	}
	if pos != 0 {
		t.Fatalf("want 0 for empty suitcase, got %d", pos)
	}
}

func TestSummaryGroupsByTypeCategorySuitcase(t *testing.T) {
	r := repos.NewItemRepo(memdb(t))

	rows, err := r.Summary()
	if err != nil {
		t.Fatal(err)
	}
	// lamp(Bedroom), shirt(Attic), shirt(Bedroom) — ordered type then suitcase
	if len(rows) != 3 {
		t.Fatalf("want 3 summary rows, got %+v", rows)
	}
	if rows[0].Type != "lamp" {
		t.Fatalf("want lamp first, got %+v", rows[0])
	}
	if rows[1].Type != "shirt" || rows[1].SuitcaseName != "Attic" || rows[1].Count != 3 {
		t.Fatalf("want shirt/Attic x3, got %+v", rows[1])
	}
	if rows[2].SuitcaseName != "Bedroom" || rows[2].Count != 2 {
		t.Fatalf("want shirt/Bedroom x2, got %+v", rows[2])
	}
}

func TestUpdatePositionsRollsBackOnFailure(t *testing.T) {
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	// CHECK clause gives the batch a way to fail mid-sequence
	schema := `
	CREATE TABLE suitcases(id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL);
	CREATE TABLE items(id INTEGER PRIMARY KEY AUTOINCREMENT, type TEXT NOT NULL,
	  suitcase_id INTEGER NOT NULL, position INTEGER DEFAULT 0 CHECK (position >= 0));

	INSERT INTO suitcases(name) VALUES ('Bedroom');
	INSERT INTO items(type, suitcase_id, position) VALUES
	  ('shirt', 1, 0), ('pants', 1, 1);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	r := repos.NewItemRepo(db)

	err = r.UpdatePositions([]domain.PositionUpdate{
		{Type: "shirt", SuitcaseID: 1, Position: 5},
		{Type: "pants", SuitcaseID: 1, Position: -1},
	})
	if err == nil {
		t.Fatal("batch with an invalid position should fail")
	}

	// the first tuple's update must not survive the failed batch
	var pos int
	if err := db.Get(&pos, `SELECT position FROM items WHERE type='shirt'`); err != nil {
		t.Fatal(err)
	}
	if pos != 0 {
		t.Fatalf("want shirt still at position 0 after rollback, got %d", pos)
	}
}
