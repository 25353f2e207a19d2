package domain

type Suitcase struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Category struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Color string `db:"color" json:"color"` // display hex, e.g. #4ECDC4
}

type ItemType struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	CategoryID *int64 `db:"category_id" json:"category_id"`
}

// Item is one physical unit. A count of 5 shirts is five rows sharing
// the same type, suitcase_id and position.
type Item struct {
	ID         int64  `db:"id" json:"id"`
	Type       string `db:"type" json:"type"`
	SuitcaseID int64  `db:"suitcase_id" json:"suitcase_id"`
	Position   int    `db:"position" json:"position"`
}

// ItemGroup is the aggregated view of one (type, suitcase) group.
// ID and Position are MIN() over the group; Count is always derived.
type ItemGroup struct {
	ID            int64   `db:"id" json:"id"`
	Type          string  `db:"type" json:"type"`
	SuitcaseID    int64   `db:"suitcase_id" json:"suitcase_id"`
	SuitcaseName  string  `db:"suitcase_name" json:"suitcase_name"`
	Position      int     `db:"position" json:"position"`
	CategoryName  *string `db:"category_name" json:"category_name"`
	CategoryColor *string `db:"category_color" json:"category_color"`
	Count         int     `db:"count" json:"count"`
}

// SuitcaseGroup is the per-suitcase aggregate (no joins).
type SuitcaseGroup struct {
	ID         int64  `db:"id" json:"id"`
	Type       string `db:"type" json:"type"`
	SuitcaseID int64  `db:"suitcase_id" json:"suitcase_id"`
	Position   int    `db:"position" json:"position"`
	Count      int    `db:"count" json:"count"`
}

// SearchGroup is the search result shape (no position/category columns).
type SearchGroup struct {
	ID           int64  `db:"id" json:"id"`
	Type         string `db:"type" json:"type"`
	SuitcaseID   int64  `db:"suitcase_id" json:"suitcase_id"`
	SuitcaseName string `db:"suitcase_name" json:"suitcase_name"`
	Count        int    `db:"count" json:"count"`
}

// SummaryRow is the global rollup by (type, category, suitcase).
type SummaryRow struct {
	Type          string  `db:"type" json:"type"`
	CategoryName  *string `db:"category_name" json:"category_name"`
	CategoryColor *string `db:"category_color" json:"category_color"`
	SuitcaseName  string  `db:"suitcase_name" json:"suitcase_name"`
	Count         int     `db:"count" json:"count"`
}

// TypeWithCategory is the item-types listing with its joined category.
type TypeWithCategory struct {
	ID            int64   `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	CategoryID    *int64  `db:"category_id" json:"category_id"`
	CategoryName  *string `db:"category_name" json:"category_name"`
	CategoryColor *string `db:"category_color" json:"category_color"`
}

// PositionUpdate is one tuple of a reorder batch.
type PositionUpdate struct {
	Type       string `json:"type"`
	SuitcaseID int64  `json:"suitcase_id"`
	Position   int    `json:"position"`
}

// ExportPayload is the full-dataset dump. Legacy payloads carry only
// suitcases and items; versioned "2.0" payloads carry all four tables.
// ExportID tags a dump for downstream tooling and is ignored on import.
type ExportPayload struct {
	Version    string     `json:"version,omitempty"`
	ExportID   string     `json:"export_id,omitempty"`
	ExportDate string     `json:"exportDate,omitempty"`
	Suitcases  []Suitcase `json:"suitcases"`
	Items      []Item     `json:"items"`
	Categories []Category `json:"categories"`
	ItemTypes  []ItemType `json:"item_types"`
}
