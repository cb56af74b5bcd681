package model

// Section is a labeled point on a map image, in image pixel coordinates.
type Section struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	X     float64 `db:"x" json:"x"`
	Y     float64 `db:"y" json:"y"`
	MapID int64   `db:"map_id" json:"map_id"`
}
