package model

// InvalidID is returned in place of a row id when an insert fails.
const InvalidID int64 = -1

// StoreMap is a named store floor plan backed by an image file.
type StoreMap struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	ImagePath string `db:"image_path" json:"image_path"`
}
