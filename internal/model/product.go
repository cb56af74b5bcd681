package model

type Product struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	SectionID int64  `db:"section_id" json:"section_id"` // Soft reference to sections.id
}
