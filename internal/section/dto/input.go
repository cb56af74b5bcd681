package dto

type CreateSectionInput struct {
	MapID int64
	Name  string
	X     float64
	Y     float64
}
