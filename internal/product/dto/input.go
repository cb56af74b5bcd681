package dto

type CreateProductInput struct {
	Name      string
	SectionID int64
}
