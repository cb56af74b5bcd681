package dto

import (
	"github.com/fekuna/omnipos-storefinder-service/internal/mapview"
	"github.com/fekuna/omnipos-storefinder-service/internal/model"
)

type ShoppingList struct {
	Found    []model.Product      `json:"found"`
	Missing  []string             `json:"missing"` // lines with no matching product on this map
	Sections []mapview.Annotation `json:"sections"`
}
