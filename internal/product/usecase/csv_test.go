package usecase

import (
	"testing"

	"github.com/fekuna/omnipos-storefinder-service/internal/product/dto"
	"github.com/stretchr/testify/assert"
)

func TestParseImportCSV(t *testing.T) {
	text := "Apple,Fruits\r\n" +
		"  Banana , Fruits ,aisle 3\n" +
		"\n" +
		"no comma here\n" +
		",Fruits\n" +
		"Orange,\n" +
		"Milk,Dairy"

	rows := ParseImportCSV(text)

	assert.Equal(t, []dto.ImportRow{
		{Line: 1, ProductName: "Apple", SectionName: "Fruits"},
		{Line: 2, ProductName: "Banana", SectionName: "Fruits"},
		{Line: 7, ProductName: "Milk", SectionName: "Dairy"},
	}, rows)
}

func TestParseImportCSVEmpty(t *testing.T) {
	assert.Empty(t, ParseImportCSV(""))
	assert.Empty(t, ParseImportCSV("\n\n"))
}
