package usecase

import (
	"strings"

	"github.com/fekuna/omnipos-storefinder-service/internal/product/dto"
)

// ParseImportCSV splits newline separated "productName,sectionName" records.
// Columns past the second are ignored. Lines with fewer than two non-blank
// fields are dropped without error.
func ParseImportCSV(text string) []dto.ImportRow {
	lines := strings.Split(text, "\n")
	rows := make([]dto.ImportRow, 0, len(lines))

	for i, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}

		productName := strings.TrimSpace(parts[0])
		sectionName := strings.TrimSpace(parts[1])
		if productName == "" || sectionName == "" {
			continue
		}

		rows = append(rows, dto.ImportRow{
			Line:        i + 1,
			ProductName: productName,
			SectionName: sectionName,
		})
	}
	return rows
}
