package dto

// ImportRow is one usable "productName,sectionName" record of a CSV import.
type ImportRow struct {
	Line        int // 1-based line in the source text
	ProductName string
	SectionName string
}
