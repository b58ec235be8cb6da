package models

type Category struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Type string `gorm:"column:type;size:255;not null" json:"type"`
}

// CategoryMap keys category types by id, the shape clients render in
// category pickers.
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
