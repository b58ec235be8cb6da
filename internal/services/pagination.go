package services

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

const QuestionsPerPage = 10

// Page is a validated 1-indexed page number.
type Page int

// ParsePage reads a page query value. Empty means the first page.
func ParsePage(raw string) (Page, error) {
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPage, raw)
	}
	return Page(n), nil
}

func (p Page) Offset() int {
	return (int(p) - 1) * QuestionsPerPage
}

// Scope restricts a query to the rows of this page. Pages past the end
// select nothing.
func (p Page) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(QuestionsPerPage)
}
