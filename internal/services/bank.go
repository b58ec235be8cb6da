package services

import (
	"context"
	"fmt"
	"strings"

	"trivia-api/internal/bank"
	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type BankService struct {
	db *gorm.DB
}

func NewBankService(db *gorm.DB) *BankService {
	return &BankService{db: db}
}

// Import inserts every question of b in one transaction, creating
// categories by type where none exists yet. It returns the number of
// questions inserted.
func (s *BankService) Import(ctx context.Context, b bank.Bank) (int, error) {
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	count := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range b.Categories {
			categoryID, err := findOrCreateCategory(tx, strings.TrimSpace(c.Type))
			if err != nil {
				return err
			}
			for _, q := range c.Questions {
				question := models.Question{
					Question:   strings.TrimSpace(q.Question),
					Answer:     strings.TrimSpace(q.Answer),
					Category:   categoryID,
					Difficulty: q.Difficulty,
				}
				if err := tx.Create(&question).Error; err != nil {
					return err
				}
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return count, nil
}

// UncategorizedType groups exported questions whose category row is gone.
const UncategorizedType = "Uncategorized"

// Export returns the whole store as a bank, categories and questions in id
// order. Categories without questions are included; questions whose
// category is missing are grouped under UncategorizedType.
func (s *BankService) Export(ctx context.Context) (bank.Bank, error) {
	db := s.db.WithContext(ctx)

	var categories []models.Category
	if err := db.Order("id ASC").Find(&categories).Error; err != nil {
		return bank.Bank{}, err
	}
	var questions []models.Question
	if err := db.Order("id ASC").Find(&questions).Error; err != nil {
		return bank.Bank{}, err
	}

	var b bank.Bank
	index := make(map[int]int, len(categories))
	for _, c := range categories {
		index[c.ID] = len(b.Categories)
		b.Categories = append(b.Categories, bank.Category{Type: c.Type, Questions: []bank.Question{}})
	}
	for _, q := range questions {
		pos, ok := index[q.Category]
		if !ok {
			pos = len(b.Categories)
			index[q.Category] = pos
			b.Categories = append(b.Categories, bank.Category{Type: UncategorizedType})
		}
		b.Categories[pos].Questions = append(b.Categories[pos].Questions, bank.Question{
			Question:   q.Question,
			Answer:     q.Answer,
			Difficulty: q.Difficulty,
		})
	}
	if b.Categories == nil {
		b.Categories = []bank.Category{}
	}
	return b, nil
}
