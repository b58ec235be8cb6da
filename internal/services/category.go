package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns every category ordered by id.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, categoryType string) (*models.Category, error) {
	categoryType = strings.TrimSpace(categoryType)
	if categoryType == "" {
		return nil, fmt.Errorf("%w: category type required", ErrInvalidInput)
	}

	category := models.Category{Type: categoryType}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return &category, nil
}

func (s *CategoryService) Exists(ctx context.Context, id int) (bool, error) {
	return categoryExists(s.db.WithContext(ctx), id)
}

func categoryExists(db *gorm.DB, id int) (bool, error) {
	var count int64
	if err := db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// findOrCreateCategory returns the id of the category with the given type,
// creating it when absent.
func findOrCreateCategory(tx *gorm.DB, categoryType string) (int, error) {
	var category models.Category
	err := tx.Where("type = ?", categoryType).Order("id ASC").First(&category).Error
	if err == nil {
		return category.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	category = models.Category{Type: categoryType}
	if err := tx.Create(&category).Error; err != nil {
		return 0, err
	}
	return category.ID, nil
}
