package services

import (
	"context"
	"math/rand"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

// AllCategories selects quiz candidates from every category.
const AllCategories = 0

type QuizService struct {
	db   *gorm.DB
	pick func(n int) int
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db, pick: rand.Intn}
}

type QuizRequest struct {
	PreviousQuestions []int
	CategoryID        int
}

// Draw is the outcome of a quiz round: either a question, or Exhausted when
// every candidate has already been seen.
type Draw struct {
	Question  *models.Question
	Exhausted bool
}

// Next picks a random question from the requested category (or all, for
// AllCategories) whose id is not in PreviousQuestions.
func (s *QuizService) Next(ctx context.Context, req QuizRequest) (Draw, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{})
	if req.CategoryID != AllCategories {
		query = query.Where("category = ?", req.CategoryID)
	}
	// NOT IN with an empty list matches nothing.
	if len(req.PreviousQuestions) > 0 {
		query = query.Where("id NOT IN ?", req.PreviousQuestions)
	}

	var candidates []models.Question
	if err := query.Order("id ASC").Find(&candidates).Error; err != nil {
		return Draw{}, err
	}
	if len(candidates) == 0 {
		return Draw{Exhausted: true}, nil
	}

	question := candidates[s.pick(len(candidates))]
	return Draw{Question: &question}, nil
}
