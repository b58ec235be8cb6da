package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// QuestionPage is one page of an id-ordered question listing. Total counts
// every matching question, not just the ones on this page.
type QuestionPage struct {
	Questions []models.Question
	Total     int64
}

// CategoryIDs lists the category of each question on the page, in order.
func (p QuestionPage) CategoryIDs() []int {
	ids := make([]int, 0, len(p.Questions))
	for _, q := range p.Questions {
		ids = append(ids, q.Category)
	}
	return ids
}

func (p QuestionPage) Empty() bool {
	return len(p.Questions) == 0
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   *int
	Difficulty *int
}

func (s *QuestionService) List(ctx context.Context, page Page) (QuestionPage, error) {
	return s.paginate(s.db.WithContext(ctx).Model(&models.Question{}), page)
}

// Search matches term as a case-insensitive substring of the question text.
// SQLite folds ASCII letters only.
func (s *QuestionService) Search(ctx context.Context, term string, page Page) (QuestionPage, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{}).
		Where(searchCondition(s.db.Dialector.Name()), "%"+escapeLike(strings.ToLower(term))+"%")
	return s.paginate(query, page)
}

func searchCondition(dialect string) string {
	if dialect == "postgres" {
		return "question ILIKE ? ESCAPE '\\'"
	}
	return "LOWER(question) LIKE ? ESCAPE '\\'"
}

func (s *QuestionService) ByCategory(ctx context.Context, categoryID int, page Page) (QuestionPage, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{}).Where("category = ?", categoryID)
	return s.paginate(query, page)
}

func (s *QuestionService) paginate(query *gorm.DB, page Page) (QuestionPage, error) {
	var result QuestionPage
	if err := query.Session(&gorm.Session{}).Count(&result.Total).Error; err != nil {
		return QuestionPage{}, err
	}
	err := query.Session(&gorm.Session{}).
		Order("id ASC").
		Scopes(page.Scope).
		Find(&result.Questions).Error
	if err != nil {
		return QuestionPage{}, err
	}
	if result.Questions == nil {
		result.Questions = []models.Question{}
	}
	return result, nil
}

func (s *QuestionService) Get(ctx context.Context, id int) (*models.Question, error) {
	var question models.Question
	err := s.db.WithContext(ctx).First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) Create(ctx context.Context, input QuestionInput) (*models.Question, error) {
	question, err := validateQuestion(input)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	exists, err := categoryExists(db, question.Category)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: category %d does not exist", ErrInvalidInput, question.Category)
	}

	if err := db.Create(&question).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return &question, nil
}

func (s *QuestionService) Delete(ctx context.Context, id int) error {
	question, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(question).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func validateQuestion(input QuestionInput) (models.Question, error) {
	question := models.Question{
		Question: strings.TrimSpace(input.Question),
		Answer:   strings.TrimSpace(input.Answer),
	}
	switch {
	case question.Question == "":
		return models.Question{}, fmt.Errorf("%w: question text required", ErrInvalidInput)
	case question.Answer == "":
		return models.Question{}, fmt.Errorf("%w: answer required", ErrInvalidInput)
	case input.Category == nil:
		return models.Question{}, fmt.Errorf("%w: category required", ErrInvalidInput)
	case input.Difficulty == nil:
		return models.Question{}, fmt.Errorf("%w: difficulty required", ErrInvalidInput)
	}
	question.Category = *input.Category
	question.Difficulty = *input.Difficulty
	if err := checkDifficulty(question.Difficulty); err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func checkDifficulty(d int) error {
	if d < models.MinDifficulty || d > models.MaxDifficulty {
		return fmt.Errorf("%w: difficulty %d outside %d..%d",
			ErrInvalidInput, d, models.MinDifficulty, models.MaxDifficulty)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
