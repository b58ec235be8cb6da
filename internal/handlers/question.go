package handlers

import (
	"fmt"
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, categoryService: categoryService}
}

type CreateQuestionRequest struct {
	Question   string      `json:"question" example:"What is the heaviest organ in the human body?"`
	Answer     string      `json:"answer" example:"The Liver"`
	Category   *FlexibleID `json:"category" swaggertype:"integer" example:"1"`
	Difficulty *int        `json:"difficulty" example:"4"`
}

type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" example:"title"`
}

type QuestionListResponse struct {
	Success         bool              `json:"success" example:"true"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int64             `json:"totalQuestions" example:"19"`
	Categories      map[int]string    `json:"categories"`
	CurrentCategory []int             `json:"currentCategory"`
}

type SearchResponse struct {
	Success         bool              `json:"success" example:"true"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int64             `json:"totalQuestions" example:"2"`
	CurrentCategory []int             `json:"currentCategory"`
}

type QuestionResponse struct {
	Success  bool             `json:"success" example:"true"`
	Question *models.Question `json:"question"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  One page of questions ordered by id, with every category. A page past the end is not found.
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} QuestionListResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	result, err := h.questionService.List(ctx, page)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if result.Empty() {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      models.CategoryMap(categories),
		CurrentCategory: result.CategoryIDs(),
	})
}

// GetQuestion godoc
// @Summary      Get a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} QuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "id")
	if !ok {
		return
	}

	question, err := h.questionService.Get(c.Request.Context(), questionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionResponse{Success: true, Question: question})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Description  The category must exist and difficulty must be within 1..5.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreatedResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if !bindBody(c, &req) {
		return
	}

	input := services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
	}
	if req.Category != nil {
		category := int(*req.Category)
		input.Category = &category
	}

	question, err := h.questionService.Create(c.Request.Context(), input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{Success: true, Created: question.ID})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeletedResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), questionID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeletedResponse{Success: true, Deleted: questionID})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text. An empty page is not found.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        page    query int           false "Page number (1-based)"
// @Param        request body  SearchRequest true  "Search term"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	var req SearchRequest
	if !bindBody(c, &req) {
		return
	}
	if req.SearchTerm == nil {
		abortWithError(c, fmt.Errorf("%w: searchTerm required", services.ErrInvalidInput))
		return
	}

	result, err := h.questionService.Search(c.Request.Context(), *req.SearchTerm, page)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if result.Empty() {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: result.CategoryIDs(),
	})
}
