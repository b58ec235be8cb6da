package handlers

import (
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, questionService: questionService}
}

type CreateCategoryRequest struct {
	Type string `json:"type" example:"Science"`
}

type CategoriesResponse struct {
	Success    bool           `json:"success" example:"true"`
	Categories map[int]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool              `json:"success" example:"true"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int64             `json:"totalQuestions" example:"3"`
	CurrentCategory int               `json:"currentCategory" example:"1"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  All categories keyed by id. An empty store is reported as not found.
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	if len(categories) == 0 {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: models.CategoryMap(categories),
	})
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      200 {object} CreatedResponse
// @Failure      422 {object} ErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if !bindBody(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Type)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{Success: true, Created: category.ID})
}

// ListCategoryQuestions godoc
// @Summary      List questions in a category
// @Description  Unknown categories yield an empty list, not an error.
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Category ID"
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, ok := idParam(c, "id")
	if !ok {
		return
	}
	page, ok := pageParam(c)
	if !ok {
		return
	}

	result, err := h.questionService.ByCategory(c.Request.Context(), categoryID, page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: categoryID,
	})
}
