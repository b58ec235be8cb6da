package handlers

import (
	"fmt"
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type QuizCategory struct {
	ID   FlexibleID `json:"id" swaggertype:"integer" example:"0"`
	Type string     `json:"type,omitempty" example:"click"`
}

type QuizRequest struct {
	PreviousQuestions *[]int        `json:"previous_questions" example:"1,2"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// QuizResponse carries the next question, or a null question with
// Exhausted set once every candidate has been played.
type QuizResponse struct {
	Success   bool             `json:"success" example:"true"`
	Question  *models.Question `json:"question"`
	Exhausted bool             `json:"exhausted,omitempty" example:"false"`
}

// NextQuizQuestion godoc
// @Summary      Draw a quiz question
// @Description  Random question from quiz_category (id 0 means all) not listed in previous_questions.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuizQuestion(c *gin.Context) {
	var req QuizRequest
	if !bindBody(c, &req) {
		return
	}
	if req.PreviousQuestions == nil && req.QuizCategory == nil {
		abortWithError(c, fmt.Errorf("%w: previous_questions or quiz_category required", services.ErrInvalidInput))
		return
	}

	quiz := services.QuizRequest{CategoryID: services.AllCategories}
	if req.PreviousQuestions != nil {
		quiz.PreviousQuestions = *req.PreviousQuestions
	}
	if req.QuizCategory != nil {
		quiz.CategoryID = int(req.QuizCategory.ID)
	}

	draw, err := h.quizService.Next(c.Request.Context(), quiz)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuizResponse{
		Success:   true,
		Question:  draw.Question,
		Exhausted: draw.Exhausted,
	})
}
