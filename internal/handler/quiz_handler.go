package handler

import (
	"careerpath/internal/dto"
	"careerpath/internal/logger"
	"careerpath/internal/middleware"
	"careerpath/internal/service"
	"careerpath/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService           service.QuizService
	recommendationService service.RecommendationService
	validator             *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService, recommendationService service.RecommendationService) *QuizHandler {
	return &QuizHandler{
		quizService:           quizService,
		recommendationService: recommendationService,
		validator:             validation.NewValidator(),
	}
}

// CreateSession godoc
// @Summary Start a new quiz session
// @Description Provisions a quiz session with a fixed question order for the authenticated user
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.SessionResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) CreateSession(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	session, err := h.quizService.CreateSession(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession godoc
// @Summary Get a quiz session
// @Description Returns the session questions without correct answers
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	session, err := h.quizService.GetSession(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Scores all submitted answers, completes the session and returns the skill breakdown with ranked career matches
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitQuizRequest true "Quiz submission"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse quiz submission", zap.Error(err), zap.String("sessionID", sessionID))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateSubmitQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.quizService.SubmitQuiz(c.Context(), sessionID, req.ToDomainAnswers())
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GenerateRecommendations godoc
// @Summary Generate career recommendations
// @Description Derives and persists career recommendations for a completed session
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/recommendations [post]
func (h *QuizHandler) GenerateRecommendations(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	recommendations, err := h.recommendationService.GenerateRecommendations(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(recommendations)
}
