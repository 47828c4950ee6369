package handler

import (
	"careerpath/internal/domain"
	"careerpath/internal/dto"
	"careerpath/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CareerHandler handles career-catalog HTTP requests
type CareerHandler struct {
	careerService service.CareerService
}

// NewCareerHandler creates a new CareerHandler instance
func NewCareerHandler(careerService service.CareerService) *CareerHandler {
	return &CareerHandler{careerService: careerService}
}

// GetAllCareers godoc
// @Summary List the career catalog
// @Description Returns every career with its required skills
// @Tags careers
// @Produce json
// @Success 200 {array} dto.CareerResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /careers [get]
func (h *CareerHandler) GetAllCareers(c *fiber.Ctx) error {
	careers, err := h.careerService.GetAllCareers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.CareersToResponse(careers))
}

// GetCareerByID godoc
// @Summary Get a career
// @Description Returns a single career by id
// @Tags careers
// @Produce json
// @Param id path string true "Career ID"
// @Success 200 {object} dto.CareerResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /careers/{id} [get]
func (h *CareerHandler) GetCareerByID(c *fiber.Ctx) error {
	career, err := h.careerService.GetCareerByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	resp := dto.CareersToResponse([]domain.Career{*career})
	return c.JSON(resp[0])
}
