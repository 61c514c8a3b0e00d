package api

import (
	"carelog/health-info-app/internal/domain"
	"carelog/health-info-app/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramHandler holds the program service dependency.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- DTOs ---

// CreateProgramRequest defines the expected JSON for creating a
// program. StartDate defaults to now and active to true when omitted.
type CreateProgramRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Active      *bool      `json:"active"`
}

// UpdateProgramRequest is a partial update. Active is a pointer on
// purpose: it applies whenever present, including an explicit false,
// while the other fields only apply when non-empty.
type UpdateProgramRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Active      *bool      `json:"active"`
}

// ProgramResponse is the DTO for returning program details.
type ProgramResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// MapProgramToResponse converts a domain.Program to its response DTO.
func MapProgramToResponse(program *domain.Program) ProgramResponse {
	if program == nil {
		return ProgramResponse{}
	}
	return ProgramResponse{
		ID:          program.ID.Hex(),
		Name:        program.Name,
		Description: program.Description,
		Category:    program.Category,
		StartDate:   program.StartDate,
		EndDate:     program.EndDate,
		Active:      program.Active,
		CreatedAt:   program.CreatedAt,
		UpdatedAt:   program.UpdatedAt,
	}
}

// MapProgramsToResponse converts a slice of programs.
func MapProgramsToResponse(programs []domain.Program) []ProgramResponse {
	responses := make([]ProgramResponse, len(programs))
	for i := range programs {
		responses[i] = MapProgramToResponse(&programs[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateProgram handles POST /api/programs. A duplicate name comes back
// as 400, same as any other validation failure.
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	program, err := h.programService.Create(c.Request.Context(), service.CreateProgramInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Active:      req.Active,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapProgramToResponse(program))
}

// GetPrograms handles GET /api/programs.
func (h *ProgramHandler) GetPrograms(c *gin.Context) {
	programs, err := h.programService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramsToResponse(programs))
}

// GetProgramByID handles GET /api/programs/:id.
func (h *ProgramHandler) GetProgramByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrProgramNotFound.Error())
		return
	}

	program, err := h.programService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramToResponse(program))
}

// UpdateProgram handles PUT /api/programs/:id.
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrProgramNotFound.Error())
		return
	}

	var req UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	program, err := h.programService.Update(c.Request.Context(), id, service.UpdateProgramInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Active:      req.Active,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapProgramToResponse(program))
}

// DeleteProgram handles DELETE /api/programs/:id. Enrollments
// referencing the program are not cascaded.
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrProgramNotFound.Error())
		return
	}

	if err := h.programService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program removed"})
}
