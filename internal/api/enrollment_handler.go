package api

import (
	"carelog/health-info-app/internal/domain"
	"carelog/health-info-app/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentHandler holds the enrollment service dependency.
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// --- DTOs ---

// EnrollClientRequest defines the expected JSON for enrolling a client
// in a program.
type EnrollClientRequest struct {
	ClientID  string `json:"clientId"`
	ProgramID string `json:"programId"`
	Notes     string `json:"notes"`
}

// UpdateEnrollmentRequest carries the only two mutable fields.
type UpdateEnrollmentRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// ClientRefResponse is the joined client projection on an enrollment.
type ClientRefResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ProgramRefResponse is the joined program projection on an enrollment.
type ProgramRefResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// EnrollmentResponse is the DTO for returning enrollment details. The
// Client and Program objects are read-time joins; either is omitted
// when the referenced record has been deleted.
type EnrollmentResponse struct {
	ID             string              `json:"id"`
	ClientID       string              `json:"clientId"`
	ProgramID      string              `json:"programId"`
	EnrollmentDate time.Time           `json:"enrollmentDate"`
	Status         string              `json:"status"`
	Notes          string              `json:"notes,omitempty"`
	Client         *ClientRefResponse  `json:"client,omitempty"`
	Program        *ProgramRefResponse `json:"program,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// MapEnrollmentToResponse converts a bare domain.Enrollment.
func MapEnrollmentToResponse(enrollment *domain.Enrollment) EnrollmentResponse {
	if enrollment == nil {
		return EnrollmentResponse{}
	}
	return EnrollmentResponse{
		ID:             enrollment.ID.Hex(),
		ClientID:       enrollment.ClientID.Hex(),
		ProgramID:      enrollment.ProgramID.Hex(),
		EnrollmentDate: enrollment.EnrollmentDate,
		Status:         string(enrollment.Status),
		Notes:          enrollment.Notes,
		CreatedAt:      enrollment.CreatedAt,
		UpdatedAt:      enrollment.UpdatedAt,
	}
}

// MapEnrichedEnrollmentToResponse converts an enrollment with its
// joined client and program projections.
func MapEnrichedEnrollmentToResponse(enriched *domain.EnrichedEnrollment) EnrollmentResponse {
	if enriched == nil {
		return EnrollmentResponse{}
	}
	resp := MapEnrollmentToResponse(&enriched.Enrollment)
	if enriched.Client != nil {
		resp.Client = &ClientRefResponse{
			ID:        enriched.Client.ID.Hex(),
			FirstName: enriched.Client.FirstName,
			LastName:  enriched.Client.LastName,
		}
	}
	if enriched.Program != nil {
		resp.Program = &ProgramRefResponse{
			ID:          enriched.Program.ID.Hex(),
			Name:        enriched.Program.Name,
			Description: enriched.Program.Description,
			Category:    enriched.Program.Category,
		}
	}
	return resp
}

// MapEnrichedEnrollmentsToResponse converts a slice of joined
// enrollments.
func MapEnrichedEnrollmentsToResponse(enriched []domain.EnrichedEnrollment) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, len(enriched))
	for i := range enriched {
		responses[i] = MapEnrichedEnrollmentToResponse(&enriched[i])
	}
	return responses
}

// --- Handler Methods ---

// EnrollClient handles POST /api/enrollments. Error precedence follows
// the ledger contract: missing client (404) before missing program
// (404) before duplicate pair (400). A missing or malformed id in the
// body behaves like an absent record.
func (h *EnrollmentHandler) EnrollClient(c *gin.Context) {
	var req EnrollClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	clientID, err := primitive.ObjectIDFromHex(req.ClientID)
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrClientNotFound.Error())
		return
	}
	programID, err := primitive.ObjectIDFromHex(req.ProgramID)
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrProgramNotFound.Error())
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), clientID, programID, req.Notes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapEnrollmentToResponse(enrollment))
}

// GetEnrollments handles GET /api/enrollments.
func (h *EnrollmentHandler) GetEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapEnrichedEnrollmentsToResponse(enrollments))
}

// GetEnrollmentByID handles GET /api/enrollments/:id.
func (h *EnrollmentHandler) GetEnrollmentByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrEnrollmentNotFound.Error())
		return
	}

	enrollment, err := h.enrollmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapEnrichedEnrollmentToResponse(enrollment))
}

// GetClientEnrollments handles GET /api/enrollments/client/:clientId.
// An unknown client yields an empty array, not a 404.
func (h *EnrollmentHandler) GetClientEnrollments(c *gin.Context) {
	clientID, err := primitive.ObjectIDFromHex(c.Param("clientId"))
	if err != nil {
		c.JSON(http.StatusOK, []EnrollmentResponse{})
		return
	}

	enrollments, err := h.enrollmentService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapEnrichedEnrollmentsToResponse(enrollments))
}

// UpdateEnrollment handles PUT /api/enrollments/:id.
func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrEnrollmentNotFound.Error())
		return
	}

	var req UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	enrollment, err := h.enrollmentService.Update(c.Request.Context(), id, service.UpdateEnrollmentInput{
		Status: domain.EnrollmentStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapEnrollmentToResponse(enrollment))
}

// DeleteEnrollment handles DELETE /api/enrollments/:id.
func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrEnrollmentNotFound.Error())
		return
	}

	if err := h.enrollmentService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enrollment removed"})
}
