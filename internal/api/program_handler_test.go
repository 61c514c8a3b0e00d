package api

import (
	"carelog/health-info-app/internal/domain"
	"carelog/health-info-app/internal/service"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleProgram() *domain.Program {
	return &domain.Program{
		ID:          primitive.NewObjectID(),
		Name:        "Wellness Workshop",
		Description: "A 6-week program focusing on overall wellness and healthy habits",
		Category:    "Wellness",
		StartDate:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Active:      true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func TestCreateProgramCreated(t *testing.T) {
	programs := new(mockProgramService)
	router := newTestRouter(new(mockClientService), programs, new(mockEnrollmentService))

	program := sampleProgram()
	programs.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateProgramInput) bool {
		return in.Name == program.Name && in.Active == nil
	})).Return(program, nil)

	payload := `{
		"name": "Wellness Workshop",
		"description": "A 6-week program focusing on overall wellness and healthy habits",
		"category": "Wellness"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/programs", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ProgramResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, program.ID.Hex(), resp.ID)
	assert.True(t, resp.Active)
	programs.AssertExpectations(t)
}

func TestCreateProgramDuplicateName(t *testing.T) {
	programs := new(mockProgramService)
	router := newTestRouter(new(mockClientService), programs, new(mockEnrollmentService))

	programs.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrProgramNameTaken)

	req := httptest.NewRequest(http.MethodPost, "/api/programs",
		strings.NewReader(`{"name":"Wellness Workshop","description":"d","category":"c"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "A program with this name already exists", decodeMessage(t, rec))
}

func TestUpdateProgramActiveFalseForwarded(t *testing.T) {
	// An explicit false must survive the trip to the service; it is
	// not squashed by the truthiness merge.
	programs := new(mockProgramService)
	router := newTestRouter(new(mockClientService), programs, new(mockEnrollmentService))

	program := sampleProgram()
	program.Active = false
	programs.On("Update", mock.Anything, program.ID, mock.MatchedBy(func(in service.UpdateProgramInput) bool {
		return in.Active != nil && !*in.Active && in.Name == ""
	})).Return(program, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/programs/"+program.ID.Hex(),
		strings.NewReader(`{"active":false}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProgramResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Active)
	programs.AssertExpectations(t)
}

func TestGetProgramByIDNotFound(t *testing.T) {
	programs := new(mockProgramService)
	router := newTestRouter(new(mockClientService), programs, new(mockEnrollmentService))

	id, _ := primitive.ObjectIDFromHex(missingIDHex)
	programs.On("GetByID", mock.Anything, id).Return(nil, service.ErrProgramNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/programs/"+missingIDHex, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Program not found", decodeMessage(t, rec))
}

func TestDeleteProgramRemoved(t *testing.T) {
	programs := new(mockProgramService)
	router := newTestRouter(new(mockClientService), programs, new(mockEnrollmentService))

	id := primitive.NewObjectID()
	programs.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/programs/"+id.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Program removed", decodeMessage(t, rec))
}
