package api

import (
	"carelog/health-info-app/internal/domain"
	"carelog/health-info-app/internal/service"
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockClientService is a mock implementation of service.ClientService.
type mockClientService struct {
	mock.Mock
}

func (m *mockClientService) Register(ctx context.Context, input service.RegisterClientInput) (*domain.Client, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *mockClientService) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *mockClientService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *mockClientService) Update(ctx context.Context, id primitive.ObjectID, input service.UpdateClientInput) (*domain.Client, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *mockClientService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockClientService) Search(ctx context.Context, query string) ([]domain.Client, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

// mockProgramService is a mock implementation of service.ProgramService.
type mockProgramService struct {
	mock.Mock
}

func (m *mockProgramService) Create(ctx context.Context, input service.CreateProgramInput) (*domain.Program, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Program), args.Error(1)
}

func (m *mockProgramService) List(ctx context.Context) ([]domain.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Program), args.Error(1)
}

func (m *mockProgramService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Program), args.Error(1)
}

func (m *mockProgramService) Update(ctx context.Context, id primitive.ObjectID, input service.UpdateProgramInput) (*domain.Program, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Program), args.Error(1)
}

func (m *mockProgramService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockEnrollmentService is a mock implementation of
// service.EnrollmentService.
type mockEnrollmentService struct {
	mock.Mock
}

func (m *mockEnrollmentService) Enroll(ctx context.Context, clientID, programID primitive.ObjectID, notes string) (*domain.Enrollment, error) {
	args := m.Called(ctx, clientID, programID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *mockEnrollmentService) List(ctx context.Context) ([]domain.EnrichedEnrollment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrichedEnrollment), args.Error(1)
}

func (m *mockEnrollmentService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.EnrichedEnrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnrichedEnrollment), args.Error(1)
}

func (m *mockEnrollmentService) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.EnrichedEnrollment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrichedEnrollment), args.Error(1)
}

func (m *mockEnrollmentService) Update(ctx context.Context, id primitive.ObjectID, input service.UpdateEnrollmentInput) (*domain.Enrollment, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *mockEnrollmentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newTestRouter builds a gin engine with the full route table over the
// given mocks.
func newTestRouter(clients *mockClientService, programs *mockProgramService, enrollments *mockEnrollmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, clients, programs, enrollments)
	return router
}
