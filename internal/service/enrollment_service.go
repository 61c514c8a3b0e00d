package service

import (
	"carelog/health-info-app/internal/domain"
	"carelog/health-info-app/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Service Interface ---

// EnrollmentService is the integrity core: it guards the references an
// enrollment holds and the at-most-one-enrollment-per-pair rule, and
// builds the joined read projections.
type EnrollmentService interface {
	Enroll(ctx context.Context, clientID, programID primitive.ObjectID, notes string) (*domain.Enrollment, error)
	List(ctx context.Context) ([]domain.EnrichedEnrollment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.EnrichedEnrollment, error)
	ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.EnrichedEnrollment, error)
	Update(ctx context.Context, id primitive.ObjectID, input UpdateEnrollmentInput) (*domain.Enrollment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UpdateEnrollmentInput carries the only two mutable enrollment fields.
type UpdateEnrollmentInput struct {
	Status domain.EnrollmentStatus
	Notes  string
}

// --- Service Implementation ---

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	clientRepo     repository.ClientRepository
	programRepo    repository.ProgramRepository
}

// NewEnrollmentService creates a new instance of enrollmentService.
func NewEnrollmentService(
	enrollmentRepo repository.EnrollmentRepository,
	clientRepo repository.ClientRepository,
	programRepo repository.ProgramRepository,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		clientRepo:     clientRepo,
		programRepo:    programRepo,
	}
}

// Enroll links a client to a program. The check order is part of the
// contract: a missing client is reported before a missing program, and
// both before the duplicate-pair error. The duplicate pre-check is a
// courtesy; the compound unique index decides the race, and a
// duplicate-key failure on insert maps to the same error.
func (s *enrollmentService) Enroll(ctx context.Context, clientID, programID primitive.ObjectID, notes string) (*domain.Enrollment, error) {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if _, err := s.programRepo.GetByID(ctx, programID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	_, err := s.enrollmentRepo.FindByClientAndProgram(ctx, clientID, programID)
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	enrollment := &domain.Enrollment{
		ClientID:       clientID,
		ProgramID:      programID,
		EnrollmentDate: time.Now().UTC(),
		Status:         domain.EnrollmentActive,
		Notes:          notes,
	}

	if _, err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

// List returns every enrollment joined with the referenced client's
// name and the referenced program's name. References to deleted records
// come back nil rather than failing the whole listing.
func (s *enrollmentService) List(ctx context.Context) ([]domain.EnrichedEnrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	clientIDs := make([]primitive.ObjectID, 0, len(enrollments))
	programIDs := make([]primitive.ObjectID, 0, len(enrollments))
	seenClients := make(map[primitive.ObjectID]bool)
	seenPrograms := make(map[primitive.ObjectID]bool)
	for _, e := range enrollments {
		if !seenClients[e.ClientID] {
			seenClients[e.ClientID] = true
			clientIDs = append(clientIDs, e.ClientID)
		}
		if !seenPrograms[e.ProgramID] {
			seenPrograms[e.ProgramID] = true
			programIDs = append(programIDs, e.ProgramID)
		}
	}

	clients, err := s.clientRepo.GetByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	programs, err := s.programRepo.GetByIDs(ctx, programIDs)
	if err != nil {
		return nil, err
	}

	clientsByID := make(map[primitive.ObjectID]domain.Client, len(clients))
	for _, c := range clients {
		clientsByID[c.ID] = c
	}
	programsByID := make(map[primitive.ObjectID]domain.Program, len(programs))
	for _, p := range programs {
		programsByID[p.ID] = p
	}

	enriched := make([]domain.EnrichedEnrollment, 0, len(enrollments))
	for _, e := range enrollments {
		item := domain.EnrichedEnrollment{Enrollment: e}
		if c, ok := clientsByID[e.ClientID]; ok {
			item.Client = &domain.ClientRef{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName}
		}
		if p, ok := programsByID[e.ProgramID]; ok {
			item.Program = &domain.ProgramRef{ID: p.ID, Name: p.Name}
		}
		enriched = append(enriched, item)
	}
	return enriched, nil
}

// GetByID retrieves a single enrollment with the same join as List.
func (s *enrollmentService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.EnrichedEnrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	enriched := &domain.EnrichedEnrollment{Enrollment: *enrollment}

	client, err := s.clientRepo.GetByID(ctx, enrollment.ClientID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if client != nil {
		enriched.Client = &domain.ClientRef{ID: client.ID, FirstName: client.FirstName, LastName: client.LastName}
	}

	program, err := s.programRepo.GetByID(ctx, enrollment.ProgramID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if program != nil {
		enriched.Program = &domain.ProgramRef{ID: program.ID, Name: program.Name}
	}

	return enriched, nil
}

// ListByClient returns the enrollments for one client, joined with the
// referenced program's name, description and category. An unknown
// client id yields an empty slice, not an error.
func (s *enrollmentService) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.EnrichedEnrollment, error) {
	enrollments, err := s.enrollmentRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	programIDs := make([]primitive.ObjectID, 0, len(enrollments))
	seen := make(map[primitive.ObjectID]bool)
	for _, e := range enrollments {
		if !seen[e.ProgramID] {
			seen[e.ProgramID] = true
			programIDs = append(programIDs, e.ProgramID)
		}
	}

	programs, err := s.programRepo.GetByIDs(ctx, programIDs)
	if err != nil {
		return nil, err
	}
	programsByID := make(map[primitive.ObjectID]domain.Program, len(programs))
	for _, p := range programs {
		programsByID[p.ID] = p
	}

	enriched := make([]domain.EnrichedEnrollment, 0, len(enrollments))
	for _, e := range enrollments {
		item := domain.EnrichedEnrollment{Enrollment: e}
		if p, ok := programsByID[e.ProgramID]; ok {
			item.Program = &domain.ProgramRef{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Category:    p.Category,
			}
		}
		enriched = append(enriched, item)
	}
	return enriched, nil
}

// Update mutates status and notes only; everything else on an
// enrollment is immutable after creation. Any status-to-status change
// is allowed.
func (s *enrollmentService) Update(ctx context.Context, id primitive.ObjectID, input UpdateEnrollmentInput) (*domain.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, ValidationError("Status must be Active, Completed or Suspended")
		}
		enrollment.Status = input.Status
	}
	if input.Notes != "" {
		enrollment.Notes = input.Notes
	}

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

// Delete removes an enrollment. The client and program stay.
func (s *enrollmentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.enrollmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEnrollmentNotFound
		}
		return err
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEnrollmentNotFound
		}
		return err
	}
	return nil
}
