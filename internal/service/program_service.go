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

type ProgramService interface {
	Create(ctx context.Context, input CreateProgramInput) (*domain.Program, error)
	List(ctx context.Context) ([]domain.Program, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	Update(ctx context.Context, id primitive.ObjectID, input UpdateProgramInput) (*domain.Program, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CreateProgramInput carries the fields accepted at program creation.
// StartDate defaults to now and Active to true when not supplied.
type CreateProgramInput struct {
	Name        string
	Description string
	Category    string
	StartDate   time.Time
	EndDate     *time.Time
	Active      *bool
}

// UpdateProgramInput carries a partial update. Strings and dates only
// apply when non-zero; Active applies whenever the field was present in
// the request, regardless of value. That asymmetry is deliberate: it is
// the only way to flip a program back to inactive.
type UpdateProgramInput struct {
	Name        string
	Description string
	Category    string
	StartDate   time.Time
	EndDate     *time.Time
	Active      *bool
}

// --- Service Implementation ---

type programService struct {
	programRepo repository.ProgramRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(programRepo repository.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo}
}

// Create validates the required fields, applies defaults and persists a
// new program. Name uniqueness is enforced by the store's unique index;
// a collision surfaces as a validation error, not a distinct conflict.
func (s *programService) Create(ctx context.Context, input CreateProgramInput) (*domain.Program, error) {
	if input.Name == "" {
		return nil, ValidationError("Program name is required")
	}
	if input.Description == "" {
		return nil, ValidationError("Description is required")
	}
	if input.Category == "" {
		return nil, ValidationError("Category is required")
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	program := &domain.Program{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		StartDate:   startDate,
		EndDate:     input.EndDate,
		Active:      active,
	}

	if _, err := s.programRepo.Create(ctx, program); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProgramNameTaken
		}
		return nil, err
	}
	return program, nil
}

// List returns all programs in store order.
func (s *programService) List(ctx context.Context) ([]domain.Program, error) {
	return s.programRepo.GetAll(ctx)
}

// GetByID retrieves a single program.
func (s *programService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// Update merges the supplied fields into the stored program.
func (s *programService) Update(ctx context.Context, id primitive.ObjectID, input UpdateProgramInput) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		program.Name = input.Name
	}
	if input.Description != "" {
		program.Description = input.Description
	}
	if input.Category != "" {
		program.Category = input.Category
	}
	if !input.StartDate.IsZero() {
		program.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		program.EndDate = input.EndDate
	}
	// Active is applied on presence, not truthiness.
	if input.Active != nil {
		program.Active = *input.Active
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProgramNameTaken
		}
		return nil, err
	}
	return program, nil
}

// Delete removes a program. Enrollments referencing it are left in
// place.
func (s *programService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.programRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}

	if err := s.programRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}
