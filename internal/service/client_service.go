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

type ClientService interface {
	Register(ctx context.Context, input RegisterClientInput) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	Update(ctx context.Context, id primitive.ObjectID, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Search(ctx context.Context, query string) ([]domain.Client, error)
}

// RegisterClientInput carries the fields accepted at registration.
type RegisterClientInput struct {
	FirstName      string
	LastName       string
	Gender         domain.Gender
	DateOfBirth    time.Time
	PhoneNumber    string
	Address        *domain.Address
	MedicalHistory string
}

// UpdateClientInput carries a partial update. Zero values mean "leave
// the stored field alone"; a field cannot be cleared back to empty.
type UpdateClientInput struct {
	FirstName      string
	LastName       string
	Gender         domain.Gender
	DateOfBirth    time.Time
	PhoneNumber    string
	Address        *domain.Address
	MedicalHistory string
}

// --- Service Implementation ---

type clientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new instance of clientService.
func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

// Register validates the required fields and persists a new client.
func (s *clientService) Register(ctx context.Context, input RegisterClientInput) (*domain.Client, error) {
	if input.FirstName == "" {
		return nil, ValidationError("First name is required")
	}
	if input.LastName == "" {
		return nil, ValidationError("Last name is required")
	}
	if input.Gender == "" {
		return nil, ValidationError("Gender is required")
	}
	if !input.Gender.IsValid() {
		return nil, ValidationError("Gender must be Male, Female or Other")
	}
	if input.DateOfBirth.IsZero() {
		return nil, ValidationError("Date of birth is required")
	}
	if input.PhoneNumber == "" {
		return nil, ValidationError("Phone number is required")
	}

	client := &domain.Client{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Gender:         input.Gender,
		DateOfBirth:    input.DateOfBirth,
		PhoneNumber:    input.PhoneNumber,
		Address:        input.Address,
		MedicalHistory: input.MedicalHistory,
	}

	if _, err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List returns all clients in store order.
func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.GetAll(ctx)
}

// GetByID retrieves a single client.
func (s *clientService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// Update merges the supplied fields into the stored client. Only
// fields with a non-zero value overwrite; omitted fields keep their
// stored value, so an update cannot clear a field.
func (s *clientService) Update(ctx context.Context, id primitive.ObjectID, input UpdateClientInput) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if input.FirstName != "" {
		client.FirstName = input.FirstName
	}
	if input.LastName != "" {
		client.LastName = input.LastName
	}
	if input.Gender != "" {
		if !input.Gender.IsValid() {
			return nil, ValidationError("Gender must be Male, Female or Other")
		}
		client.Gender = input.Gender
	}
	if !input.DateOfBirth.IsZero() {
		client.DateOfBirth = input.DateOfBirth
	}
	if input.PhoneNumber != "" {
		client.PhoneNumber = input.PhoneNumber
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	if input.MedicalHistory != "" {
		client.MedicalHistory = input.MedicalHistory
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// Delete removes a client. Enrollments referencing the client are left
// in place; the ledger's read projections tolerate the dangling
// reference.
func (s *clientService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

// Search runs the free-text match against name and phone number. An
// empty query falls back to listing everything.
func (s *clientService) Search(ctx context.Context, query string) ([]domain.Client, error) {
	if query == "" {
		return s.clientRepo.GetAll(ctx)
	}
	return s.clientRepo.Search(ctx, query)
}
