package repository

import (
	"carelog/health-info-app/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ClientRepository defines the interface for interacting with client data.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	// GetByIDs returns the clients whose ids are in the given set.
	// Ids with no matching record are simply absent from the result.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Client, error)
	GetAll(ctx context.Context) ([]domain.Client, error)
	// Search runs a text-index match against firstName, lastName and
	// phoneNumber. Matching semantics are the store's.
	Search(ctx context.Context, query string) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProgramRepository defines the interface for interacting with program data.
type ProgramRepository interface {
	// Create returns ErrDuplicate when the program name collides with
	// the unique index.
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Program, error)
	GetAll(ctx context.Context) ([]domain.Program, error)
	Update(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EnrollmentRepository defines the interface for interacting with
// enrollment data.
type EnrollmentRepository interface {
	// Create returns ErrDuplicate when the (client, program) pair
	// collides with the compound unique index. The index is the
	// authoritative uniqueness enforcement; callers pre-check only to
	// produce a friendlier error ahead of the race window.
	Create(ctx context.Context, enrollment *domain.Enrollment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Enrollment, error)
	GetAll(ctx context.Context) ([]domain.Enrollment, error)
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.Enrollment, error)
	FindByClientAndProgram(ctx context.Context, clientID, programID primitive.ObjectID) (*domain.Enrollment, error)
	Update(ctx context.Context, enrollment *domain.Enrollment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
