package service

import (
	"carelog/health-info-app/internal/domain"
	"carelog/health-info-app/internal/repository"
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Map-backed repository fakes. They keep insertion order and mirror the
// store's index behavior: unique program names, unique (client,
// program) enrollment pairs, substring text matching for client search.

type fakeClientRepo struct {
	clients []*domain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{}
}

func (r *fakeClientRepo) Create(_ context.Context, client *domain.Client) (primitive.ObjectID, error) {
	client.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now
	stored := *client
	r.clients = append(r.clients, &stored)
	return client.ID, nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeClientRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Client, error) {
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	result := []domain.Client{}
	for _, c := range r.clients {
		if wanted[c.ID] {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *fakeClientRepo) GetAll(_ context.Context) ([]domain.Client, error) {
	result := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		result = append(result, *c)
	}
	return result, nil
}

func (r *fakeClientRepo) Search(_ context.Context, query string) ([]domain.Client, error) {
	needle := strings.ToLower(query)
	result := []domain.Client{}
	for _, c := range r.clients {
		haystack := strings.ToLower(c.FirstName + " " + c.LastName + " " + c.PhoneNumber)
		if strings.Contains(haystack, needle) {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *domain.Client) error {
	for i, c := range r.clients {
		if c.ID == client.ID {
			client.UpdatedAt = time.Now().UTC()
			stored := *client
			r.clients[i] = &stored
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeClientRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeProgramRepo struct {
	programs []*domain.Program
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{}
}

func (r *fakeProgramRepo) Create(_ context.Context, program *domain.Program) (primitive.ObjectID, error) {
	for _, p := range r.programs {
		if p.Name == program.Name {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	program.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now
	stored := *program
	r.programs = append(r.programs, &stored)
	return program.ID, nil
}

func (r *fakeProgramRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Program, error) {
	for _, p := range r.programs {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProgramRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Program, error) {
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	result := []domain.Program{}
	for _, p := range r.programs {
		if wanted[p.ID] {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *fakeProgramRepo) GetAll(_ context.Context) ([]domain.Program, error) {
	result := make([]domain.Program, 0, len(r.programs))
	for _, p := range r.programs {
		result = append(result, *p)
	}
	return result, nil
}

func (r *fakeProgramRepo) Update(_ context.Context, program *domain.Program) error {
	for _, p := range r.programs {
		if p.ID != program.ID && p.Name == program.Name {
			return repository.ErrDuplicate
		}
	}
	for i, p := range r.programs {
		if p.ID == program.ID {
			program.UpdatedAt = time.Now().UTC()
			stored := *program
			r.programs[i] = &stored
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeProgramRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, p := range r.programs {
		if p.ID == id {
			r.programs = append(r.programs[:i], r.programs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeEnrollmentRepo struct {
	enrollments []*domain.Enrollment
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{}
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *domain.Enrollment) (primitive.ObjectID, error) {
	for _, e := range r.enrollments {
		if e.ClientID == enrollment.ClientID && e.ProgramID == enrollment.ProgramID {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	enrollment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	enrollment.CreatedAt = now
	enrollment.UpdatedAt = now
	stored := *enrollment
	r.enrollments = append(r.enrollments, &stored)
	return enrollment.ID, nil
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Enrollment, error) {
	for _, e := range r.enrollments {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeEnrollmentRepo) GetAll(_ context.Context) ([]domain.Enrollment, error) {
	result := make([]domain.Enrollment, 0, len(r.enrollments))
	for _, e := range r.enrollments {
		result = append(result, *e)
	}
	return result, nil
}

func (r *fakeEnrollmentRepo) GetByClientID(_ context.Context, clientID primitive.ObjectID) ([]domain.Enrollment, error) {
	result := []domain.Enrollment{}
	for _, e := range r.enrollments {
		if e.ClientID == clientID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *fakeEnrollmentRepo) FindByClientAndProgram(_ context.Context, clientID, programID primitive.ObjectID) (*domain.Enrollment, error) {
	for _, e := range r.enrollments {
		if e.ClientID == clientID && e.ProgramID == programID {
			copied := *e
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeEnrollmentRepo) Update(_ context.Context, enrollment *domain.Enrollment) error {
	for i, e := range r.enrollments {
		if e.ID == enrollment.ID {
			enrollment.UpdatedAt = time.Now().UTC()
			stored := *enrollment
			r.enrollments[i] = &stored
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, e := range r.enrollments {
		if e.ID == id {
			r.enrollments = append(r.enrollments[:i], r.enrollments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
