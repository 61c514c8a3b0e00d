package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProgramInput() CreateProgramInput {
	return CreateProgramInput{
		Name:        "Wellness Workshop",
		Description: "A 6-week program focusing on overall wellness and healthy habits",
		Category:    "Wellness",
	}
}

func TestProgramCreateDefaults(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())

	before := time.Now().UTC()
	program, err := svc.Create(context.Background(), validProgramInput())
	require.NoError(t, err)

	assert.True(t, program.Active, "active should default to true")
	assert.False(t, program.StartDate.Before(before), "start date should default to now")
	assert.Nil(t, program.EndDate)
}

func TestProgramCreateExplicitFields(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())

	inactive := false
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	input := validProgramInput()
	input.StartDate = start
	input.EndDate = &end
	input.Active = &inactive

	program, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.False(t, program.Active)
	assert.Equal(t, start, program.StartDate)
	require.NotNil(t, program.EndDate)
	assert.Equal(t, end, *program.EndDate)
}

func TestProgramCreateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateProgramInput)
	}{
		{"missing name", func(in *CreateProgramInput) { in.Name = "" }},
		{"missing description", func(in *CreateProgramInput) { in.Description = "" }},
		{"missing category", func(in *CreateProgramInput) { in.Category = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProgramService(newFakeProgramRepo())
			input := validProgramInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestProgramCreateDuplicateName(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())

	_, err := svc.Create(context.Background(), validProgramInput())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validProgramInput())
	assert.ErrorIs(t, err, ErrProgramNameTaken)

	// Duplicate names are a validation failure, not a distinct
	// conflict kind.
	var validationErr ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestProgramGetByIDMissing(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())

	_, err := svc.GetByID(context.Background(), missingID(t))
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestProgramUpdateActiveAppliesOnPresence(t *testing.T) {
	// Strings merge on truthiness, but Active applies whenever it is
	// supplied, including an explicit false. Without that a program
	// could never be deactivated.
	svc := NewProgramService(newFakeProgramRepo())
	program, err := svc.Create(context.Background(), validProgramInput())
	require.NoError(t, err)
	require.True(t, program.Active)

	inactive := false
	updated, err := svc.Update(context.Background(), program.ID, UpdateProgramInput{Active: &inactive})
	require.NoError(t, err)

	assert.False(t, updated.Active)
	assert.Equal(t, program.Name, updated.Name)

	// Omitting Active leaves the stored value alone.
	updated, err = svc.Update(context.Background(), program.ID, UpdateProgramInput{Category: "General"})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "General", updated.Category)
}

func TestProgramUpdateRenameToExistingName(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())

	_, err := svc.Create(context.Background(), validProgramInput())
	require.NoError(t, err)

	other := validProgramInput()
	other.Name = "Nutrition Counseling"
	program, err := svc.Create(context.Background(), other)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), program.ID, UpdateProgramInput{Name: "Wellness Workshop"})
	assert.ErrorIs(t, err, ErrProgramNameTaken)
}

func TestProgramDelete(t *testing.T) {
	svc := NewProgramService(newFakeProgramRepo())
	program, err := svc.Create(context.Background(), validProgramInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), program.ID))

	_, err = svc.GetByID(context.Background(), program.ID)
	assert.ErrorIs(t, err, ErrProgramNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), program.ID), ErrProgramNotFound)
}
