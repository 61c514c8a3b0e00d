package service

// ValidationError marks a failure the caller can correct: a missing or
// invalid field, a duplicate program name, a duplicate enrollment pair.
// The API layer surfaces these as 400 responses.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// NotFoundError marks a lookup that matched no record. The API layer
// surfaces these as 404 responses.
type NotFoundError string

func (e NotFoundError) Error() string {
	return string(e)
}

// Error messages double as the API response bodies, so they keep the
// sentence casing the dashboard displays.
var (
	ErrClientNotFound     = NotFoundError("Client not found")
	ErrProgramNotFound    = NotFoundError("Program not found")
	ErrEnrollmentNotFound = NotFoundError("Enrollment not found")

	ErrAlreadyEnrolled  = ValidationError("Client is already enrolled in this program")
	ErrProgramNameTaken = ValidationError("A program with this name already exists")
)
