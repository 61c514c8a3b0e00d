package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentStatus type for the enrollment lifecycle label.
// Transitions are unconstrained: the ledger stores the label, it does
// not enforce a workflow.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "Active"
	EnrollmentCompleted EnrollmentStatus = "Completed"
	EnrollmentSuspended EnrollmentStatus = "Suspended"
)

// IsValid reports whether s is one of the known status values.
func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentActive, EnrollmentCompleted, EnrollmentSuspended:
		return true
	}
	return false
}

// Enrollment links one Client to one Program. It holds non-owning
// references: deleting a client or program does not touch its
// enrollments. The (client, program) pair is unique forever, enforced
// by a compound unique index on the collection.
type Enrollment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID       primitive.ObjectID `bson:"client" json:"clientId"`
	ProgramID      primitive.ObjectID `bson:"program" json:"programId"`
	EnrollmentDate time.Time          `bson:"enrollmentDate" json:"enrollmentDate"`
	Status         EnrollmentStatus   `bson:"status" json:"status"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ClientRef is the client display projection attached to an enrollment
// at read time.
type ClientRef struct {
	ID        primitive.ObjectID `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
}

// ProgramRef is the program display projection attached to an
// enrollment at read time. Description and Category are only filled by
// the per-client listing.
type ProgramRef struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category,omitempty"`
}

// EnrichedEnrollment is an Enrollment joined with display fields from
// the records it references. The enrollment document itself stays
// normalized; the refs are fetched and merged at query time. A nil ref
// means the referenced record no longer exists (deletes do not
// cascade).
type EnrichedEnrollment struct {
	Enrollment
	Client  *ClientRef  `json:"client,omitempty"`
	Program *ProgramRef `json:"program,omitempty"`
}
