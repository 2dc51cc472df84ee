package models

// CategoryStatus tracks where a per-category registration sits in the
// review pipeline.
type CategoryStatus string

const (
	StatusWaitingApproval CategoryStatus = "waiting-approval"
	StatusQualified       CategoryStatus = "qualified"
	StatusUnqualified     CategoryStatus = "unqualified"
	StatusRejected        CategoryStatus = "rejected"
)

// Submission is the final, reference-numbered application record for a
// category.
type Submission struct {
	ReferenceNumber string `json:"referenceNumber"`
	SubmittedAt     string `json:"submittedAt"`
}

// User is the persisted account record. JSON field names are fixed: they
// are the on-disk format of the user store and must stay readable by
// existing data files.
//
// Password holds a bcrypt hash. The field keeps its legacy name so older
// store files still parse; plaintext values in them simply never match.
type User struct {
	ID                int                       `json:"id"`
	Email             string                    `json:"email"`
	Password          string                    `json:"password"`
	Registered        bool                      `json:"registered"`
	Applied           bool                      `json:"applied"`
	AppliedCategories []string                  `json:"appliedCategories"`
	CategoryStatuses  map[string]CategoryStatus `json:"categoryStatuses,omitempty"`
	RegistrationData  map[string]interface{}    `json:"registrationData,omitempty"`
	Submissions       map[string]Submission     `json:"submissions"`
	Draft             map[string]interface{}    `json:"draft"`
	IsAdmin           bool                      `json:"isAdmin,omitempty"`
	IsDirector        bool                      `json:"isDirector,omitempty"`
}

// HasApplied reports whether the user already applied to the category.
func (u *User) HasApplied(categorySlug string) bool {
	for _, slug := range u.AppliedCategories {
		if slug == categorySlug {
			return true
		}
	}
	return false
}

// Database is the whole user store document: {"users": [...]}.
type Database struct {
	Users []*User `json:"users"`
}

// FindByEmail returns the user with the given email, or nil.
// Emails are compared case-sensitively.
func (d *Database) FindByEmail(email string) *User {
	for _, u := range d.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// FindByID returns the user with the given id, or nil.
func (d *Database) FindByID(id int) *User {
	for _, u := range d.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// NextID returns max existing id + 1, starting at 1 for an empty store.
func (d *Database) NextID() int {
	maxID := 0
	for _, u := range d.Users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}
