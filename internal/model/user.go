// Package model defines the records stored in each Tuiter collection.
//
// Every type carries both json and bson tags: json for the HTTP layer and
// bson for the MongoDB repository. The SQLite repository maps fields by hand.
// All ids are xid strings assigned by the repository on create.
package model

import "time"

// AccountType values accepted for User.AccountType.
const (
	AccountPersonal     = "PERSONAL"
	AccountAcademic     = "ACADEMIC"
	AccountProfessional = "PROFESSIONAL"
)

// MaritalStatus values accepted for User.MaritalStatus.
const (
	MaritalMarried = "MARRIED"
	MaritalSingle  = "SINGLE"
	MaritalWidowed = "WIDOWED"
)

// DefaultSalary is stored when a user is created without a salary.
const DefaultSalary = 50000

// Location is a latitude/longitude pair attached to a profile.
type Location struct {
	Latitude  float64 `json:"latitude"  bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// User is a Tuiter account.
//
// Password holds the bcrypt hash once persisted. The service layer blanks it
// before a User leaves the process, so it only ever appears in request bodies.
// Username uniqueness is not enforced by either store.
type User struct {
	ID            string     `json:"_id"                     bson:"_id"`
	Username      string     `json:"username"                bson:"username"      validate:"required,max=64"`
	Password      string     `json:"password,omitempty"      bson:"password"      validate:"required,max=72"`
	FirstName     string     `json:"firstName,omitempty"     bson:"firstName"`
	LastName      string     `json:"lastName,omitempty"      bson:"lastName"`
	Email         string     `json:"email,omitempty"         bson:"email"         validate:"omitempty,email"`
	ProfilePhoto  string     `json:"profilePhoto,omitempty"  bson:"profilePhoto"`
	HeaderImage   string     `json:"headerImage,omitempty"   bson:"headerImage"`
	Biography     string     `json:"biography,omitempty"     bson:"biography"     validate:"max=1000"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"   bson:"dateOfBirth,omitempty"`
	AccountType   string     `json:"accountType,omitempty"   bson:"accountType"   validate:"omitempty,oneof=PERSONAL ACADEMIC PROFESSIONAL"`
	MaritalStatus string     `json:"maritalStatus,omitempty" bson:"maritalStatus" validate:"omitempty,oneof=MARRIED SINGLE WIDOWED"`
	Location      *Location  `json:"location,omitempty"      bson:"location,omitempty"`
	Salary        float64    `json:"salary"                  bson:"salary"        validate:"gte=0"`
}
