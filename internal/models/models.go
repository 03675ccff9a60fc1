// Package models defines the persistent record kinds of recruitd: users,
// recruitment drives, and applications. JSON tags follow the public API's
// camelCase field names.
package models

import "time"

// Role is the coarse account category carried in session tokens.
type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleOrganizer Role = "ORGANIZER"
)

// ParseRole maps a free-form role string onto the closed role set.
// Anything that is not exactly ORGANIZER becomes STUDENT.
func ParseRole(s string) Role {
	if s == string(RoleOrganizer) {
		return RoleOrganizer
	}
	return RoleStudent
}

// RecruitmentStatus is the lifecycle state of a recruitment drive.
type RecruitmentStatus string

const (
	StatusActive RecruitmentStatus = "ACTIVE"
	StatusPaused RecruitmentStatus = "PAUSED"
	StatusClosed RecruitmentStatus = "CLOSED"
)

// Valid reports whether the status belongs to the closed set.
func (s RecruitmentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusClosed:
		return true
	}
	return false
}

// User is a registered account. Email uniqueness is enforced by the unique
// index; a violation surfaces as a conflict error. The password hash is
// never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Role         Role      `gorm:"type:text;not null;default:STUDENT" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Recruitment is an organization-run recruitment drive.
type Recruitment struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Title          string            `gorm:"not null" json:"title"`
	Deadline       time.Time         `gorm:"not null" json:"deadline"`
	Posts          StringSlice       `gorm:"type:text" json:"posts"`
	Questions      JSON              `gorm:"type:text" json:"questions"`
	WhatsappLink   *string           `json:"whatsappLink"`
	OrganizationID uint              `gorm:"not null" json:"organizationId"`
	Status         RecruitmentStatus `gorm:"type:text;not null;default:ACTIVE" json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Application is a student's submission to a recruitment drive. The
// applicant id always comes from the authenticated identity, never from the
// request body.
type Application struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ApplicantID   uint      `gorm:"not null;index" json:"applicantId"`
	RecruitmentID uint      `gorm:"not null;index" json:"recruitmentId"`
	SelectedPost  string    `gorm:"not null" json:"selectedPost"`
	Answers       JSON      `gorm:"type:text" json:"answers"`
	CreatedAt     time.Time `json:"createdAt"`

	Applicant   *User        `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Recruitment *Recruitment `gorm:"foreignKey:RecruitmentID" json:"recruitment,omitempty"`
}

// All lists every model for auto-migration.
func All() []any {
	return []any{&User{}, &Recruitment{}, &Application{}}
}
