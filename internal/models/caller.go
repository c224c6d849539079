package models

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RoleSupplier  Role = "supplier"
	RoleAttendee  Role = "attendee"
)

// Caller is the already-authenticated identity behind a request.
type Caller struct {
	UserID string
	Role   Role
}

func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }

// CanManage reports whether the caller may mutate an event owned by organizerID.
func (c Caller) CanManage(organizerID string) bool {
	if c.IsAdmin() {
		return true
	}
	return c.Role == RoleOrganizer && c.UserID != "" && c.UserID == organizerID
}

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleOrganizer, RoleSupplier:
		return Role(s)
	}
	return RoleAttendee
}
