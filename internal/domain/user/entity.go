package user

// User represents a registered community member.
type User struct {
	ID               string   `json:"id"`               // ID is the opaque unique identifier, assigned at registration
	Name             string   `json:"name"`             // Name is the full name of the member
	Email            string   `json:"email"`            // Email is the lookup key at login (not enforced unique)
	Phone            string   `json:"phone"`            // Phone is the contact number
	Village          string   `json:"village"`          // Village is the member's home village
	State            string   `json:"state"`            // State is the member's home state
	EnrolledServices []string `json:"enrolledServices"` // EnrolledServices is the ordered list of enrolled service IDs
	JoinedDate       string   `json:"joinedDate"`       // JoinedDate is the RFC3339 registration timestamp, immutable
}

// Clone returns a deep copy so callers cannot mutate stored state through
// a shared enrollment slice.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.EnrolledServices = make([]string, len(u.EnrolledServices))
	copy(c.EnrolledServices, u.EnrolledServices)
	return &c
}

// IsEnrolled reports whether the user already holds an enrollment for the
// given service.
func (u *User) IsEnrolled(serviceID string) bool {
	for _, id := range u.EnrolledServices {
		if id == serviceID {
			return true
		}
	}
	return false
}
