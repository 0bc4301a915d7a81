package profiles

import "time"

// Profile holds the contact details a user maintains for applications.
// One profile exists per user id; updates replace the record wholesale.
type Profile struct {
	UserID    string
	Name      string
	Email     string
	Phone     string
	LinkedIn  string
	Portfolio string
	UpdatedAt time.Time
}
