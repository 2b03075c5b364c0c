package user

import "time"

// User is an account record. PasswordHash and VerificationToken never leave
// this package through a View.
type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	Status            Status
	VerificationToken *string
	LastLogin         *time.Time
	CreatedAt         time.Time
}

// View is the externally visible shape of an account.
type View struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Status    Status     `json:"status"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (u User) View() View {
	return View{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    u.Status,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
