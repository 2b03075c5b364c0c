package user

// Status is the account lifecycle gate. Every transition site must switch
// exhaustively over the three values.
type Status string

const (
	StatusUnverified Status = "unverified"
	StatusActive     Status = "active"
	StatusBlocked    Status = "blocked"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUnverified, StatusActive, StatusBlocked:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
