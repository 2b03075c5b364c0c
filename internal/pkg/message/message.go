package message

const (
	InvalidInput       = "Invalid input."
	InvalidCredentials = "Invalid email or password"
	InvalidSession     = "Invalid or expired session."
	ServerError        = "Something went wrong."

	UserExists      = "User with this email already exists"
	UserNotFound    = "User not found"
	UserBlocked     = "User is blocked"
	NoUsersSelected = "No users selected"

	InvalidVerifyToken = "Invalid verification token"
	AlreadyVerified    = "Email already verified"
	VerifySuccess      = "Email verified successfully"

	LoggedIn        = "Logged in."
	RegisterSuccess = "Thank you for registering. A verification link was sent to your email."

	FmtBlocked           = "Blocked %d user(s)"
	FmtUnblocked         = "Unblocked %d user(s)"
	FmtDeleted           = "Deleted %d user(s)"
	FmtDeletedUnverified = "Deleted %d unverified user(s)"
)
