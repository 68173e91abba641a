package handlers

// Response envelopes shared by the account endpoints.

type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries outcome text for login, signup and profile updates,
// on both the success and failure paths of those endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope for profile reads.
type ErrorResponse struct {
	Error string `json:"error"`
}

type ProfileResponse struct {
	UserCredentials interface{} `json:"userCredentials"`
}

// Client-facing messages. The login and signup failures deliberately stay
// generic so the response does not reveal which credential was wrong.
const (
	MsgLoginFailed        = "Please confirm that all credentials are correct before trying to log in."
	MsgLoginUserNotFound  = "There is no user record corresponding to this email. Please verify your credentials or signup."
	MsgLoginWrongPassword = "The password is invalid for that email. Please try again!"

	MsgSignupInvalid     = "Please confirm that all credentials are correct before trying to sign up."
	MsgSignupEmailInUse  = "This email is already in use. Please provide another one."
	MsgSignupConflict    = "Email already in use"
	MsgSignupFailed      = "Something went wrong, please try again"

	MsgProfileNotFound     = "user profile not found"
	MsgProfileUpdated      = "Profile updated successfully."
	MsgProfileUpdateFailed = "Cannot update the profile."
)
