package model

// RegisterParams contains sign-up input.
type RegisterParams struct {
	FullName string
	Email    string
	Password string
}

// Session is the result of a successful sign-up or login.
type Session struct {
	AccessToken string
	User        Profile
}
