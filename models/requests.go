package models

// SignupRequest is the payload of POST /api/v1/user/signup.
type SignupRequest struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// SigninRequest is the payload of POST /api/v1/user/signin.
//
// Two mutually exclusive entry points share this shape: the password path
// (Login + Password) and the OAuth path (OauthProvider + OauthAccessToken,
// with Login optionally naming an existing local account to link).
type SigninRequest struct {
	Login            string `json:"login,omitempty"`
	Password         string `json:"password,omitempty"`
	OauthProvider    string `json:"oauth_provider,omitempty"`
	OauthAccessToken string `json:"oauth_access_token,omitempty"`
}

// RefreshRequest carries a refresh token presented to the refresh and
// signout endpoints.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RoleChangeRequest is the payload of the role assign/revoke endpoints.
type RoleChangeRequest struct {
	UserLogin string `json:"user_login"`
	RoleName  string `json:"role_name"`
}
