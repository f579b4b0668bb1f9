// Package domain holds the wire types exchanged with the job-board backend.
// Field names and JSON tags mirror the backend payloads exactly.
package domain

// UserType distinguishes individual and organization accounts.
type UserType string

const (
	UserTypePerson  UserType = "PERSON"
	UserTypeCompany UserType = "COMPANY"
)

// Role is the authorization role carried in the access token.
type Role string

const (
	RoleGuest             Role = "GUEST"
	RolePerson            Role = "PERSON"
	RoleCompanyUnverified Role = "COMPANY_UNVERIFIED"
	RoleCompanyVerified   Role = "COMPANY_VERIFIED"
	RoleAdmin             Role = "ADMIN"
	RoleCS                Role = "CS"
	RoleSales             Role = "SALES"
)

// AdminRoles is the allow-list for the admin console.
var AdminRoles = []Role{RoleAdmin, RoleCS, RoleSales}

// IsAdmin reports whether the role grants admin console access.
func (r Role) IsAdmin() bool {
	for _, a := range AdminRoles {
		if r == a {
			return true
		}
	}
	return false
}

// UserStatus is the account lifecycle state, visible in the admin console.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusDeleted   UserStatus = "DELETED"
	UserStatusDormant   UserStatus = "DORMANT"
)

// AuthUser is the identity payload returned by login and signup.
type AuthUser struct {
	ID    string   `json:"id"`
	Type  UserType `json:"type"`
	Email string   `json:"email"`
	Role  Role     `json:"role"`
}

// TokenPayload is the token pair as the backend returns it.
type TokenPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthResponse is the response body of both login and signup.
type AuthResponse struct {
	User   AuthUser     `json:"user"`
	Tokens TokenPayload `json:"tokens"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupInput is the signup request body. Organization accounts must supply
// company_name and business_no; the password policy matches the backend.
type SignupInput struct {
	Type           UserType `json:"type" validate:"required,oneof=PERSON COMPANY"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,password"`
	Phone          string   `json:"phone,omitempty"`
	Name           string   `json:"name,omitempty"`
	BusinessNo     string   `json:"business_no,omitempty" validate:"required_if=Type COMPANY"`
	CompanyName    string   `json:"company_name,omitempty" validate:"required_if=Type COMPANY"`
	AgreeTerms     bool     `json:"agree_terms" validate:"eq=true"`
	AgreeMarketing bool     `json:"agree_marketing"`
}
