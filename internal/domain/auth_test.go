package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_IsAdmin(t *testing.T) {
	for _, role := range AdminRoles {
		assert.True(t, role.IsAdmin(), "role %s", role)
	}
	for _, role := range []Role{RoleGuest, RolePerson, RoleCompanyUnverified, RoleCompanyVerified} {
		assert.False(t, role.IsAdmin(), "role %s", role)
	}
	assert.False(t, Role("").IsAdmin())
	assert.False(t, Role("admin").IsAdmin(), "role matching is case sensitive")
}

func TestAuthResponse_Decode(t *testing.T) {
	payload := `{
		"user": {"id": "user-1", "type": "COMPANY", "email": "hr@clinic.example.com", "role": "COMPANY_VERIFIED"},
		"tokens": {"access_token": "at", "refresh_token": "rt", "token_type": "bearer"}
	}`

	var res AuthResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &res))
	assert.Equal(t, UserTypeCompany, res.User.Type)
	assert.Equal(t, RoleCompanyVerified, res.User.Role)
	assert.Equal(t, "at", res.Tokens.AccessToken)
	assert.Equal(t, "rt", res.Tokens.RefreshToken)
}

func TestSignupInput_OmitsOptionalFields(t *testing.T) {
	data, err := json.Marshal(SignupInput{
		Type:       UserTypePerson,
		Email:      "jane@example.com",
		Password:   "abc123xy",
		AgreeTerms: true,
	})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "company_name")
	assert.NotContains(t, string(data), "business_no")
	assert.Contains(t, string(data), "agree_terms")
}
