package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coosanta-bit/medi/internal/domain"
)

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"abc123xy", true},       // letters + digits
		{"abcdef!!", true},       // letters + specials
		{"1234!!!!", true},       // digits + specials
		{"a1!", false},           // too short
		{"abcdefgh", false},      // single category
		{"12345678", false},      // single category
		{"!!!!!!!!", false},      // single category
		{"", false},
		{"Str0ng-Passw0rd", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidPassword(tc.password), "password %q", tc.password)
	}
}

func TestValidate_PersonSignup(t *testing.T) {
	input := domain.SignupInput{
		Type:       domain.UserTypePerson,
		Email:      "jane@example.com",
		Password:   "abc123xy",
		AgreeTerms: true,
	}
	assert.NoError(t, Validate(input))
}

func TestValidate_CompanySignupRequiresBusinessFields(t *testing.T) {
	input := domain.SignupInput{
		Type:       domain.UserTypeCompany,
		Email:      "hr@clinic.example.com",
		Password:   "abc123xy",
		AgreeTerms: true,
	}

	err := Validate(input)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := verr.Fields()
	assert.Contains(t, fields, "BusinessNo")
	assert.Contains(t, fields, "CompanyName")
}

func TestValidate_CompanySignupComplete(t *testing.T) {
	input := domain.SignupInput{
		Type:        domain.UserTypeCompany,
		Email:       "hr@clinic.example.com",
		Password:    "abc123xy",
		BusinessNo:  "123-45-67890",
		CompanyName: "Sunrise Clinic",
		AgreeTerms:  true,
	}
	assert.NoError(t, Validate(input))
}

func TestValidate_SignupRejectsWeakPassword(t *testing.T) {
	input := domain.SignupInput{
		Type:       domain.UserTypePerson,
		Email:      "jane@example.com",
		Password:   "abcdefgh",
		AgreeTerms: true,
	}

	err := Validate(input)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields()["Password"], "8 characters")
}

func TestValidate_SignupRequiresTermsAgreement(t *testing.T) {
	input := domain.SignupInput{
		Type:     domain.UserTypePerson,
		Email:    "jane@example.com",
		Password: "abc123xy",
	}

	err := Validate(input)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be accepted", verr.Fields()["AgreeTerms"])
}

func TestValidate_LoginInput(t *testing.T) {
	assert.NoError(t, Validate(domain.LoginInput{Email: "jane@example.com", Password: "x"}))
	assert.Error(t, Validate(domain.LoginInput{Email: "not-an-email", Password: "x"}))
	assert.Error(t, Validate(domain.LoginInput{Email: "jane@example.com"}))
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(domain.LoginInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Email' is required")
	assert.Contains(t, err.Error(), "field 'Password' is required")
}
