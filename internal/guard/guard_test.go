package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/internal/session"
)

func anonymous() session.Snapshot {
	return session.Snapshot{State: session.StateAnonymous}
}

func authenticated(role domain.Role) session.Snapshot {
	return session.Snapshot{
		State: session.StateAuthenticated,
		User:  &domain.AuthUser{ID: "user-1", Role: role},
	}
}

func TestEvaluate_WaitWhileBooting(t *testing.T) {
	for _, req := range []Requirement{Member, Employer, Admin} {
		d := Evaluate(req, session.Snapshot{State: session.StateBooting}, "/me")
		assert.Equal(t, Wait, d.Verdict, "requirement %s", req)
		assert.Empty(t, d.Target)
	}
}

func TestEvaluate_AnonymousRedirectsToLogin(t *testing.T) {
	d := Evaluate(Member, anonymous(), "/me/resumes")
	assert.Equal(t, Redirect, d.Verdict)
	assert.Equal(t, "/auth/login?redirect=/me/resumes", d.Target)
}

func TestEvaluate_AnonymousWithoutRequestedPath(t *testing.T) {
	d := Evaluate(Member, anonymous(), "")
	assert.Equal(t, Redirect, d.Verdict)
	assert.Equal(t, "/auth/login", d.Target)
}

func TestEvaluate_MemberAllowsAnyAuthenticatedRole(t *testing.T) {
	for _, role := range []domain.Role{
		domain.RolePerson,
		domain.RoleCompanyUnverified,
		domain.RoleCompanyVerified,
		domain.RoleAdmin,
	} {
		d := Evaluate(Member, authenticated(role), "/me")
		assert.Equal(t, Allow, d.Verdict, "role %s", role)
	}
}

func TestEvaluate_EmployerAllowsAnyAuthenticatedRole(t *testing.T) {
	// Employer sections are gated on authentication only; the backend
	// enforces verification level per operation.
	d := Evaluate(Employer, authenticated(domain.RolePerson), "/biz")
	assert.Equal(t, Allow, d.Verdict)
}

func TestEvaluate_AdminAllowList(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleCS, domain.RoleSales} {
		d := Evaluate(Admin, authenticated(role), "/admin")
		assert.Equal(t, Allow, d.Verdict, "role %s", role)
	}
}

func TestEvaluate_AdminRejectsRegularRolesToHome(t *testing.T) {
	for _, role := range []domain.Role{
		domain.RolePerson,
		domain.RoleCompanyUnverified,
		domain.RoleCompanyVerified,
		domain.RoleGuest,
	} {
		d := Evaluate(Admin, authenticated(role), "/admin")
		assert.Equal(t, Redirect, d.Verdict, "role %s", role)
		assert.Equal(t, "/", d.Target, "role failures go home, not to login")
	}
}

func TestEvaluate_AdminAnonymousStillGoesToLogin(t *testing.T) {
	d := Evaluate(Admin, anonymous(), "/admin")
	assert.Equal(t, Redirect, d.Verdict)
	assert.Equal(t, "/auth/login?redirect=/admin", d.Target)
}

func TestRoleAllowed(t *testing.T) {
	assert.True(t, RoleAllowed(Member, domain.RolePerson))
	assert.True(t, RoleAllowed(Employer, domain.RoleCompanyUnverified))
	assert.True(t, RoleAllowed(Admin, domain.RoleCS))
	assert.False(t, RoleAllowed(Admin, domain.RolePerson))
}

func TestRequirement_String(t *testing.T) {
	assert.Equal(t, "member", Member.String())
	assert.Equal(t, "employer", Employer.String())
	assert.Equal(t, "admin", Admin.String())
}
