// Package guard gates entry to protected sections on session state and role.
package guard

import (
	"fmt"

	"github.com/coosanta-bit/medi/internal/domain"
	"github.com/coosanta-bit/medi/internal/session"
)

// Requirement names a protected section of the application.
type Requirement int

const (
	// Member and Employer require any authenticated user.
	Member Requirement = iota
	Employer
	// Admin additionally restricts to the elevated-role allow-list.
	Admin
)

func (r Requirement) String() string {
	switch r {
	case Member:
		return "member"
	case Employer:
		return "employer"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// Verdict is the outcome kind of a guard evaluation.
type Verdict int

const (
	// Wait means the session has not resolved yet; show a neutral
	// placeholder and do not redirect. Redirecting while booting would
	// bounce a legitimately authenticated user to the login page.
	Wait Verdict = iota
	Allow
	Redirect
)

// Decision is the result of evaluating a guard against a session snapshot.
type Decision struct {
	Verdict Verdict
	// Target is the redirect path when Verdict == Redirect.
	Target string
}

const (
	loginPath = "/auth/login"
	homePath  = "/"
)

// Evaluate decides whether the section named by req may be entered given the
// session snapshot. requested is the originally requested path, preserved in
// the login redirect so login can return the user there. Pure function of its
// inputs; callers evaluate it once per session transition or command entry.
func Evaluate(req Requirement, snap session.Snapshot, requested string) Decision {
	if snap.Loading() {
		return Decision{Verdict: Wait}
	}

	if snap.User == nil {
		target := loginPath
		if requested != "" {
			target = fmt.Sprintf("%s?redirect=%s", loginPath, requested)
		}
		return Decision{Verdict: Redirect, Target: target}
	}

	if req == Admin && !snap.User.Role.IsAdmin() {
		return Decision{Verdict: Redirect, Target: homePath}
	}

	return Decision{Verdict: Allow}
}

// RoleAllowed reports whether role satisfies the requirement on its own,
// ignoring session state.
func RoleAllowed(req Requirement, role domain.Role) bool {
	if req == Admin {
		return role.IsAdmin()
	}
	return true
}
