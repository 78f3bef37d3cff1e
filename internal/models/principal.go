package models

// Principal is the authenticated caller extracted from an access token
type Principal struct {
	UserID   int
	Username string
	Role     Role
	Quadrant string
}

// CanAccessQuadrant reports whether the caller may read or edit the given quadrant.
// Admins may access every quadrant; users only their own.
func (p *Principal) CanAccessQuadrant(quadrant string) bool {
	if p.Role == RoleAdmin {
		return true
	}
	return p.Role == RoleUser && p.Quadrant != "" && p.Quadrant == quadrant
}
