package models

// PersonnelField names an editable personnel attribute as sent by clients
type PersonnelField string

// PersonnelField constants
const (
	FieldName       PersonnelField = "nombre"
	FieldNationalID PersonnelField = "ci"
	FieldPhone      PersonnelField = "cel"
)

// Valid reports whether f is one of the editable fields
func (f PersonnelField) Valid() bool {
	switch f {
	case FieldName, FieldNationalID, FieldPhone:
		return true
	}
	return false
}

// Personnel is one staffing slot at a venue.
// Quadrant is the quadrant of the owning venue, filled by lookups that join venues.
type Personnel struct {
	ID         int
	VenueID    string
	RoleLabel  string
	Name       string
	NationalID string
	Phone      string
	Quadrant   string
}

// PersonnelResponse is the wire shape of a personnel slot
type PersonnelResponse struct {
	ID         int    `json:"id"`
	RoleLabel  string `json:"rol"`
	Name       string `json:"nombre"`
	NationalID string `json:"ci"`
	Phone      string `json:"cel"`
}

// ToResponse converts a personnel row into the wire shape
func (p *Personnel) ToResponse() PersonnelResponse {
	return PersonnelResponse{
		ID:         p.ID,
		RoleLabel:  p.RoleLabel,
		Name:       p.Name,
		NationalID: p.NationalID,
		Phone:      p.Phone,
	}
}

// UpdatePersonnelRequest represents the update request body
type UpdatePersonnelRequest struct {
	ID    int            `json:"id"`
	Field PersonnelField `json:"field"`
	Value string         `json:"value"`
}

// StatusResponse is the acknowledgement body of write operations
type StatusResponse struct {
	Status string `json:"status"`
}
