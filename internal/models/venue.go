package models

// Venue (recinto) is a voting site with a fixed staffing roster
type Venue struct {
	ID                    string
	Name                  string
	Quadrant              string
	VoterCount            int
	RequiredDelegateCount int
	SortOrder             int
	Personnel             []Personnel
}

// VenueResponse is the wire shape of a venue with its roster
type VenueResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"nombre"`
	VoterCount   int                 `json:"votantes"`
	DelegatesReq int                 `json:"delegadosReq"`
	Personnel    []PersonnelResponse `json:"personal"`
}

// ToResponse converts a venue and its personnel into the wire shape.
// Personnel is never nil so it encodes as [].
func (v *Venue) ToResponse() VenueResponse {
	personnel := make([]PersonnelResponse, 0, len(v.Personnel))
	for _, p := range v.Personnel {
		personnel = append(personnel, p.ToResponse())
	}

	return VenueResponse{
		ID:           v.ID,
		Name:         v.Name,
		VoterCount:   v.VoterCount,
		DelegatesReq: v.RequiredDelegateCount,
		Personnel:    personnel,
	}
}

// QuadrantData maps a quadrant identifier to its venues
type QuadrantData map[string][]VenueResponse
