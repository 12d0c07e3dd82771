package domain

// Role classifies an actor. Supplied by the identity provider, never
// mutated by the scoring engine.
type Role string

const (
	RoleVisitor                Role = "visitor"
	RoleUnverifiedMember       Role = "unverified_member"
	RoleVerifiedMember         Role = "verified_member"
	RolePartyMember            Role = "party_member"
	RoleRegionalPolitician     Role = "regional_politician"
	RoleNationalRepresentative Role = "national_representative"
	RoleMedia                  Role = "media"
)

// ValidRole reports whether r is one of the known role classifications.
func ValidRole(r Role) bool {
	switch r {
	case RoleVisitor, RoleUnverifiedMember, RoleVerifiedMember, RolePartyMember,
		RoleRegionalPolitician, RoleNationalRepresentative, RoleMedia:
		return true
	}
	return false
}

// Actor is a participant in an interaction: a viewer, liker or commenter,
// or the owner of the content being acted on.
type Actor struct {
	Role     Role   `json:"role"`
	PartyID  string `json:"party_id,omitempty"`
	Verified bool   `json:"verified"`
}

// SameParty reports whether both actors carry the same non-empty party
// affiliation. A missing party ID on either side never satisfies this.
func SameParty(a, b Actor) bool {
	return a.PartyID != "" && b.PartyID != "" && a.PartyID == b.PartyID
}

// RivalParty reports whether both actors carry non-empty but different
// party affiliations.
func RivalParty(a, b Actor) bool {
	return a.PartyID != "" && b.PartyID != "" && a.PartyID != b.PartyID
}

// IsPolitician reports whether the actor holds a regional or national seat.
func (a Actor) IsPolitician() bool {
	return a.Role == RoleRegionalPolitician || a.Role == RoleNationalRepresentative
}
