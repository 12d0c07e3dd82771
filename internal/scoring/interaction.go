package scoring

import (
	"github.com/polithane/polithane/internal/domain"
)

// actionPoints holds the point value of each action kind for one rule.
type actionPoints struct {
	View    int
	Like    int
	Comment int
}

func (p actionPoints) forAction(action domain.ActionKind) int {
	switch action {
	case domain.ActionLike:
		return p.Like
	case domain.ActionComment:
		return p.Comment
	default:
		return p.View
	}
}

// interactionRule is one entry of the ordered rule table. Rules are
// evaluated top to bottom and the first match wins, so overlapping
// predicates resolve by position, never silently shadow each other.
type interactionRule struct {
	name   string
	match  func(actor, owner domain.Actor) bool
	points actionPoints
}

// Point tables. Orderings are contractual:
//   - unverified: view < like < comment, all below the verified baseline
//   - same-party like/comment above verified, same-party view only slightly
//     above the verified view (known asymmetry, kept as-is)
//   - rival-party strictly above same-party: adversarial attention is a
//     stronger trend signal
//   - representative-to-citizen is weighted heavily as a reach signal
//   - cross-party politician-to-politician attention is the highest tier
//   - media-facing interactions are tracked but weighted lightly
var (
	visitorPoints         = actionPoints{View: 1, Like: 1, Comment: 1}
	unverifiedPoints      = actionPoints{View: 2, Like: 4, Comment: 6}
	verifiedBaseline      = actionPoints{View: 5, Like: 10, Comment: 15}
	samePartyPoints       = actionPoints{View: 6, Like: 14, Comment: 20}
	rivalPartyPoints      = actionPoints{View: 8, Like: 18, Comment: 25}
	repToCitizenPoints    = actionPoints{View: 30, Like: 50, Comment: 75}
	repToAllyPoints       = actionPoints{View: 10, Like: 20, Comment: 30}
	repToRivalPoints      = actionPoints{View: 40, Like: 70, Comment: 100}
	repToRepNeutralPoints = actionPoints{View: 12, Like: 25, Comment: 35}
	politicianMediaPoints = actionPoints{View: 3, Like: 5, Comment: 8}
)

// interactionRules is the full rule table, in precedence order.
var interactionRules = []interactionRule{
	{
		name: "visitor",
		match: func(actor, _ domain.Actor) bool {
			return actor.Role == domain.RoleVisitor
		},
		points: visitorPoints,
	},
	{
		name: "unverified_member",
		match: func(actor, _ domain.Actor) bool {
			return actor.Role == domain.RoleUnverifiedMember
		},
		points: unverifiedPoints,
	},
	{
		name: "verified_member",
		match: func(actor, _ domain.Actor) bool {
			return actor.Role == domain.RoleVerifiedMember
		},
		points: verifiedBaseline,
	},
	{
		name: "same_party_member",
		match: func(actor, owner domain.Actor) bool {
			return actor.Role == domain.RolePartyMember && domain.SameParty(actor, owner)
		},
		points: samePartyPoints,
	},
	{
		name: "rival_party_member",
		match: func(actor, owner domain.Actor) bool {
			return actor.Role == domain.RolePartyMember && domain.RivalParty(actor, owner)
		},
		points: rivalPartyPoints,
	},
	{
		name: "representative_to_citizen",
		match: func(actor, owner domain.Actor) bool {
			return actor.Role == domain.RoleNationalRepresentative && owner.Role == domain.RoleVerifiedMember
		},
		points: repToCitizenPoints,
	},
	{
		name: "representative_to_ally_politician",
		match: func(actor, owner domain.Actor) bool {
			return actor.Role == domain.RoleNationalRepresentative && owner.IsPolitician() && domain.SameParty(actor, owner)
		},
		points: repToAllyPoints,
	},
	{
		name: "representative_to_rival_politician",
		match: func(actor, owner domain.Actor) bool {
			return actor.Role == domain.RoleNationalRepresentative && owner.IsPolitician() && domain.RivalParty(actor, owner)
		},
		points: repToRivalPoints,
	},
	{
		name: "representative_to_representative",
		match: func(actor, owner domain.Actor) bool {
			return actor.Role == domain.RoleNationalRepresentative && owner.Role == domain.RoleNationalRepresentative
		},
		points: repToRepNeutralPoints,
	},
	{
		name: "politician_to_media",
		match: func(actor, owner domain.Actor) bool {
			return actor.IsPolitician() && owner.Role == domain.RoleMedia
		},
		points: politicianMediaPoints,
	},
}

// ScoreInteraction returns the base point value of one interaction event.
// Total over all well-typed inputs: any actor/owner combination not covered
// by the rule table falls back to the verified-member baseline, never zero
// and never an error.
func ScoreInteraction(ev domain.InteractionEvent) int {
	points, _ := scoreWithRule(ev)
	return points
}

// scoreWithRule resolves the event against the rule table and reports which
// rule matched ("fallback" when none did). The rule name feeds metrics.
func scoreWithRule(ev domain.InteractionEvent) (int, string) {
	for _, rule := range interactionRules {
		if rule.match(ev.Actor, ev.Owner) {
			return rule.points.forAction(ev.Action), rule.name
		}
	}
	return verifiedBaseline.forAction(ev.Action), "fallback"
}
