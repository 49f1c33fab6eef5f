package access

// Role is the commercial role of an Actor.
type Role string

const (
	RoleTailor Role = "TAILOR"
	RoleVendor Role = "VENDOR"
)

// ParseRole validates a role value coming from a request body.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleTailor, RoleVendor:
		return Role(s), true
	default:
		return "", false
	}
}

// Principal is the acting identity of a request. ActorID is zero when the
// user has no Actor record; ids are auto-increment keys starting at 1, so
// zero never collides with a real actor.
type Principal struct {
	UserID  uint
	ActorID uint
	Role    Role
}

func (p Principal) HasActor() bool {
	return p.ActorID != 0
}

func (p Principal) HasRole(want Role) bool {
	return p.HasActor() && p.Role == want
}

// OwnsAsActor reports whether the principal's actor owns an entity keyed by
// an actor id. A principal without an actor owns nothing.
func (p Principal) OwnsAsActor(ownerActorID uint) bool {
	return p.HasActor() && p.ActorID == ownerActorID
}

// OwnsAsUser reports whether the principal owns an entity keyed by a user id.
func (p Principal) OwnsAsUser(ownerUserID uint) bool {
	return p.UserID != 0 && p.UserID == ownerUserID
}
