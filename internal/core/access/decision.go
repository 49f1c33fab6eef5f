package access

import "tailorspace/internal/core/apperr"

type decisionKind int

const (
	decisionAllowed decisionKind = iota
	decisionForbidden
	decisionNotFound
)

// Decision is the outcome of an authorization check: the entity is missing,
// the principal may proceed, or the principal is denied with a reason that
// becomes the client-visible message.
type Decision struct {
	kind   decisionKind
	reason string
}

func Allow() Decision {
	return Decision{kind: decisionAllowed}
}

func Deny(reason string) Decision {
	return Decision{kind: decisionForbidden, reason: reason}
}

func Missing(reason string) Decision {
	return Decision{kind: decisionNotFound, reason: reason}
}

func (d Decision) Allowed() bool {
	return d.kind == decisionAllowed
}

func (d Decision) Reason() string {
	return d.reason
}

// Err maps the decision to an error kind, nil when allowed.
func (d Decision) Err() error {
	switch d.kind {
	case decisionAllowed:
		return nil
	case decisionNotFound:
		return apperr.NotFound(d.reason)
	default:
		return apperr.Forbidden(d.reason)
	}
}

// DecideActorOwnership runs the existence-then-ownership sequence for an
// entity keyed by an actor id. found is whether the entity exists.
func DecideActorOwnership(p Principal, found bool, ownerActorID uint, missingMsg, denyMsg string) Decision {
	if !found {
		return Missing(missingMsg)
	}
	if !p.OwnsAsActor(ownerActorID) {
		return Deny(denyMsg)
	}
	return Allow()
}

// DecideUserOwnership is DecideActorOwnership for entities keyed by a user id.
func DecideUserOwnership(p Principal, found bool, ownerUserID uint, missingMsg, denyMsg string) Decision {
	if !found {
		return Missing(missingMsg)
	}
	if !p.OwnsAsUser(ownerUserID) {
		return Deny(denyMsg)
	}
	return Allow()
}
