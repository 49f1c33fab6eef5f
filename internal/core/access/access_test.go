package access

import (
	"testing"

	"tailorspace/internal/core/apperr"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"TAILOR", RoleTailor, true},
		{"VENDOR", RoleVendor, true},
		{"PLUMBER", "", false},
		{"tailor", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseRole(tc.in)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPrincipalOwnership(t *testing.T) {
	withActor := Principal{UserID: 7, ActorID: 5, Role: RoleTailor}
	withoutActor := Principal{UserID: 7}

	require.True(t, withActor.OwnsAsActor(5))
	require.False(t, withActor.OwnsAsActor(9))
	require.False(t, withoutActor.OwnsAsActor(5))
	// A zero owner id never matches a principal without an actor.
	require.False(t, withoutActor.OwnsAsActor(0))

	require.True(t, withActor.OwnsAsUser(7))
	require.False(t, withActor.OwnsAsUser(8))
	require.False(t, Principal{}.OwnsAsUser(0))
}

func TestPrincipalRoles(t *testing.T) {
	tailor := Principal{UserID: 1, ActorID: 2, Role: RoleTailor}
	vendor := Principal{UserID: 3, ActorID: 4, Role: RoleVendor}
	plain := Principal{UserID: 5}

	require.True(t, tailor.HasRole(RoleTailor))
	require.False(t, tailor.HasRole(RoleVendor))
	require.True(t, vendor.HasRole(RoleVendor))
	require.False(t, plain.HasRole(RoleTailor))
	require.False(t, plain.HasActor())
}

func TestDecideActorOwnership(t *testing.T) {
	owner := Principal{UserID: 1, ActorID: 5, Role: RoleTailor}
	stranger := Principal{UserID: 2, ActorID: 9, Role: RoleVendor}

	tests := []struct {
		name     string
		p        Principal
		found    bool
		ownerID  uint
		wantKind apperr.Kind
		allowed  bool
	}{
		{"owner allowed", owner, true, 5, 0, true},
		{"stranger denied", stranger, true, 5, apperr.KindForbidden, false},
		{"missing entity", owner, false, 0, apperr.KindNotFound, false},
		{"no actor denied", Principal{UserID: 3}, true, 5, apperr.KindForbidden, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := DecideActorOwnership(tc.p, tc.found, tc.ownerID, "not found", "denied")
			require.Equal(t, tc.allowed, d.Allowed())
			if tc.allowed {
				require.NoError(t, d.Err())
				return
			}
			require.Error(t, d.Err())
			require.Equal(t, tc.wantKind, apperr.KindOf(d.Err()))
		})
	}
}

func TestDecisionMessages(t *testing.T) {
	d := DecideUserOwnership(Principal{UserID: 2}, true, 1, "Comment not found", "You can't delete this comment")
	require.EqualError(t, d.Err(), "You can't delete this comment")

	d = DecideUserOwnership(Principal{UserID: 2}, false, 0, "Comment not found", "You can't delete this comment")
	require.EqualError(t, d.Err(), "Comment not found")
}
