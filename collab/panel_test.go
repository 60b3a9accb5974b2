package collab

import (
	"testing"

	"next24/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerCount(list []models.Collaborator) int {
	n := 0
	for _, c := range list {
		if c.Role == models.RoleOwner {
			n++
		}
	}
	return n
}

func TestNewOwner(t *testing.T) {
	owner := NewOwner("trip1", "user1")

	assert.Equal(t, "owner-trip1", owner.ID)
	assert.Equal(t, models.RoleOwner, owner.Role)
	assert.Equal(t, models.StatusAccepted, owner.Status)
}

func TestInvite(t *testing.T) {
	list := []models.Collaborator{NewOwner("trip1", "user1")}

	list, invited, err := Invite(list, "trip1", "friend@example.com", models.RoleEditor)
	require.NoError(t, err)

	assert.Equal(t, "friend@example.com", invited.Email)
	assert.Equal(t, "friend", invited.Name)
	assert.Equal(t, models.RoleEditor, invited.Role)
	assert.Equal(t, models.StatusPending, invited.Status)
	assert.Len(t, list, 2)
	assert.Equal(t, 1, ownerCount(list))
}

func TestInviteValidation(t *testing.T) {
	list := []models.Collaborator{NewOwner("trip1", "user1")}

	_, _, err := Invite(list, "trip1", "", models.RoleEditor)
	assert.Error(t, err)

	_, _, err = Invite(list, "trip1", "   ", models.RoleEditor)
	assert.Error(t, err)

	_, _, err = Invite(list, "trip1", "not-an-email", models.RoleEditor)
	assert.Error(t, err)

	_, _, err = Invite(list, "trip1", "friend@example.com", models.RoleOwner)
	assert.Error(t, err)

	_, _, err = Invite(list, "trip1", "friend@example.com", "superuser")
	assert.Error(t, err)
}

func TestInviteDuplicateUpdatesInPlace(t *testing.T) {
	list := []models.Collaborator{NewOwner("trip1", "user1")}

	list, first, err := Invite(list, "trip1", "friend@example.com", models.RoleViewer)
	require.NoError(t, err)

	list, second, err := Invite(list, "trip1", "friend@example.com", models.RoleEditor)
	require.NoError(t, err)

	assert.Len(t, list, 2)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.RoleEditor, second.Role)
	assert.Equal(t, models.StatusPending, second.Status)
}

func TestChangeRole(t *testing.T) {
	list := []models.Collaborator{NewOwner("trip1", "user1")}
	list, invited, err := Invite(list, "trip1", "friend@example.com", models.RoleViewer)
	require.NoError(t, err)

	require.NoError(t, ChangeRole(list, invited.ID, models.RoleEditor))
	assert.Equal(t, models.RoleEditor, list[1].Role)

	assert.Error(t, ChangeRole(list, invited.ID, models.RoleOwner))
	assert.Error(t, ChangeRole(list, "owner-trip1", models.RoleViewer))
	assert.Error(t, ChangeRole(list, "missing", models.RoleViewer))
	assert.Equal(t, 1, ownerCount(list))
}

func TestRemove(t *testing.T) {
	list := []models.Collaborator{NewOwner("trip1", "user1")}
	list, invited, err := Invite(list, "trip1", "friend@example.com", models.RoleViewer)
	require.NoError(t, err)

	list, err = Remove(list, invited.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = Remove(list, "owner-trip1")
	assert.Error(t, err)

	_, err = Remove(list, "missing")
	assert.Error(t, err)
}

func TestOwnerInvariantUnderSequences(t *testing.T) {
	list := []models.Collaborator{NewOwner("trip1", "user1")}

	var err error
	list, a, _ := Invite(list, "trip1", "a@example.com", models.RoleEditor)
	list, b, _ := Invite(list, "trip1", "b@example.com", models.RoleViewer)
	require.NoError(t, ChangeRole(list, a.ID, models.RoleViewer))
	list, err = Remove(list, b.ID)
	require.NoError(t, err)
	list, _, err = Invite(list, "trip1", "b@example.com", models.RoleEditor)
	require.NoError(t, err)

	assert.Equal(t, 1, ownerCount(list))
	assert.Equal(t, "owner-trip1", list[0].ID)
}

func TestEmails(t *testing.T) {
	list := []models.Collaborator{NewOwner("trip1", "user1")}
	list, _, err := Invite(list, "trip1", "friend@example.com", models.RoleViewer)
	require.NoError(t, err)

	assert.Equal(t, []string{"user1", "friend@example.com"}, Emails(list))
}
