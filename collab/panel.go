package collab

import (
	"fmt"
	"strings"
	"time"

	"next24/models"
	"next24/utils"
)

// Membership rules for one itinerary's collaborator list. Every path keeps
// the invariant: exactly one collaborator holds the owner role.

// NewOwner builds the owner record created together with the itinerary.
func NewOwner(itineraryID, userID string) models.Collaborator {
	return models.Collaborator{
		ID:          "owner-" + itineraryID,
		ItineraryID: itineraryID,
		Email:       userID,
		Name:        "You",
		Role:        models.RoleOwner,
		Status:      models.StatusAccepted,
		JoinedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// Invite grants editor or viewer access by email. Owner cannot be granted.
// Re-inviting a known email updates the role and resets the record to
// pending instead of duplicating it.
func Invite(list []models.Collaborator, itineraryID, email, role string) ([]models.Collaborator, models.Collaborator, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return list, models.Collaborator{}, fmt.Errorf("email is required")
	}
	if !utils.ValidateEmail(email) {
		return list, models.Collaborator{}, fmt.Errorf("invalid email address")
	}
	if role != models.RoleEditor && role != models.RoleViewer {
		return list, models.Collaborator{}, fmt.Errorf("role must be editor or viewer")
	}

	for i, c := range list {
		if c.Email != email {
			continue
		}
		if c.Role == models.RoleOwner {
			return list, models.Collaborator{}, fmt.Errorf("cannot invite the owner")
		}
		list[i].Role = role
		list[i].Status = models.StatusPending
		return list, list[i], nil
	}

	c := models.Collaborator{
		ID:          "collab-" + utils.GenerateRandomString(10),
		ItineraryID: itineraryID,
		Email:       email,
		Name:        email[:strings.Index(email, "@")],
		Role:        role,
		Status:      models.StatusPending,
		JoinedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	return append(list, c), c, nil
}

// ChangeRole switches a collaborator between editor and viewer. The owner
// can neither be demoted nor can ownership be granted.
func ChangeRole(list []models.Collaborator, collaboratorID, role string) error {
	if role != models.RoleEditor && role != models.RoleViewer {
		return fmt.Errorf("role must be editor or viewer")
	}
	for i, c := range list {
		if c.ID != collaboratorID {
			continue
		}
		if c.Role == models.RoleOwner {
			return fmt.Errorf("owner role cannot be changed")
		}
		list[i].Role = role
		return nil
	}
	return fmt.Errorf("collaborator not found")
}

// Remove drops a collaborator. Removing the owner is always rejected.
func Remove(list []models.Collaborator, collaboratorID string) ([]models.Collaborator, error) {
	for i, c := range list {
		if c.ID != collaboratorID {
			continue
		}
		if c.Role == models.RoleOwner {
			return list, fmt.Errorf("owner cannot be removed")
		}
		return append(list[:i], list[i+1:]...), nil
	}
	return list, fmt.Errorf("collaborator not found")
}

// Emails is the read-only flat projection the planner header displays.
func Emails(list []models.Collaborator) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Email)
	}
	return out
}
