package manager

import (
	"context"
	"fmt"

	"opsdeck/internal/api"
	"opsdeck/internal/domain"
	"opsdeck/internal/eventbus"
)

// ProfileManager loads and caches the authenticated user's capability
// list. Evaluation stays on the server; the UI only asks Can().
type ProfileManager struct {
	client  *api.Client
	bus     eventbus.EventBus
	profile *domain.Profile
}

// NewProfileManager creates a profile manager
func NewProfileManager(client *api.Client, bus eventbus.EventBus) *ProfileManager {
	return &ProfileManager{client: client, bus: bus}
}

// Load fetches the profile from the server
func (pm *ProfileManager) Load(ctx context.Context) error {
	profile, err := pm.client.Profile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	pm.profile = profile
	pm.bus.Publish(eventbus.ProfileLoadedEvent{Profile: *profile})
	return nil
}

// Set replaces the cached profile (used when the profile arrives as an event)
func (pm *ProfileManager) Set(profile domain.Profile) {
	pm.profile = &profile
}

// Can reports whether the current user has the given capability.
// With no profile loaded everything is allowed; the server still
// rejects unauthorized mutations.
func (pm *ProfileManager) Can(capability string) bool {
	if pm.profile == nil {
		return true
	}
	return pm.profile.Can(capability)
}

// User returns the authenticated user, if loaded
func (pm *ProfileManager) User() *domain.User {
	if pm.profile == nil {
		return nil
	}
	return &pm.profile.User
}
