package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventEntityCreated  EventType = "EntityCreated"
	EventEntityUpdated  EventType = "EntityUpdated"
	EventEntityDeleted  EventType = "EntityDeleted"
	EventError          EventType = "Error"
	EventProfileLoaded  EventType = "ProfileLoaded"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventRefreshRequested EventType = "RefreshRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// EntityCreatedEvent is emitted after a create mutation succeeds
type EntityCreatedEvent struct {
	Entity string // e.g. "companies"
	ID     int
}

func (e EntityCreatedEvent) Type() EventType { return EventEntityCreated }

// EntityUpdatedEvent is emitted after an update mutation succeeds
type EntityUpdatedEvent struct {
	Entity string
	ID     int
}

func (e EntityUpdatedEvent) Type() EventType { return EventEntityUpdated }

// EntityDeletedEvent is emitted after a delete mutation succeeds
type EntityDeletedEvent struct {
	Entity string
	ID     int
}

func (e EntityDeletedEvent) Type() EventType { return EventEntityDeleted }

// ErrorEvent is emitted when a background operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ProfileLoadedEvent is emitted once the authenticated profile is fetched
type ProfileLoadedEvent struct {
	Profile Profile
}

func (e ProfileLoadedEvent) Type() EventType { return EventProfileLoaded }

// ConfigLoadedEvent is emitted when the configuration has been loaded
type ConfigLoadedEvent struct {
	ServerURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when the configuration has been saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// RefreshRequestedEvent asks the UI to re-fetch the list for an entity
type RefreshRequestedEvent struct {
	Entity string
}

func (e RefreshRequestedEvent) Type() EventType { return EventRefreshRequested }
