package manager

import (
	"context"
	"fmt"
	"net/url"

	"opsdeck/internal/api"
	"opsdeck/internal/domain"
	"opsdeck/internal/eventbus"
	"opsdeck/internal/listctrl"
)

// Manager is an error-wrapping pass-through over one entity repository.
// It turns repository errors into the result shape the list controller
// consumes and publishes domain events after successful mutations so
// open list views can resynchronize.
type Manager[T any] struct {
	entity string
	repo   *api.Resource[T]
	bus    eventbus.EventBus
	idFn   func(*T) int
	scope  url.Values
}

// New creates a manager for one entity. idFn extracts the server id
// from an item for event publication.
func New[T any](entity string, repo *api.Resource[T], bus eventbus.EventBus, idFn func(*T) int) *Manager[T] {
	return &Manager[T]{
		entity: entity,
		repo:   repo,
		bus:    bus,
		idFn:   idFn,
	}
}

// Entity returns the collection name this manager serves
func (m *Manager[T]) Entity() string { return m.entity }

// SetScope sets extra query params sent with every list fetch,
// e.g. company_id to restrict materials to one company.
func (m *Manager[T]) SetScope(scope url.Values) { m.scope = scope }

// Fetch returns the fetch function the list controller is built on
func (m *Manager[T]) Fetch() listctrl.FetchFunc[T] {
	return func(ctx context.Context, f listctrl.Filters) listctrl.Result[T] {
		items, meta, err := m.repo.List(ctx, api.ListFilters{
			Page:          f.Page,
			Search:        f.Search,
			SortBy:        f.SortBy,
			SortDirection: f.SortDirection,
			Scope:         m.scope,
		})
		if err != nil {
			return listctrl.Failure[T](err.Error())
		}
		return listctrl.Success(items, meta)
	}
}

// Get fetches a single item
func (m *Manager[T]) Get(ctx context.Context, id int) (*T, error) {
	item, err := m.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s %d: %w", m.entity, id, err)
	}
	return item, nil
}

// Create adds a new item and announces it on the bus
func (m *Manager[T]) Create(ctx context.Context, payload any) (*T, error) {
	item, err := m.repo.Create(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", m.entity, err)
	}
	m.bus.Publish(eventbus.EntityCreatedEvent{Entity: m.entity, ID: m.idFn(item)})
	return item, nil
}

// Update modifies an item and announces it on the bus
func (m *Manager[T]) Update(ctx context.Context, id int, payload any) (*T, error) {
	item, err := m.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %d: %w", m.entity, id, err)
	}
	m.bus.Publish(eventbus.EntityUpdatedEvent{Entity: m.entity, ID: id})
	return item, nil
}

// Delete removes an item and announces it on the bus
func (m *Manager[T]) Delete(ctx context.Context, id int) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", m.entity, id, err)
	}
	m.bus.Publish(eventbus.EntityDeletedEvent{Entity: m.entity, ID: id})
	return nil
}

// Managers bundles one manager per entity
type Managers struct {
	Companies    *Manager[domain.Company]
	Materials    *Manager[domain.Material]
	Zones        *Manager[domain.Zone]
	Users        *Manager[domain.User]
	Maintenances *Manager[domain.Maintenance]
	Incidents    *Manager[domain.Incident]
	Cleanings    *Manager[domain.Cleaning]
}

// NewManagers wires a manager over every repository
func NewManagers(repos *api.Repositories, bus eventbus.EventBus) *Managers {
	return &Managers{
		Companies:    New(api.EntityCompanies, repos.Companies, bus, func(v *domain.Company) int { return v.ID }),
		Materials:    New(api.EntityMaterials, repos.Materials, bus, func(v *domain.Material) int { return v.ID }),
		Zones:        New(api.EntityZones, repos.Zones, bus, func(v *domain.Zone) int { return v.ID }),
		Users:        New(api.EntityUsers, repos.Users, bus, func(v *domain.User) int { return v.ID }),
		Maintenances: New(api.EntityMaintenances, repos.Maintenances, bus, func(v *domain.Maintenance) int { return v.ID }),
		Incidents:    New(api.EntityIncidents, repos.Incidents, bus, func(v *domain.Incident) int { return v.ID }),
		Cleanings:    New(api.EntityCleanings, repos.Cleanings, bus, func(v *domain.Cleaning) int { return v.ID }),
	}
}
