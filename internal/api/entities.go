package api

import "opsdeck/internal/domain"

// Entity collection names as the backend exposes them
const (
	EntityCompanies    = "companies"
	EntityMaterials    = "materials"
	EntityZones        = "zones"
	EntityUsers        = "users"
	EntityMaintenances = "maintenances"
	EntityIncidents    = "incidents"
	EntityCleanings    = "cleanings"
)

// Repositories bundles the typed repository for every entity
type Repositories struct {
	Companies    *Resource[domain.Company]
	Materials    *Resource[domain.Material]
	Zones        *Resource[domain.Zone]
	Users        *Resource[domain.User]
	Maintenances *Resource[domain.Maintenance]
	Incidents    *Resource[domain.Incident]
	Cleanings    *Resource[domain.Cleaning]
}

// NewRepositories creates repositories for all entities over one client
func NewRepositories(c *Client) *Repositories {
	return &Repositories{
		Companies:    NewResource[domain.Company](c, EntityCompanies),
		Materials:    NewResource[domain.Material](c, EntityMaterials),
		Zones:        NewResource[domain.Zone](c, EntityZones),
		Users:        NewResource[domain.User](c, EntityUsers),
		Maintenances: NewResource[domain.Maintenance](c, EntityMaintenances),
		Incidents:    NewResource[domain.Incident](c, EntityIncidents),
		Cleanings:    NewResource[domain.Cleaning](c, EntityCleanings),
	}
}
