package domain

// Company represents a client company that owns facilities
type Company struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Zone is a physical area inside a company's facility
type Zone struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CompanyID   int    `json:"company_id"`
	CompanyName string `json:"company_name"`
	Floor       string `json:"floor"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Material is a tracked asset assigned to a zone
type Material struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	ZoneID      int    `json:"zone_id"`
	ZoneName    string `json:"zone_name"`
	CompanyID   int    `json:"company_id"`
	Status      string `json:"status"` // operational, maintenance, retired
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// User is an operator or administrator account
type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyID   int    `json:"company_id"`
	CompanyName string `json:"company_name"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Maintenance is a scheduled or completed maintenance job on a material
type Maintenance struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	MaterialID   int    `json:"material_id"`
	MaterialName string `json:"material_name"`
	AssignedTo   string `json:"assigned_to"`
	Status       string `json:"status"` // pending, in_progress, done
	ScheduledAt  string `json:"scheduled_at"`
	CompletedAt  string `json:"completed_at"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Incident is a reported problem in a zone or on a material
type Incident struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ZoneID       int    `json:"zone_id"`
	ZoneName     string `json:"zone_name"`
	MaterialID   int    `json:"material_id"`
	MaterialName string `json:"material_name"`
	Severity     string `json:"severity"` // low, medium, high, critical
	Status       string `json:"status"`   // open, in_progress, resolved
	ReportedBy   string `json:"reported_by"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Cleaning is a cleaning task performed in a zone
type Cleaning struct {
	ID          int    `json:"id"`
	ZoneID      int    `json:"zone_id"`
	ZoneName    string `json:"zone_name"`
	PerformedBy string `json:"performed_by"`
	Notes       string `json:"notes"`
	Status      string `json:"status"` // scheduled, done, skipped
	ScheduledAt string `json:"scheduled_at"`
	PerformedAt string `json:"performed_at"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// PageMeta is the pagination envelope the backend returns with every list.
// The list controller stores it untouched; only the views read it.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Profile describes the authenticated user and the actions the server
// allows them to perform. Permission evaluation happens server-side;
// the client only consumes the resulting capability list.
type Profile struct {
	User        User     `json:"user"`
	Permissions []string `json:"permissions"`
}

// Can reports whether the profile carries the given capability,
// e.g. "companies.create" or "materials.delete".
func (p *Profile) Can(capability string) bool {
	for _, perm := range p.Permissions {
		if perm == capability || perm == "*" {
			return true
		}
	}
	return false
}
