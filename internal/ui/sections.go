package ui

import (
	"strconv"
	"time"

	"opsdeck/internal/domain"
	"opsdeck/internal/manager"
	"opsdeck/internal/ui/views"
)

// yesNo renders a boolean flag for table cells and detail fields
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// newSections builds one list view per entity, in tab order
func newSections(mgrs *manager.Managers, caps *manager.ProfileManager, styles *views.Styles, pager *PagerOps, debounce time.Duration) []section {
	return []section{
		newListView(companySpec(), mgrs.Companies, caps, styles, pager, debounce),
		newListView(zoneSpec(), mgrs.Zones, caps, styles, pager, debounce),
		newListView(materialSpec(), mgrs.Materials, caps, styles, pager, debounce),
		newListView(userSpec(), mgrs.Users, caps, styles, pager, debounce),
		newListView(maintenanceSpec(), mgrs.Maintenances, caps, styles, pager, debounce),
		newListView(incidentSpec(), mgrs.Incidents, caps, styles, pager, debounce),
		newListView(cleaningSpec(), mgrs.Cleanings, caps, styles, pager, debounce),
	}
}

func companySpec() Spec[domain.Company] {
	return Spec[domain.Company]{
		Entity: "companies",
		Title:  "Companies",
		Columns: []views.Column{
			{Title: "Name", Field: "name", Width: 28},
			{Title: "Tax ID", Field: "tax_id", Width: 14},
			{Title: "Email", Field: "email", Width: 26},
			{Title: "Phone", Field: "", Width: 14},
			{Title: "Active", Field: "active", Width: 8},
		},
		Cells: func(c domain.Company) []string {
			return []string{c.Name, c.TaxID, c.Email, c.Phone, yesNo(c.Active)}
		},
		ID:    func(c domain.Company) int { return c.ID },
		Label: func(c domain.Company) string { return c.Name },
		Detail: func(c domain.Company) []views.Field {
			return []views.Field{
				{Label: "Name", Value: c.Name},
				{Label: "Tax ID", Value: c.TaxID},
				{Label: "Address", Value: c.Address},
				{Label: "Phone", Value: c.Phone},
				{Label: "Email", Value: c.Email},
				{Label: "Active", Value: yesNo(c.Active)},
				{Label: "Created", Value: c.CreatedAt},
				{Label: "Updated", Value: c.UpdatedAt},
			}
		},
		Form: []FormField{
			{Key: "name", Label: "Name", Required: true},
			{Key: "tax_id", Label: "Tax ID", Required: true},
			{Key: "address", Label: "Address"},
			{Key: "phone", Label: "Phone"},
			{Key: "email", Label: "Email", Placeholder: "billing@example.com"},
		},
		FormValue: func(c domain.Company, key string) string {
			switch key {
			case "name":
				return c.Name
			case "tax_id":
				return c.TaxID
			case "address":
				return c.Address
			case "phone":
				return c.Phone
			case "email":
				return c.Email
			}
			return ""
		},
	}
}

func zoneSpec() Spec[domain.Zone] {
	return Spec[domain.Zone]{
		Entity: "zones",
		Title:  "Zones",
		Columns: []views.Column{
			{Title: "Name", Field: "name", Width: 24},
			{Title: "Company", Field: "company_id", Width: 22},
			{Title: "Floor", Field: "floor", Width: 10},
			{Title: "Description", Field: "", Width: 32},
		},
		Cells: func(z domain.Zone) []string {
			return []string{z.Name, z.CompanyName, z.Floor, z.Description}
		},
		ID:    func(z domain.Zone) int { return z.ID },
		Label: func(z domain.Zone) string { return z.Name },
		Detail: func(z domain.Zone) []views.Field {
			return []views.Field{
				{Label: "Name", Value: z.Name},
				{Label: "Company", Value: z.CompanyName},
				{Label: "Floor", Value: z.Floor},
				{Label: "Description", Value: z.Description},
				{Label: "Created", Value: z.CreatedAt},
				{Label: "Updated", Value: z.UpdatedAt},
			}
		},
		Form: []FormField{
			{Key: "name", Label: "Name", Required: true},
			{Key: "company_id", Label: "Company ID", Required: true, Placeholder: "numeric id"},
			{Key: "floor", Label: "Floor"},
			{Key: "description", Label: "Description"},
		},
		FormValue: func(z domain.Zone, key string) string {
			switch key {
			case "name":
				return z.Name
			case "company_id":
				return strconv.Itoa(z.CompanyID)
			case "floor":
				return z.Floor
			case "description":
				return z.Description
			}
			return ""
		},
	}
}

func materialSpec() Spec[domain.Material] {
	return Spec[domain.Material]{
		Entity: "materials",
		Title:  "Materials",
		Columns: []views.Column{
			{Title: "Name", Field: "name", Width: 24},
			{Title: "Code", Field: "code", Width: 12},
			{Title: "Zone", Field: "zone_id", Width: 18},
			{Title: "Status", Field: "status", Width: 14, Badge: true},
		},
		Cells: func(m domain.Material) []string {
			return []string{m.Name, m.Code, m.ZoneName, m.Status}
		},
		ID:    func(m domain.Material) int { return m.ID },
		Label: func(m domain.Material) string { return m.Name },
		Detail: func(m domain.Material) []views.Field {
			return []views.Field{
				{Label: "Name", Value: m.Name},
				{Label: "Code", Value: m.Code},
				{Label: "Zone", Value: m.ZoneName},
				{Label: "Status", Value: m.Status},
				{Label: "Description", Value: m.Description},
				{Label: "Created", Value: m.CreatedAt},
				{Label: "Updated", Value: m.UpdatedAt},
			}
		},
		Form: []FormField{
			{Key: "name", Label: "Name", Required: true},
			{Key: "code", Label: "Code", Required: true},
			{Key: "zone_id", Label: "Zone ID", Required: true, Placeholder: "numeric id"},
			{Key: "status", Label: "Status", Placeholder: "operational / maintenance / retired"},
			{Key: "description", Label: "Description"},
		},
		FormValue: func(m domain.Material, key string) string {
			switch key {
			case "name":
				return m.Name
			case "code":
				return m.Code
			case "zone_id":
				return strconv.Itoa(m.ZoneID)
			case "status":
				return m.Status
			case "description":
				return m.Description
			}
			return ""
		},
	}
}

func userSpec() Spec[domain.User] {
	return Spec[domain.User]{
		Entity: "users",
		Title:  "Users",
		Columns: []views.Column{
			{Title: "Name", Field: "name", Width: 22},
			{Title: "Email", Field: "email", Width: 28},
			{Title: "Role", Field: "role", Width: 12},
			{Title: "Company", Field: "company_id", Width: 20},
			{Title: "Active", Field: "active", Width: 8},
		},
		Cells: func(u domain.User) []string {
			return []string{u.Name, u.Email, u.Role, u.CompanyName, yesNo(u.Active)}
		},
		ID:    func(u domain.User) int { return u.ID },
		Label: func(u domain.User) string { return u.Name },
		Detail: func(u domain.User) []views.Field {
			return []views.Field{
				{Label: "Name", Value: u.Name},
				{Label: "Email", Value: u.Email},
				{Label: "Role", Value: u.Role},
				{Label: "Company", Value: u.CompanyName},
				{Label: "Active", Value: yesNo(u.Active)},
				{Label: "Created", Value: u.CreatedAt},
				{Label: "Updated", Value: u.UpdatedAt},
			}
		},
		Form: []FormField{
			{Key: "name", Label: "Name", Required: true},
			{Key: "email", Label: "Email", Required: true},
			{Key: "role", Label: "Role", Placeholder: "admin / operator / viewer"},
			{Key: "company_id", Label: "Company ID", Placeholder: "numeric id"},
		},
		FormValue: func(u domain.User, key string) string {
			switch key {
			case "name":
				return u.Name
			case "email":
				return u.Email
			case "role":
				return u.Role
			case "company_id":
				return strconv.Itoa(u.CompanyID)
			}
			return ""
		},
	}
}

func maintenanceSpec() Spec[domain.Maintenance] {
	return Spec[domain.Maintenance]{
		Entity: "maintenances",
		Title:  "Maintenances",
		Columns: []views.Column{
			{Title: "Title", Field: "title", Width: 26},
			{Title: "Material", Field: "material_id", Width: 20},
			{Title: "Assigned", Field: "assigned_to", Width: 16},
			{Title: "Status", Field: "status", Width: 12, Badge: true},
			{Title: "Scheduled", Field: "scheduled_at", Width: 16},
		},
		Cells: func(m domain.Maintenance) []string {
			return []string{m.Title, m.MaterialName, m.AssignedTo, m.Status, m.ScheduledAt}
		},
		ID:    func(m domain.Maintenance) int { return m.ID },
		Label: func(m domain.Maintenance) string { return m.Title },
		Detail: func(m domain.Maintenance) []views.Field {
			return []views.Field{
				{Label: "Title", Value: m.Title},
				{Label: "Material", Value: m.MaterialName},
				{Label: "Assigned to", Value: m.AssignedTo},
				{Label: "Status", Value: m.Status},
				{Label: "Scheduled", Value: m.ScheduledAt},
				{Label: "Completed", Value: m.CompletedAt},
				{Label: "Created", Value: m.CreatedAt},
			}
		},
		LongText: func(m domain.Maintenance) (string, string) {
			return "Maintenance: " + m.Title, m.Description
		},
		Form: []FormField{
			{Key: "title", Label: "Title", Required: true},
			{Key: "material_id", Label: "Material ID", Required: true, Placeholder: "numeric id"},
			{Key: "assigned_to", Label: "Assigned to"},
			{Key: "status", Label: "Status", Placeholder: "pending / in_progress / done"},
			{Key: "scheduled_at", Label: "Scheduled at", Placeholder: "2026-01-31 09:00"},
			{Key: "description", Label: "Description"},
		},
		FormValue: func(m domain.Maintenance, key string) string {
			switch key {
			case "title":
				return m.Title
			case "material_id":
				return strconv.Itoa(m.MaterialID)
			case "assigned_to":
				return m.AssignedTo
			case "status":
				return m.Status
			case "scheduled_at":
				return m.ScheduledAt
			case "description":
				return m.Description
			}
			return ""
		},
	}
}

func incidentSpec() Spec[domain.Incident] {
	return Spec[domain.Incident]{
		Entity: "incidents",
		Title:  "Incidents",
		Columns: []views.Column{
			{Title: "Title", Field: "title", Width: 26},
			{Title: "Zone", Field: "zone_id", Width: 16},
			{Title: "Severity", Field: "severity", Width: 10, Badge: true},
			{Title: "Status", Field: "status", Width: 13, Badge: true},
			{Title: "Reported by", Field: "", Width: 16},
		},
		Cells: func(i domain.Incident) []string {
			return []string{i.Title, i.ZoneName, i.Severity, i.Status, i.ReportedBy}
		},
		ID:    func(i domain.Incident) int { return i.ID },
		Label: func(i domain.Incident) string { return i.Title },
		Detail: func(i domain.Incident) []views.Field {
			return []views.Field{
				{Label: "Title", Value: i.Title},
				{Label: "Zone", Value: i.ZoneName},
				{Label: "Material", Value: i.MaterialName},
				{Label: "Severity", Value: i.Severity},
				{Label: "Status", Value: i.Status},
				{Label: "Reported by", Value: i.ReportedBy},
				{Label: "Created", Value: i.CreatedAt},
				{Label: "Updated", Value: i.UpdatedAt},
			}
		},
		LongText: func(i domain.Incident) (string, string) {
			return "Incident: " + i.Title, i.Description
		},
		Form: []FormField{
			{Key: "title", Label: "Title", Required: true},
			{Key: "zone_id", Label: "Zone ID", Required: true, Placeholder: "numeric id"},
			{Key: "material_id", Label: "Material ID", Placeholder: "numeric id, optional"},
			{Key: "severity", Label: "Severity", Placeholder: "low / medium / high / critical"},
			{Key: "status", Label: "Status", Placeholder: "open / in_progress / resolved"},
			{Key: "description", Label: "Description"},
		},
		FormValue: func(i domain.Incident, key string) string {
			switch key {
			case "title":
				return i.Title
			case "zone_id":
				return strconv.Itoa(i.ZoneID)
			case "material_id":
				return strconv.Itoa(i.MaterialID)
			case "severity":
				return i.Severity
			case "status":
				return i.Status
			case "description":
				return i.Description
			}
			return ""
		},
	}
}

func cleaningSpec() Spec[domain.Cleaning] {
	return Spec[domain.Cleaning]{
		Entity: "cleanings",
		Title:  "Cleanings",
		Columns: []views.Column{
			{Title: "Zone", Field: "zone_id", Width: 20},
			{Title: "Performed by", Field: "performed_by", Width: 18},
			{Title: "Status", Field: "status", Width: 12, Badge: true},
			{Title: "Scheduled", Field: "scheduled_at", Width: 16},
			{Title: "Performed", Field: "performed_at", Width: 16},
		},
		Cells: func(c domain.Cleaning) []string {
			return []string{c.ZoneName, c.PerformedBy, c.Status, c.ScheduledAt, c.PerformedAt}
		},
		ID:    func(c domain.Cleaning) int { return c.ID },
		Label: func(c domain.Cleaning) string { return "cleaning of " + c.ZoneName },
		Detail: func(c domain.Cleaning) []views.Field {
			return []views.Field{
				{Label: "Zone", Value: c.ZoneName},
				{Label: "Performed by", Value: c.PerformedBy},
				{Label: "Status", Value: c.Status},
				{Label: "Scheduled", Value: c.ScheduledAt},
				{Label: "Performed", Value: c.PerformedAt},
				{Label: "Notes", Value: c.Notes},
				{Label: "Created", Value: c.CreatedAt},
			}
		},
		LongText: func(c domain.Cleaning) (string, string) {
			return "Cleaning notes: " + c.ZoneName, c.Notes
		},
		Form: []FormField{
			{Key: "zone_id", Label: "Zone ID", Required: true, Placeholder: "numeric id"},
			{Key: "performed_by", Label: "Performed by"},
			{Key: "status", Label: "Status", Placeholder: "scheduled / done / skipped"},
			{Key: "scheduled_at", Label: "Scheduled at", Placeholder: "2026-01-31 09:00"},
			{Key: "notes", Label: "Notes"},
		},
		FormValue: func(c domain.Cleaning, key string) string {
			switch key {
			case "zone_id":
				return strconv.Itoa(c.ZoneID)
			case "performed_by":
				return c.PerformedBy
			case "status":
				return c.Status
			case "scheduled_at":
				return c.ScheduledAt
			case "notes":
				return c.Notes
			}
			return ""
		},
	}
}
