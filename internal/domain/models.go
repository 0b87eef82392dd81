package domain

import (
	"time"
)

// MetricType is a category of economic measurement tracked per company per period
type MetricType string

const (
	MetricOutput     MetricType = "output"
	MetricCapacity   MetricType = "capacity"
	MetricTax        MetricType = "tax"
	MetricInvestment MetricType = "investment"
	MetricAddedValue MetricType = "added_value"
)

// AllMetricTypes lists metric types in their fixed reporting order
var AllMetricTypes = []MetricType{
	MetricOutput,
	MetricCapacity,
	MetricTax,
	MetricInvestment,
	MetricAddedValue,
}

// Valid reports whether t is one of the known metric types
func (t MetricType) Valid() bool {
	switch t {
	case MetricOutput, MetricCapacity, MetricTax, MetricInvestment, MetricAddedValue:
		return true
	}
	return false
}

// Label returns the human-readable column label for the metric type
func (t MetricType) Label() string {
	switch t {
	case MetricOutput:
		return "Output"
	case MetricCapacity:
		return "Capacity"
	case MetricTax:
		return "Tax"
	case MetricInvestment:
		return "Investment"
	case MetricAddedValue:
		return "Added Value"
	}
	return string(t)
}

// ContactRole classifies a company contact
type ContactRole string

const (
	ContactRoleLegal     ContactRole = "legal"
	ContactRoleSecretary ContactRole = "secretary"
	ContactRoleDaily     ContactRole = "daily"
)

// Valid reports whether r is one of the known contact roles
func (r ContactRole) Valid() bool {
	return r == ContactRoleLegal || r == ContactRoleSecretary || r == ContactRoleDaily
}

// ProjectStatus is a conventional status tag; the data layer does not enforce it
type ProjectStatus string

const (
	ProjectStatusUnderConstruction ProjectStatus = "under_construction"
	ProjectStatusInProduction      ProjectStatus = "in_production"
	ProjectStatusPlanned           ProjectStatus = "planned"
)

// Company is the per-company archive record.
// Date fields are free-text in the legacy store and stay strings here.
type Company struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(200);not null;index" json:"name"`
	LegalPerson     string    `gorm:"type:varchar(100);column:legal_person" json:"legalPerson"`
	MainProducts    string    `gorm:"type:varchar(500);column:main_products" json:"mainProducts"`
	ProductModel    string    `gorm:"type:varchar(200);column:product_model" json:"productModel"`
	PartySecretary  string    `gorm:"type:varchar(100);column:party_secretary" json:"partySecretary"`
	TotalInvestment float64   `gorm:"not null;default:0;column:total_investment" json:"totalInvestment"`
	EmployeeCount   int       `gorm:"not null;default:0;column:employee_count" json:"employeeCount"`
	RegisterDate    string    `gorm:"type:varchar(50);column:register_date" json:"registerDate"`
	CompletionDate  string    `gorm:"type:varchar(50);column:completion_date" json:"completionDate"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`

	// Loaded explicitly, never cascaded: deleting a company leaves its
	// children in place (legacy behavior, preserved).
	Contacts []Contact `gorm:"-" json:"contacts,omitempty"`
}

// Contact is a person attached to a company under one of three roles.
// IsPrimary is only meaningful for the daily role.
type Contact struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	CompanyID uint        `gorm:"not null;index;column:company_id" json:"companyId"`
	Role      ContactRole `gorm:"type:varchar(20);not null;column:contact_role;index" json:"role"`
	Name      string      `gorm:"type:varchar(100);not null" json:"name"`
	Position  string      `gorm:"type:varchar(100)" json:"position"`
	Phone     string      `gorm:"type:varchar(50)" json:"phone"`
	IsPrimary bool        `gorm:"not null;default:false;column:is_primary" json:"isPrimary"`
	CreatedAt time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// Project holds a company's construction project. One project per company by
// convention: lookups take the first match, there is no unique constraint.
type Project struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	CompanyID        uint          `gorm:"not null;index;column:company_id" json:"companyId"`
	Name             string        `gorm:"type:varchar(200);column:project_name" json:"name"`
	Description      string        `gorm:"type:text;column:project_description" json:"description"`
	TotalInvestment  float64       `gorm:"not null;default:0;column:total_investment" json:"totalInvestment"`
	DesignCapacity   float64       `gorm:"not null;default:0;column:design_capacity" json:"designCapacity"`
	ExpectedCapacity float64       `gorm:"not null;default:0;column:expected_capacity" json:"expectedCapacity"`
	ActualCapacity   float64       `gorm:"not null;default:0;column:actual_capacity" json:"actualCapacity"`
	ExpectedOutput   float64       `gorm:"not null;default:0;column:expected_output" json:"expectedOutput"`
	ActualOutput     float64       `gorm:"not null;default:0;column:actual_output" json:"actualOutput"`
	Status           ProjectStatus `gorm:"type:varchar(30);column:project_status" json:"status"`
	StartDate        string        `gorm:"type:varchar(50);column:start_date" json:"startDate"`
	ProductionDate   string        `gorm:"type:varchar(50);column:production_date" json:"productionDate"`
	CreatedAt        time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt        time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// ProgressUpdate is a dated free-text note on a project, newest first
type ProgressUpdate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProjectID  uint      `gorm:"not null;index;column:project_id" json:"projectId"`
	Content    string    `gorm:"type:text;column:progress_content" json:"content"`
	UpdateDate string    `gorm:"type:varchar(50);column:update_date" json:"updateDate"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// MonthlyMetric is one metric value pair for a company/type/year/month key.
// At most one record exists per key; submissions upsert.
type MonthlyMetric struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CompanyID    uint       `gorm:"not null;column:company_id;uniqueIndex:ux_monthly_metric,priority:1" json:"companyId"`
	Type         MetricType `gorm:"type:varchar(20);not null;column:metric_type;uniqueIndex:ux_monthly_metric,priority:2" json:"type"`
	Year         int        `gorm:"not null;uniqueIndex:ux_monthly_metric,priority:3" json:"year"`
	Month        int        `gorm:"not null;uniqueIndex:ux_monthly_metric,priority:4" json:"month"`
	PlannedValue float64    `gorm:"not null;default:0;column:planned_value" json:"plannedValue"`
	ActualValue  float64    `gorm:"not null;default:0;column:actual_value" json:"actualValue"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// AnnualMetric is one metric value pair for a company/type/year key
type AnnualMetric struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CompanyID    uint       `gorm:"not null;column:company_id;uniqueIndex:ux_annual_metric,priority:1" json:"companyId"`
	Type         MetricType `gorm:"type:varchar(20);not null;column:metric_type;uniqueIndex:ux_annual_metric,priority:2" json:"type"`
	Year         int        `gorm:"not null;uniqueIndex:ux_annual_metric,priority:3" json:"year"`
	PlannedValue float64    `gorm:"not null;default:0;column:planned_value" json:"plannedValue"`
	ActualValue  float64    `gorm:"not null;default:0;column:actual_value" json:"actualValue"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}
