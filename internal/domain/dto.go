package domain

// APIResponse is the legacy mutation envelope. Failures keep HTTP 200 with
// Success=false; clients key off the envelope, not the status code.
type APIResponse struct {
	Message   string `json:"message"`
	Success   bool   `json:"success"`
	CompanyID *uint  `json:"company_id,omitempty"`
}

// ContactInput is a nested contact on company creation
type ContactInput struct {
	Role      ContactRole `json:"type" validate:"required,oneof=legal secretary daily"`
	Name      string      `json:"name" validate:"required,max=100"`
	Position  string      `json:"position" validate:"max=100"`
	Phone     string      `json:"phone" validate:"max=50"`
	IsPrimary bool        `json:"is_primary"`
}

// CreateCompanyRequest creates a company plus its nested contacts
type CreateCompanyRequest struct {
	Name            string         `json:"name" validate:"required,max=200"`
	LegalPerson     string         `json:"legal_person" validate:"max=100"`
	MainProducts    string         `json:"main_products" validate:"max=500"`
	ProductModel    string         `json:"product_model" validate:"max=200"`
	PartySecretary  string         `json:"party_secretary" validate:"max=100"`
	TotalInvestment float64        `json:"total_investment" validate:"gte=0"`
	EmployeeCount   int            `json:"employee_count" validate:"gte=0"`
	RegisterDate    string         `json:"register_date" validate:"max=50"`
	CompletionDate  string         `json:"completion_date" validate:"max=50"`
	Contacts        []ContactInput `json:"contacts" validate:"dive"`
}

// CreateContactRequest adds a single contact to an existing company
type CreateContactRequest struct {
	CompanyID uint        `json:"company_id" validate:"required"`
	Role      ContactRole `json:"contact_type" validate:"required,oneof=legal secretary daily"`
	Name      string      `json:"name" validate:"required,max=100"`
	Position  string      `json:"position" validate:"max=100"`
	Phone     string      `json:"phone" validate:"max=50"`
	IsPrimary bool        `json:"is_primary"`
}

// UpdateContactRequest updates name, position, and phone of a contact
type UpdateContactRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Position string `json:"position" validate:"max=100"`
	Phone    string `json:"phone" validate:"max=50"`
}

// UpsertProjectRequest inserts or updates the project keyed by company
type UpsertProjectRequest struct {
	CompanyID        uint          `json:"company_id" validate:"required"`
	Name             string        `json:"project_name" validate:"max=200"`
	Description      string        `json:"project_description"`
	TotalInvestment  float64       `json:"total_investment"`
	DesignCapacity   float64       `json:"design_capacity"`
	ExpectedCapacity float64       `json:"expected_capacity"`
	ActualCapacity   float64       `json:"actual_capacity"`
	ExpectedOutput   float64       `json:"expected_output"`
	ActualOutput     float64       `json:"actual_output"`
	Status           ProjectStatus `json:"project_status"`
	StartDate        string        `json:"start_date" validate:"max=50"`
	ProductionDate   string        `json:"production_date" validate:"max=50"`
}

// CreateProgressRequest adds a progress note to a project
type CreateProgressRequest struct {
	ProjectID  uint   `json:"project_id" validate:"required"`
	Content    string `json:"progress_content" validate:"required"`
	UpdateDate string `json:"update_date" validate:"max=50"`
}

// MonthlyMetricInput is one monthly upsert entry
type MonthlyMetricInput struct {
	CompanyID    uint       `json:"company_id" validate:"required"`
	Type         MetricType `json:"data_type" validate:"required,oneof=output capacity tax investment added_value"`
	Year         int        `json:"year" validate:"required"`
	Month        int        `json:"month" validate:"required"`
	PlannedValue float64    `json:"planned_value"`
	ActualValue  float64    `json:"actual_value"`
}

// AnnualMetricInput is one annual upsert entry
type AnnualMetricInput struct {
	CompanyID    uint       `json:"company_id" validate:"required"`
	Type         MetricType `json:"data_type" validate:"required,oneof=output capacity tax investment added_value"`
	Year         int        `json:"year" validate:"required"`
	PlannedValue float64    `json:"planned_value"`
	ActualValue  float64    `json:"actual_value"`
}

// EconomicDataBatch carries monthly and/or annual upserts in one request
type EconomicDataBatch struct {
	Monthly []MonthlyMetricInput `json:"monthly" validate:"dive"`
	Annual  []AnnualMetricInput  `json:"annual" validate:"dive"`
}

// CompanySummary is the id/name listing entry
type CompanySummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CompanyOverview is one dashboard row: the company plus the phone of its
// primary daily contact, when one exists
type CompanyOverview struct {
	Company
	ContactPhone string `json:"contactPhone"`
}

// PlannedActual is a planned/actual value pair
type PlannedActual struct {
	Planned float64 `json:"planned"`
	Actual  float64 `json:"actual"`
}

// CompanyDetailView backs the company archive page
type CompanyDetailView struct {
	Company      Company                `json:"company"`
	Year         int                    `json:"year"`
	AnnualTotals map[MetricType]float64 `json:"annualTotals"`
	Project      *Project               `json:"project,omitempty"`
}

// DirectoryEntry is one contact-directory row
type DirectoryEntry struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"companyName"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
}

// MonthCell holds the four values shown per metric per month
type MonthCell struct {
	Planned           float64 `json:"planned"`
	Actual            float64 `json:"actual"`
	CumulativePlanned float64 `json:"cumulativePlanned"`
	CumulativeActual  float64 `json:"cumulativeActual"`
}

// MonthRow is one row of the 12-month economic table
type MonthRow struct {
	Month   int                      `json:"month"`
	Metrics map[MetricType]MonthCell `json:"metrics"`
}

// QuarterCell is one quarterly aggregate
type QuarterCell struct {
	Quarter    int     `json:"quarter"`
	PlannedSum float64 `json:"plannedSum"`
	ActualSum  float64 `json:"actualSum"`
}

// ChartSeries is the chart payload for the selected metric type
type ChartSeries struct {
	Months           []int     `json:"months"`
	Planned          []float64 `json:"planned"`
	Actual           []float64 `json:"actual"`
	CumulativeActual []float64 `json:"cumulativeActual"`
}

// EconomicView backs the per-company economic data page
type EconomicView struct {
	Company   Company                      `json:"company"`
	Year      int                          `json:"year"`
	Type      MetricType                   `json:"type"`
	Table     []MonthRow                   `json:"table"`
	Quarterly map[MetricType][]QuarterCell `json:"quarterly"`
	Chart     ChartSeries                  `json:"chart"`
	Years     []int                        `json:"years"`
}

// ProjectView backs the project page
type ProjectView struct {
	Company  Company          `json:"company"`
	Project  *Project         `json:"project,omitempty"`
	Progress []ProgressUpdate `json:"progress"`
}

// AnnualComparisonView backs the multi-year comparison page
type AnnualComparisonView struct {
	Company    Company                            `json:"company"`
	Years      []int                              `json:"years"`
	Comparison map[MetricType]map[int]PlannedActual `json:"comparison"`
}

// ComprehensiveEntry is one metric's month/cumulative values with growth rates
// versus the same period one year prior
type ComprehensiveEntry struct {
	CurrentMonthValue    float64 `json:"currentMonthValue"`
	CumulativeValue      float64 `json:"cumulativeValue"`
	MonthGrowthRate      float64 `json:"monthGrowthRate"`
	CumulativeGrowthRate float64 `json:"cumulativeGrowthRate"`
}

// ComprehensiveView backs the month-over-month / year-over-year dashboard
type ComprehensiveView struct {
	Company Company                           `json:"company"`
	Year    int                               `json:"year"`
	Month   int                               `json:"month"`
	Metrics map[MetricType]ComprehensiveEntry `json:"metrics"`
}

// ContactExportRequest selects which directory to export
type ContactExportRequest struct {
	Type string `json:"type"`
}

// CustomExportRequest drives the free-form field export: one row per
// selected company, columns chosen by field key
type CustomExportRequest struct {
	CompanyIDs     []uint   `json:"company_ids"`
	SelectedFields []string `json:"selected_fields"`
	Format         string   `json:"format"`
}

// MetricWindow is one metric's time window in an advanced export.
// TimeType is monthly, quarterly, or annual; Month and Quarter apply to
// their respective granularities.
type MetricWindow struct {
	Selected bool   `json:"selected"`
	TimeType string `json:"time_type"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Quarter  int    `json:"quarter"`
}

// AdvancedExportRequest drives the grouped-field export with per-metric
// time windows
type AdvancedExportRequest struct {
	CompanyIDs    []uint                      `json:"company_ids"`
	Format        string                      `json:"format"`
	BasicFields   []string                    `json:"basic_fields"`
	TimeFields    []string                    `json:"time_fields"`
	ProjectFields []string                    `json:"project_fields"`
	EconomicData  map[MetricType]MetricWindow `json:"economic_data"`
}

// ExportFieldGroup describes one selectable field group on the export page
type ExportFieldGroup struct {
	Group  string   `json:"group"`
	Fields []string `json:"fields"`
}

// ExportConfigView backs the export configuration page
type ExportConfigView struct {
	Companies []CompanySummary   `json:"companies"`
	Fields    []ExportFieldGroup `json:"fields"`
	Formats   []string           `json:"formats"`
}
