package service

import (
	"fmt"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/export"
)

// FieldKey identifies one exportable column set. Keys are a closed set;
// unknown keys in a request are ignored.
type FieldKey string

const (
	FieldCompanyName        FieldKey = "company_name"
	FieldLegalPerson        FieldKey = "legal_person"
	FieldMainProducts       FieldKey = "main_products"
	FieldProductModel       FieldKey = "product_model"
	FieldPartySecretary     FieldKey = "party_secretary"
	FieldTotalInvestment    FieldKey = "total_investment"
	FieldEmployeeCount      FieldKey = "employee_count"
	FieldRegisterDate       FieldKey = "register_date"
	FieldCompletionDate     FieldKey = "completion_date"
	FieldLegalContact       FieldKey = "legal_contact"
	FieldSecretaryContact   FieldKey = "secretary_contact"
	FieldDailyContact       FieldKey = "daily_contact"
	FieldProjectName        FieldKey = "project_name"
	FieldProjectDescription FieldKey = "project_description"
	FieldProjectStatus      FieldKey = "project_status"
	FieldStartDate          FieldKey = "start_date"
	FieldProductionDate     FieldKey = "production_date"
)

// fieldSet is the selection of requested field keys
type fieldSet map[FieldKey]bool

func newFieldSet(keys []string) fieldSet {
	set := make(fieldSet, len(keys))
	for _, k := range keys {
		set[FieldKey(k)] = true
	}
	return set
}

func (s fieldSet) has(key FieldKey) bool { return s[key] }

// companyFields maps field keys to company columns, in output order
var companyFields = []struct {
	key   FieldKey
	label string
	value func(c *domain.Company) interface{}
}{
	{FieldCompanyName, "Company Name", func(c *domain.Company) interface{} { return c.Name }},
	{FieldLegalPerson, "Legal Representative", func(c *domain.Company) interface{} { return c.LegalPerson }},
	{FieldMainProducts, "Main Products", func(c *domain.Company) interface{} { return c.MainProducts }},
	{FieldProductModel, "Product Model", func(c *domain.Company) interface{} { return c.ProductModel }},
	{FieldPartySecretary, "Party Secretary", func(c *domain.Company) interface{} { return c.PartySecretary }},
	{FieldTotalInvestment, "Total Investment", func(c *domain.Company) interface{} { return c.TotalInvestment }},
	{FieldEmployeeCount, "Employee Count", func(c *domain.Company) interface{} { return c.EmployeeCount }},
	{FieldRegisterDate, "Registration Date", func(c *domain.Company) interface{} { return c.RegisterDate }},
	{FieldCompletionDate, "Completion Date", func(c *domain.Company) interface{} { return c.CompletionDate }},
}

// contactFields maps field keys to a name/phone column pair per role.
// The secretary name column deliberately reuses the "Party Secretary"
// label, so a matching contact overwrites the company field in place
// (legacy behavior, preserved).
var contactFields = []struct {
	key         FieldKey
	role        domain.ContactRole
	primaryOnly bool
	nameLabel   string
	phoneLabel  string
}{
	{FieldLegalContact, domain.ContactRoleLegal, false, "Legal Contact", "Legal Contact Phone"},
	{FieldSecretaryContact, domain.ContactRoleSecretary, false, "Party Secretary", "Secretary Phone"},
	{FieldDailyContact, domain.ContactRoleDaily, true, "Daily Contact", "Daily Contact Phone"},
}

// projectFields maps field keys to project columns, in output order. The
// block only renders when a project exists and at least one of name,
// description, or status is selected; total_investment doubles as both a
// company and a project key.
var projectFields = []struct {
	key   FieldKey
	label string
	value func(p *domain.Project) interface{}
}{
	{FieldProjectName, "Project Name", func(p *domain.Project) interface{} { return p.Name }},
	{FieldProjectDescription, "Project Description", func(p *domain.Project) interface{} { return p.Description }},
	{FieldProjectStatus, "Project Status", func(p *domain.Project) interface{} { return string(p.Status) }},
	{FieldTotalInvestment, "Project Investment", func(p *domain.Project) interface{} { return p.TotalInvestment }},
	{FieldStartDate, "Start Date", func(p *domain.Project) interface{} { return p.StartDate }},
	{FieldProductionDate, "Production Date", func(p *domain.Project) interface{} { return p.ProductionDate }},
}

// projectGateKeys are the keys whose selection pulls the project block in
var projectGateKeys = []FieldKey{FieldProjectName, FieldProjectDescription, FieldProjectStatus}

func (s fieldSet) wantsProject() bool {
	for _, key := range projectGateKeys {
		if s.has(key) {
			return true
		}
	}
	return false
}

func contactCell(c *domain.Contact) string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Position)
}

func annualPlannedLabel(year int, t domain.MetricType) string {
	return fmt.Sprintf("%d %s Planned", year, t.Label())
}

func annualActualLabel(year int, t domain.MetricType) string {
	return fmt.Sprintf("%d %s Actual", year, t.Label())
}

func setCompanyFields(row *export.Row, set fieldSet, company *domain.Company) {
	for _, f := range companyFields {
		if set.has(f.key) {
			row.Set(f.label, f.value(company))
		}
	}
}

func setProjectFields(row *export.Row, set fieldSet, project *domain.Project) {
	for _, f := range projectFields {
		if set.has(f.key) {
			row.Set(f.label, f.value(project))
		}
	}
}
