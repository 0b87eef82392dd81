package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/config"
	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/export"
	"github.com/parkgate/enterprise-api/internal/repository"
)

const (
	customExportTitle   = "Enterprise Custom Data"
	advancedExportTitle = "Enterprise Data Export"
)

// ExportService projects companies into flat rows and renders them as
// downloadable documents. Rows follow the request's company order; ids
// that match no company are skipped. Columns a company has no data for
// are omitted from its row, so rows in one export may differ in shape.
type ExportService struct {
	companyRepo *repository.CompanyRepository
	contactRepo *repository.ContactRepository
	projectRepo *repository.ProjectRepository
	metricRepo  *repository.MetricRepository
	cfg         *config.ReportConfig
	logger      *zap.Logger
}

func NewExportService(
	companyRepo *repository.CompanyRepository,
	contactRepo *repository.ContactRepository,
	projectRepo *repository.ProjectRepository,
	metricRepo *repository.MetricRepository,
	cfg *config.ReportConfig,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		companyRepo: companyRepo,
		contactRepo: contactRepo,
		projectRepo: projectRepo,
		metricRepo:  metricRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// ConfigView assembles the export configuration page payload.
func (s *ExportService) ConfigView(ctx context.Context) (*domain.ExportConfigView, error) {
	companies, err := s.companyRepo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	view := &domain.ExportConfigView{
		Companies: companies,
		Fields: []domain.ExportFieldGroup{
			{Group: "basic", Fields: []string{
				string(FieldCompanyName), string(FieldLegalPerson),
				string(FieldMainProducts), string(FieldProductModel),
				string(FieldPartySecretary), string(FieldTotalInvestment),
				string(FieldEmployeeCount), string(FieldRegisterDate),
				string(FieldCompletionDate),
			}},
			{Group: "contact", Fields: []string{
				string(FieldLegalContact), string(FieldSecretaryContact),
				string(FieldDailyContact),
			}},
			{Group: "project", Fields: []string{
				string(FieldProjectName), string(FieldProjectDescription),
				string(FieldProjectStatus), string(FieldStartDate),
				string(FieldProductionDate),
			}},
			{Group: "economic", Fields: []string{
				string(domain.MetricOutput), string(domain.MetricCapacity),
				string(domain.MetricTax), string(domain.MetricInvestment),
				string(domain.MetricAddedValue),
			}},
		},
		Formats: []string{
			string(export.FormatExcel),
			string(export.FormatWord),
			string(export.FormatPDF),
		},
	}
	return view, nil
}

// Contacts exports one contact directory as a spreadsheet. Unknown role
// keys fall back to the daily directory; an empty key means legal.
func (s *ExportService) Contacts(ctx context.Context, roleKey string, now time.Time) (*export.Document, error) {
	var role domain.ContactRole
	var title string
	switch domain.ContactRole(roleKey) {
	case domain.ContactRoleLegal, "":
		role, title = domain.ContactRoleLegal, "Legal Representative Directory"
	case domain.ContactRoleSecretary:
		role, title = domain.ContactRoleSecretary, "Party Secretary Directory"
	default:
		role, title = domain.ContactRoleDaily, "Daily Contact Directory"
	}

	entries, err := s.contactRepo.ListDirectory(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("listing %s directory: %w", role, err)
	}

	rows := make([]*export.Row, 0, len(entries))
	for _, e := range entries {
		row := export.NewRow()
		row.Set("Company Name", e.CompanyName)
		row.Set("Name", e.Name)
		row.Set("Position", e.Position)
		row.Set("Phone", e.Phone)
		rows = append(rows, row)
	}

	s.logger.Info("contact directory export",
		zap.String("role", string(role)),
		zap.Int("rows", len(rows)))
	return export.Generate(export.FormatExcel, title, rows, now)
}

// CustomFields exports one row per selected company with the requested
// field columns.
func (s *ExportService) CustomFields(ctx context.Context, req *domain.CustomExportRequest, now time.Time) (*export.Document, error) {
	if len(req.CompanyIDs) == 0 {
		return nil, domain.ErrNoCompaniesSelected
	}
	if len(req.SelectedFields) == 0 {
		return nil, domain.ErrNoFieldsSelected
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}

	set := newFieldSet(req.SelectedFields)
	companies, err := s.companiesInOrder(ctx, req.CompanyIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]*export.Row, 0, len(companies))
	for i := range companies {
		company := &companies[i]
		row := export.NewRow()

		setCompanyFields(row, set, company)

		for _, f := range contactFields {
			if !set.has(f.key) {
				continue
			}
			contact, err := s.contactRepo.FirstByCompanyAndRole(ctx, company.ID, f.role, f.primaryOnly)
			if err != nil {
				return nil, fmt.Errorf("looking up %s contact: %w", f.role, err)
			}
			if contact != nil {
				row.Set(f.nameLabel, contactCell(contact))
				row.Set(f.phoneLabel, contact.Phone)
			}
		}

		if set.wantsProject() {
			project, err := s.projectRepo.FirstByCompany(ctx, company.ID)
			if err != nil {
				return nil, fmt.Errorf("looking up project: %w", err)
			}
			if project != nil {
				setProjectFields(row, set, project)
			}
		}

		for _, t := range domain.AllMetricTypes {
			if !set.has(FieldKey(t)) {
				continue
			}
			annual, err := s.metricRepo.GetAnnual(ctx, company.ID, t, s.cfg.CurrentYear)
			if err != nil {
				return nil, fmt.Errorf("looking up %s annual data: %w", t, err)
			}
			if annual != nil {
				row.Set(annualPlannedLabel(s.cfg.CurrentYear, t), annual.PlannedValue)
				row.Set(annualActualLabel(s.cfg.CurrentYear, t), annual.ActualValue)
			}
		}

		rows = append(rows, row)
	}

	s.logger.Info("custom field export",
		zap.Int("companies", len(rows)),
		zap.Int("fields", len(req.SelectedFields)),
		zap.String("format", string(format)))
	return export.Generate(format, customExportTitle, rows, now)
}

// advancedProjectKeys are the only project columns the grouped export offers
var advancedProjectKeys = map[FieldKey]bool{
	FieldProjectDescription: true,
	FieldStartDate:          true,
	FieldProductionDate:     true,
}

// Advanced exports grouped basic/time/project fields plus per-metric
// windows. A quarterly window always yields its sum columns; monthly and
// annual windows yield columns only when the record exists.
func (s *ExportService) Advanced(ctx context.Context, req *domain.AdvancedExportRequest, now time.Time) (*export.Document, error) {
	if len(req.CompanyIDs) == 0 {
		return nil, domain.ErrNoCompaniesSelected
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}

	companySet := newFieldSet(req.BasicFields)
	for _, k := range req.TimeFields {
		companySet[FieldKey(k)] = true
	}
	projectSet := make(fieldSet)
	for _, k := range req.ProjectFields {
		if advancedProjectKeys[FieldKey(k)] {
			projectSet[FieldKey(k)] = true
		}
	}

	companies, err := s.companiesInOrder(ctx, req.CompanyIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]*export.Row, 0, len(companies))
	for i := range companies {
		company := &companies[i]
		row := export.NewRow()

		setCompanyFields(row, companySet, company)

		if len(projectSet) > 0 {
			project, err := s.projectRepo.FirstByCompany(ctx, company.ID)
			if err != nil {
				return nil, fmt.Errorf("looking up project: %w", err)
			}
			if project != nil {
				setProjectFields(row, projectSet, project)
			}
		}

		if err := s.setMetricWindows(ctx, row, company.ID, req.EconomicData); err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	s.logger.Info("advanced export",
		zap.Int("companies", len(rows)),
		zap.String("format", string(format)))
	return export.Generate(format, advancedExportTitle, rows, now)
}

// setMetricWindows appends the selected metric columns for one company.
// Metric types render in their fixed reporting order regardless of the
// request's map order.
func (s *ExportService) setMetricWindows(ctx context.Context, row *export.Row, companyID uint, windows map[domain.MetricType]domain.MetricWindow) error {
	for _, t := range domain.AllMetricTypes {
		w, ok := windows[t]
		if !ok || !w.Selected {
			continue
		}

		year := w.Year
		if year == 0 {
			year = s.cfg.CurrentYear
		}
		timeType := w.TimeType
		if timeType == "" {
			timeType = "monthly"
		}

		switch timeType {
		case "monthly":
			if w.Month == 0 {
				continue
			}
			m, err := s.metricRepo.GetMonthly(ctx, companyID, t, year, w.Month)
			if err != nil {
				return fmt.Errorf("looking up %s monthly data: %w", t, err)
			}
			if m != nil {
				row.Set(fmt.Sprintf("%s Planned", t.Label()), m.PlannedValue)
				row.Set(fmt.Sprintf("%s Actual", t.Label()), m.ActualValue)
			}
		case "quarterly":
			if w.Quarter == 0 {
				continue
			}
			sum, err := s.metricRepo.SumMonthly(ctx, companyID, t, year, quarterStartMonth(w.Quarter), quarterEndMonth(w.Quarter))
			if err != nil {
				return fmt.Errorf("summing %s quarterly data: %w", t, err)
			}
			row.Set(fmt.Sprintf("Q%d %s Planned", w.Quarter, t.Label()), sum.Planned)
			row.Set(fmt.Sprintf("Q%d %s Actual", w.Quarter, t.Label()), sum.Actual)
		case "annual":
			a, err := s.metricRepo.GetAnnual(ctx, companyID, t, year)
			if err != nil {
				return fmt.Errorf("looking up %s annual data: %w", t, err)
			}
			if a != nil {
				row.Set(annualPlannedLabel(year, t), a.PlannedValue)
				row.Set(annualActualLabel(year, t), a.ActualValue)
			}
		}
	}
	return nil
}

// companiesInOrder resolves ids to companies preserving the request
// order. Ids with no matching company are dropped.
func (s *ExportService) companiesInOrder(ctx context.Context, ids []uint) ([]domain.Company, error) {
	found, err := s.companyRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	byID := make(map[uint]domain.Company, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	ordered := make([]domain.Company, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}
