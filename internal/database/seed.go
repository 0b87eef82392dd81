package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/parkgate/enterprise-api/internal/domain"
)

type seedCompany struct {
	name            string
	legalPerson     string
	mainProducts    string
	productModel    string
	partySecretary  string
	totalInvestment float64
	employeeCount   int
	registerDate    string
	completionDate  string
}

var seedCompanies = []seedCompany{
	{"Trident Energy Equipment Co.", "Alan Zhang", "Wind turbine equipment", "SE-3000", "Victor Li", 15000.0, 200, "2020-01-15", "2022-06-30"},
	{"Skyline Heavy Industries Group", "Frank Wang", "Photovoltaic modules", "TN-500W", "Grace Zhao", 8000.0, 150, "2019-05-20", "2021-12-15"},
	{"Huadian New Energy Co.", "Nina Chen", "Energy storage systems", "HD-100KWH", "Oscar Qian", 12000.0, 180, "2021-03-10", "2023-08-20"},
}

// annualRatios derives an annual planned/actual pair from the company's
// total investment, one ratio pair per metric type
var annualRatios = map[domain.MetricType][2]float64{
	domain.MetricOutput:     {0.8, 0.9},
	domain.MetricCapacity:   {0.1, 0.12},
	domain.MetricTax:        {0.05, 0.06},
	domain.MetricInvestment: {0.3, 0.35},
	domain.MetricAddedValue: {0.15, 0.18},
}

var seedYears = []int{2023, 2024, 2025, 2026}

// detailedYear gets per-month variation; the others take a flat twelfth
const detailedYear = 2025

// Seed inserts the demo dataset when the store holds no companies.
// Returns false when companies already exist and nothing was written.
func Seed(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&domain.Company{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting companies: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, sc := range seedCompanies {
			if err := seedOne(tx, sc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func seedOne(tx *gorm.DB, sc seedCompany) error {
	company := domain.Company{
		Name:            sc.name,
		LegalPerson:     sc.legalPerson,
		MainProducts:    sc.mainProducts,
		ProductModel:    sc.productModel,
		PartySecretary:  sc.partySecretary,
		TotalInvestment: sc.totalInvestment,
		EmployeeCount:   sc.employeeCount,
		RegisterDate:    sc.registerDate,
		CompletionDate:  sc.completionDate,
	}
	if err := tx.Create(&company).Error; err != nil {
		return fmt.Errorf("creating company %q: %w", sc.name, err)
	}

	contacts := []domain.Contact{
		{CompanyID: company.ID, Role: domain.ContactRoleLegal, Name: sc.legalPerson, Position: "Legal Representative", Phone: "13800138000", IsPrimary: true},
		{CompanyID: company.ID, Role: domain.ContactRoleSecretary, Name: sc.partySecretary, Position: "Party Secretary", Phone: "13900139000", IsPrimary: true},
		{CompanyID: company.ID, Role: domain.ContactRoleDaily, Name: "Joe Zhou", Position: "Account Manager", Phone: "13700137000", IsPrimary: true},
	}
	if err := tx.Create(&contacts).Error; err != nil {
		return fmt.Errorf("creating contacts for %q: %w", sc.name, err)
	}

	project := domain.Project{
		CompanyID:        company.ID,
		Name:             fmt.Sprintf("%s Flagship Project", sc.name),
		Description:      fmt.Sprintf("%s production line construction", sc.mainProducts),
		TotalInvestment:  sc.totalInvestment * 0.8,
		DesignCapacity:   sc.totalInvestment * 0.1,
		ExpectedCapacity: sc.totalInvestment * 0.12,
		ActualCapacity:   sc.totalInvestment * 0.1,
		Status:           domain.ProjectStatusInProduction,
		StartDate:        "2022-01-01",
		ProductionDate:   "2023-06-01",
	}
	if err := tx.Create(&project).Error; err != nil {
		return fmt.Errorf("creating project for %q: %w", sc.name, err)
	}

	for _, t := range domain.AllMetricTypes {
		ratios := annualRatios[t]
		for _, year := range seedYears {
			annualPlanned := sc.totalInvestment * ratios[0]
			annualActual := sc.totalInvestment * ratios[1]

			annual := domain.AnnualMetric{
				CompanyID:    company.ID,
				Type:         t,
				Year:         year,
				PlannedValue: annualPlanned,
				ActualValue:  annualActual,
			}
			if err := tx.Create(&annual).Error; err != nil {
				return fmt.Errorf("creating annual data for %q: %w", sc.name, err)
			}

			for month := 1; month <= 12; month++ {
				monthlyPlanned := annualPlanned / 12
				monthlyActual := annualActual / 12
				if year == detailedYear {
					growth := 1 + float64(month)*0.02
					monthlyPlanned = annualPlanned / 12 * growth
					monthlyActual = annualActual / 12 * growth * 0.95
				}

				monthly := domain.MonthlyMetric{
					CompanyID:    company.ID,
					Type:         t,
					Year:         year,
					Month:        month,
					PlannedValue: monthlyPlanned,
					ActualValue:  monthlyActual,
				}
				if err := tx.Create(&monthly).Error; err != nil {
					return fmt.Errorf("creating monthly data for %q: %w", sc.name, err)
				}
			}
		}
	}

	return nil
}
