package config

import (
	"context"
	"log"

	"gorm.io/gorm"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/adapters/persistence/repositories"
)

func intPtr(v int) *int { return &v }

// seedSchemes is the bootstrap catalog of central government schemes
var seedSchemes = []*models.Scheme{
	{
		Name:                "Pradhan Mantri Jan Dhan Yojana",
		Description:         "National Mission for Financial Inclusion to ensure access to financial services, namely, Banking/ Savings & Deposit Accounts, Remittance, Credit, Insurance, Pension in an affordable manner.",
		Category:            "Financial Inclusion",
		Ministry:            "Ministry of Finance",
		EligibilityCriteria: models.JSONMap{"minAge": 10, "documents": []string{"Aadhaar Card", "PAN Card"}},
		Benefits:            "Access to banking services, RuPay Debit Card, Accident Insurance Cover of Rs. 1 lakh, Life Cover of Rs. 30,000.",
		ApplicationProcess:  "Open an account at any bank branch or Business Correspondent (Bank Mitra) outlet.",
		Documents:           models.StringList{"Aadhaar Card", "PAN Card"},
		ApplicationURL:      "https://www.pmjdy.gov.in/",
		IsActive:            true,
		MinAge:              intPtr(10),
	},
	{
		Name:                "Pradhan Mantri Awas Yojana (Urban)",
		Description:         "Affordable housing for all by 2022. Provides central assistance to urban local bodies and other implementing agencies through States/UTs for providing houses to all eligible families/beneficiaries.",
		Category:            "Housing",
		Ministry:            "Ministry of Housing and Urban Affairs",
		EligibilityCriteria: models.JSONMap{"incomeGroup": "EWS/LIG/MIG", "noPuccaHouse": true},
		Benefits:            "Interest subsidy on home loans, affordable housing in partnership, beneficiary-led construction/enhancement.",
		ApplicationProcess:  "Apply online through PMAY(U) website or common service centers.",
		Documents:           models.StringList{"Aadhaar Card", "Income Certificate", "Property documents"},
		ApplicationURL:      "https://pmaymis.gov.in/",
		IsActive:            true,
		MaxIncome:           intPtr(1800000),
		MinAge:              intPtr(18),
	},
	{
		Name:                "Ayushman Bharat Pradhan Mantri Jan Arogya Yojana (AB-PMJAY)",
		Description:         "World's largest health insurance/ assurance scheme fully financed by the government. It provides a cover of Rs. 5 lakhs per family per year for secondary and tertiary care hospitalization.",
		Category:            "Healthcare",
		Ministry:            "Ministry of Health and Family Welfare",
		EligibilityCriteria: models.JSONMap{"socioEconomicStatus": "SECC 2011 criteria"},
		Benefits:            "Cashless access to health care services, covers over 1,393 procedures, pre and post-hospitalisation expenses.",
		ApplicationProcess:  "Beneficiaries identified based on SECC 2011 data. No enrollment required.",
		Documents:           models.StringList{"Aadhaar Card"},
		ApplicationURL:      "https://pmjay.gov.in/",
		IsActive:            true,
		TargetCategories:    models.StringList{"SC", "ST", "OBC"},
		TargetOccupations:   models.StringList{"Manual Scavengers", "Rag Pickers", "Domestic Workers"},
	},
	{
		Name:                "Pradhan Mantri Kisan Samman Nidhi (PM-KISAN)",
		Description:         "An income support scheme for farmers. Provides financial benefit of Rs 6,000 per year in three equal installments of Rs 2,000 every four months.",
		Category:            "Agriculture",
		Ministry:            "Ministry of Agriculture & Farmers Welfare",
		EligibilityCriteria: models.JSONMap{"landholdingFarmers": true},
		Benefits:            "Direct income support to farmer families.",
		ApplicationProcess:  "Farmers can register through Common Service Centres, State Nodal Officers, or self-register through the PM-KISAN portal.",
		Documents:           models.StringList{"Aadhaar Card", "Landholding documents", "Bank Account details"},
		ApplicationURL:      "https://pmkisan.gov.in/",
		IsActive:            true,
		MinAge:              intPtr(18),
		TargetOccupations:   models.StringList{"Farmer"},
	},
	{
		Name:                "National Scholarship Portal (NSP)",
		Description:         "A one-stop solution through which various services starting from student application, application receipt, processing, sanction and disbursal of various scholarships to Students are enabled.",
		Category:            "Education",
		Ministry:            "Ministry of Electronics and Information Technology",
		EligibilityCriteria: models.JSONMap{"academicMerit": true, "incomeCriteria": true},
		Benefits:            "Financial assistance for education.",
		ApplicationProcess:  "Apply online through the National Scholarship Portal.",
		Documents:           models.StringList{"Aadhaar Card", "Income Certificate", "Academic Certificates"},
		ApplicationURL:      "https://scholarships.gov.in/",
		IsActive:            true,
		MaxIncome:           intPtr(250000),
	},
	{
		Name:                "Assistance to Disabled Persons for Purchase/Fitting of Aids and Appliances (ADIP)",
		Description:         "Assists needy persons with disability in procuring durable, sophisticated and scientifically manufactured aids and appliances that promote their physical, social and psychological rehabilitation.",
		Category:            "Social Welfare",
		Ministry:            "Ministry of Social Justice and Empowerment",
		EligibilityCriteria: models.JSONMap{"disabilityPercentage": 40, "monthlyIncomeLimit": 30000},
		Benefits:            "Free or subsidised aids and appliances for persons with disabilities.",
		ApplicationProcess:  "Apply through implementing agencies such as ALIMCO, district disability rehabilitation centres or NGOs.",
		Documents:           models.StringList{"Aadhaar Card", "Disability Certificate", "Income Certificate"},
		ApplicationURL:      "https://adip.depwd.gov.in/",
		IsActive:            true,
		MaxIncome:           intPtr(360000),
	},
}

// SeedDatabase inserts the bootstrap scheme catalog. Idempotent: schemes
// already present by name are skipped.
func SeedDatabase(db *gorm.DB) error {
	ctx := context.Background()
	schemeRepo := repositories.NewSchemeRepository(db)

	inserted := 0
	for _, scheme := range seedSchemes {
		exists, err := schemeRepo.ExistsByName(ctx, scheme.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := schemeRepo.Create(ctx, scheme); err != nil {
			return err
		}
		inserted++
	}

	if inserted > 0 {
		log.Printf("🌱 Seeded %d schemes", inserted)
	}
	return nil
}
