package repository

import (
	"time"

	"github.com/Veraticus/sevos/internal/model"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedLeads returns the demo leads.
func SeedLeads() []model.Lead {
	return []model.Lead{
		{
			ID:            "LD-2024-001",
			CreatedAt:     mustTime("2024-01-15T10:30:00Z"),
			CompanyName:   "MegaCorp Industries",
			ContactPerson: "Sarah Johnson",
			Email:         "sarah.j@megacorp.com",
			Phone:         "+1-555-0789",
			Origin:        "Dallas, TX",
			Destination:   "Houston, TX",
			CommodityType: "Steel Products",
			Weight:        "48,000 lbs",
			Frequency:     "Weekly",
			Budget:        "$1,200 - $1,500",
			Status:        model.LeadHot,
			Source:        "website",
			AssignedTo:    "Mike Rodriguez",
			Notes:         "Interested in long-term contract. Decision maker available.",
			Priority:      model.PriorityHigh,
		},
		{
			ID:            "LD-2024-002",
			CreatedAt:     mustTime("2024-01-14T14:20:00Z"),
			CompanyName:   "Fresh Foods Distribution",
			ContactPerson: "David Chen",
			Email:         "d.chen@freshfoods.com",
			Phone:         "+1-555-0234",
			Origin:        "California Central Valley",
			Destination:   "Las Vegas, NV",
			CommodityType: "Refrigerated Produce",
			Weight:        "40,000 lbs",
			Frequency:     "Twice Weekly",
			Budget:        "$1,800 - $2,200",
			Status:        model.LeadWarm,
			Source:        "referral",
			AssignedTo:    "Lisa Wang",
			Notes:         "Requires reefer trucks. Temperature sensitive cargo.",
			Priority:      model.PriorityHigh,
		},
		{
			ID:            "LD-2024-003",
			CreatedAt:     mustTime("2024-01-12T09:15:00Z"),
			CompanyName:   "Construction Materials Co",
			ContactPerson: "Robert Martinez",
			Email:         "r.martinez@constructmat.com",
			Phone:         "+1-555-0567",
			Origin:        "Phoenix, AZ",
			Destination:   "Denver, CO",
			CommodityType: "Building Materials",
			Weight:        "50,000 lbs",
			Frequency:     "Monthly",
			Budget:        "$2,000 - $2,500",
			Status:        model.LeadCold,
			Source:        "cold_call",
			AssignedTo:    "Tom Wilson",
			Notes:         "Price sensitive. Needs competitive rates.",
			Priority:      model.PriorityMedium,
		},
		{
			ID:            "LD-2024-004",
			CreatedAt:     mustTime("2024-01-15T16:45:00Z"),
			CompanyName:   "E-Commerce Fulfillment Hub",
			ContactPerson: "Jennifer Liu",
			Email:         "j.liu@ecommhub.com",
			Phone:         "+1-555-0890",
			Origin:        "Memphis, TN",
			Destination:   "Multiple destinations",
			CommodityType: "Consumer Goods",
			Weight:        "20,000 - 35,000 lbs",
			Frequency:     "Daily",
			Budget:        "$800 - $1,200",
			Status:        model.LeadQualified,
			Source:        "trade_show",
			AssignedTo:    "Mike Rodriguez",
			Notes:         "High volume potential. Looking for dedicated lanes.",
			Priority:      model.PriorityHigh,
		},
	}
}

// SeedInvoices returns the demo invoices.
func SeedInvoices() []model.Invoice {
	return []model.Invoice{
		{
			ID:            "INV-2024-001",
			CreatedAt:     mustTime("2024-01-05T00:00:00Z"),
			CustomerName:  "ABC Manufacturing",
			LoadID:        "LD-2024-156",
			Route:         "Chicago, IL → Denver, CO",
			Amount:        2450.00,
			Status:        model.InvoicePaid,
			IssueDate:     "2024-01-05",
			DueDate:       "2024-01-20",
			PaymentDate:   "2024-01-18",
			CarrierName:   "Elite Transport LLC",
			CommodityType: "Electronics",
			Weight:        "45,000 lbs",
			Distance:      "1,003 miles",
		},
		{
			ID:            "INV-2024-002",
			CreatedAt:     mustTime("2024-01-10T00:00:00Z"),
			CustomerName:  "Global Logistics Corp",
			LoadID:        "LD-2024-157",
			Route:         "Los Angeles, CA → Phoenix, AZ",
			Amount:        1850.00,
			Status:        model.InvoicePending,
			IssueDate:     "2024-01-10",
			DueDate:       "2024-01-25",
			CarrierName:   "Desert Freight Lines",
			CommodityType: "Automotive Parts",
			Weight:        "38,500 lbs",
			Distance:      "357 miles",
		},
		{
			ID:            "INV-2024-003",
			CreatedAt:     mustTime("2024-01-01T00:00:00Z"),
			CustomerName:  "Northeast Distribution",
			LoadID:        "LD-2024-158",
			Route:         "Atlanta, GA → Miami, FL",
			Amount:        1320.00,
			Status:        model.InvoiceOverdue,
			IssueDate:     "2024-01-01",
			DueDate:       "2024-01-15",
			CarrierName:   "Sunshine Carriers",
			CommodityType: "Food Products",
			Weight:        "42,000 lbs",
			Distance:      "663 miles",
		},
		{
			ID:            "INV-2024-004",
			CreatedAt:     mustTime("2024-01-15T00:00:00Z"),
			CustomerName:  "Tech Solutions Inc",
			LoadID:        "LD-2024-159",
			Route:         "Seattle, WA → Portland, OR",
			Amount:        890.00,
			Status:        model.InvoiceDraft,
			IssueDate:     "2024-01-15",
			DueDate:       "2024-01-30",
			CarrierName:   "Pacific Northwest Transport",
			CommodityType: "Computer Equipment",
			Weight:        "25,000 lbs",
			Distance:      "173 miles",
		},
	}
}
