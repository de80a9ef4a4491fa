package repository

import "IPOCal/internal/domain/models"

// Fallback returns the curated calendar served when the provider is down or
// thin. Records are already canonical and are returned as a fresh slice on
// every call, so callers may reorder it freely.
func Fallback() []models.IPO {
	return []models.IPO{
		{
			Ticker:            "HTFL",
			Name:              "HeartFlow Inc.",
			Exchange:          "NASDAQ",
			ListingDate:       "2025-08-11",
			PriceLow:          f64(16.0),
			PriceHigh:         f64(18.0),
			SharesOutstanding: i64(20227272),
			Status:            models.StatusLive,
			Sector:            "Healthcare Technology",
			MarketCap:         f64(364200000),
			CurrentPrice:      f64(17.25),
			Description:       "AI-powered cardiac imaging and analysis technology",
			USCode:            "1234567890",
		},
		{
			Ticker:            "SSAA",
			Name:              "Starry Sea Acquisition Corp",
			Exchange:          "NASDAQ",
			ListingDate:       "2025-08-11",
			PriceLow:          f64(10.0),
			PriceHigh:         f64(10.0),
			SharesOutstanding: i64(5750000),
			Status:            models.StatusLive,
			Sector:            "SPAC",
			MarketCap:         f64(57500000),
			CurrentPrice:      f64(10.05),
			Description:       "Special Purpose Acquisition Company targeting tech sector",
		},
		{
			Ticker:            "AIVS",
			Name:              "AI Vision Systems Inc.",
			Exchange:          "NYSE",
			ListingDate:       "2025-08-20",
			PriceLow:          f64(22.0),
			PriceHigh:         f64(26.0),
			SharesOutstanding: i64(12000000),
			Status:            models.StatusUpcoming,
			Sector:            "Artificial Intelligence",
			Description:       "Computer vision and AI automation solutions for enterprise",
		},
		{
			Ticker:            "GRNT",
			Name:              "GreenTech Energy Solutions",
			Exchange:          "NASDAQ",
			ListingDate:       "2025-08-25",
			PriceLow:          f64(18.0),
			PriceHigh:         f64(22.0),
			SharesOutstanding: i64(15000000),
			Status:            models.StatusFiled,
			Sector:            "Clean Energy",
			Description:       "Solar and wind energy infrastructure development",
		},
		{
			Ticker:            "CYBER",
			Name:              "CyberShield Technologies",
			Exchange:          "NYSE",
			ListingDate:       "2025-09-05",
			PriceLow:          f64(28.0),
			PriceHigh:         f64(32.0),
			SharesOutstanding: i64(8000000),
			Status:            models.StatusUpcoming,
			Sector:            "Cybersecurity",
			Description:       "Enterprise cybersecurity and threat detection platform",
		},
		{
			Ticker:            "MEDI",
			Name:              "MediCore Therapeutics",
			Exchange:          "NASDAQ",
			ListingDate:       "2025-09-12",
			PriceLow:          f64(24.0),
			PriceHigh:         f64(28.0),
			SharesOutstanding: i64(10000000),
			Status:            models.StatusFiled,
			Sector:            "Biotechnology",
			Description:       "Precision medicine and drug discovery platform",
		},
		{
			Ticker:            "SPACE",
			Name:              "SpaceLogistics Corp",
			Exchange:          "NYSE",
			ListingDate:       "2025-09-18",
			PriceLow:          f64(35.0),
			PriceHigh:         f64(40.0),
			SharesOutstanding: i64(6000000),
			Status:            models.StatusUpcoming,
			Sector:            "Aerospace",
			Description:       "Satellite deployment and space transportation services",
		},
		{
			Ticker:            "FINAI",
			Name:              "FinTech AI Solutions",
			Exchange:          "NASDAQ",
			ListingDate:       "2025-09-25",
			PriceLow:          f64(20.0),
			PriceHigh:         f64(24.0),
			SharesOutstanding: i64(14000000),
			Status:            models.StatusFiled,
			Sector:            "Financial Technology",
			Description:       "AI-powered financial services and analytics platform",
		},
		{
			Ticker:            "ROBO",
			Name:              "Robotics Dynamics Inc.",
			Exchange:          "NYSE",
			ListingDate:       "2025-10-02",
			PriceLow:          f64(30.0),
			PriceHigh:         f64(35.0),
			SharesOutstanding: i64(9000000),
			Status:            models.StatusUpcoming,
			Sector:            "Robotics",
			Description:       "Industrial automation and robotics solutions",
		},
		{
			Ticker:            "CLOUD",
			Name:              "CloudSecure Systems",
			Exchange:          "NASDAQ",
			ListingDate:       "2025-10-08",
			PriceLow:          f64(16.0),
			PriceHigh:         f64(20.0),
			SharesOutstanding: i64(18000000),
			Status:            models.StatusFiled,
			Sector:            "Cloud Computing",
			Description:       "Cloud infrastructure security and management platform",
		},
	}
}

func f64(v float64) *float64 { return &v }

func i64(v int64) *int64 { return &v }
