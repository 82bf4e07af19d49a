package domain

// Equity is one row of the exchange's listed-equity file.
type Equity struct {
	Symbol string
	Name   string
}

// FundConstituent is a stock held by a mutual fund. Fraction is the share of
// the fund's assets, between 0 and 1.
type FundConstituent struct {
	Name     string
	Fraction float64
	Sector   string
}

// AssetAllocation is the operator's top-level split between direct stocks
// and mutual funds, in percent of the portfolio.
type AssetAllocation struct {
	Direct TargetWeights
	Funds  []FundWeight
}

type FundWeight struct {
	Name   string
	Weight float64
	// HoldingsFile lists the fund's constituents.
	HoldingsFile string
}
