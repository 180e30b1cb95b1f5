package entity

// TrendPoint is one day of total spend in the rolling trend window.
type TrendPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// DashboardDocument is the published artifact. The JSON field names are a
// compatibility contract for the dashboard frontend; every numeric value is
// rounded to two decimal places before publication.
type DashboardDocument struct {
	TotalSpend         float64        `json:"total_spend"`
	Categories         CategoryTotals `json:"categories"`
	CategoriesPrevious CategoryTotals `json:"categories_previous"`
	Trend              []TrendPoint   `json:"trend"`
}

// RunStatus indicates whether a refresh run completed.
type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusFailure RunStatus = "failure"
)

// RunResult summarizes a refresh run for the caller/scheduler.
type RunResult struct {
	Status     RunStatus `json:"status"`
	Date       string    `json:"date"`
	TotalSpend float64   `json:"total_spend"`
	Message    string    `json:"message"`
}
