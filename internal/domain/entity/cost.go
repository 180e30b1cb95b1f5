package entity

// DateLayout is the ISO 8601 day format used for record keys, trend points
// and billing provider requests.
const DateLayout = "2006-01-02"

// ServiceCost represents a cost amount for a specific AWS service on a single
// day, as returned by the billing provider. Never persisted directly.
type ServiceCost struct {
	ServiceName string  `json:"service_name"`
	Amount      float64 `json:"amount"`
}

// CostRecord is the persisted per-service daily unit. RecordDate partitions
// the store; (RecordDate, ServiceName) is the natural upsert key, so
// re-running a date overwrites a service's entry rather than appending.
type CostRecord struct {
	RecordDate      string   `json:"record_date" dynamodbav:"record_date"`
	ServiceCategory Category `json:"service_category" dynamodbav:"service_category"`
	ServiceName     string   `json:"service_name" dynamodbav:"service_name"`
	Amount          float64  `json:"amount" dynamodbav:"cost"`
}
