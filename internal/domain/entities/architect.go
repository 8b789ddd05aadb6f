package entities

import "time"

// Architect is a partner professional who refers projects to the studio.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Discount is a percentage in [0, 20] accrued from work-order creation
// events. It is mutated only by the incentive accrual use case.
type Architect struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Discount  float64   `json:"discount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
