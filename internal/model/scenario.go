package model

import "time"

// Scenario is a persisted calculation: two operands plus the derived
// sum and quotient, owned by the user that submitted it. Division is
// nil when the second operand was zero.
type Scenario struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name,omitempty"`
	Project   string    `json:"project,omitempty"`
	OperandA  float64   `json:"a"`
	OperandB  float64   `json:"b"`
	Sum       float64   `json:"sum"`
	Division  *float64  `json:"division"`
	CreatedAt time.Time `json:"created_at"`
}

// CalcResult is the non-persisted computation outcome.
type CalcResult struct {
	Sum      float64  `json:"sum"`
	Division *float64 `json:"division"`
	User     string   `json:"user"`
}
