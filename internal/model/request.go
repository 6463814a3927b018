package model

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CalculateRequest carries the two operands as untyped values: clients
// across drafts send them both as JSON numbers and as strings, so the
// coercion happens in the calculation service.
type CalculateRequest struct {
	A       any    `json:"a"`
	B       any    `json:"b"`
	Name    string `json:"name,omitempty"`
	Project string `json:"project,omitempty"`
}
