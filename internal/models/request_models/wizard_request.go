package request_models

// SubmitStepRequest carries one wizard step's form fields. The fields
// are free-form by design: each step owns its keys and the draft store
// merges them shallowly.
type SubmitStepRequest struct {
	Fields map[string]any `json:"fields" binding:"required"`
}
