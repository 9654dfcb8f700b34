package types

import "encoding/json"

// TemplateRequest carries a template in the body of an API call, either as a
// JSON object or as a JSON/YAML string.
type TemplateRequest struct {
	Template json.RawMessage `json:"template"`
	Stack    string          `json:"stack,omitempty"`
}

type DiffRequest struct {
	Before json.RawMessage `json:"before"`
	After  json.RawMessage `json:"after"`
}

type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
