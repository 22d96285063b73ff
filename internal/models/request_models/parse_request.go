package request_models

type ParseRequestInput struct {
	SessionID string `json:"session_id,omitempty"`
	UserInput string `json:"user_input"`
}
