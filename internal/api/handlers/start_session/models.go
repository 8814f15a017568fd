package start_session

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	Flow string `json:"flow"` // freight | freight-intl | car-shipping
}
