package navigate_session

// NavigateRequest HTTP request model.
// Step используется только для action=goto.
type NavigateRequest struct {
	Action string `json:"action"`
	Step   int    `json:"step"`
}
