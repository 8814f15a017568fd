package update_answers

// UpdateAnswersRequest HTTP request model.
// Поля применяются от имени шага step: чужие поля отклоняются.
type UpdateAnswersRequest struct {
	Step   string            `json:"step"`
	Fields map[string]string `json:"fields"`
}
