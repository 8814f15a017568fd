package select_date

// SelectDateRequest HTTP request model. Дата в формате YYYY-MM-DD.
type SelectDateRequest struct {
	Date string `json:"date"`
}
