package select_time

// SelectTimeRequest HTTP request model. Время — метка брокера, например "5:00 PM".
type SelectTimeRequest struct {
	Time string `json:"time"`
}
