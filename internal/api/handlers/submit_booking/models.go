package submit_booking

import (
	"time"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	usecase "github.com/shamal-freight/SFB-LeadService/internal/usecase/submit_booking"
)

// SubmitRequest HTTP request model.
// Name и Email обязательны только для intent=book-now.
type SubmitRequest struct {
	Intent   string `json:"intent"`
	Timezone string `json:"timezone"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// SubmitResponse HTTP response model
type SubmitResponse struct {
	Flow         string     `json:"flow"`
	Intent       string     `json:"intent"`
	Date         string     `json:"date,omitempty"`
	SelectedTime string     `json:"selectedTime,omitempty"`
	ScheduledAt  *time.Time `json:"scheduledAt,omitempty"`
	SubmittedAt  time.Time  `json:"submittedAt"`
}

func toResponse(result *usecase.Response) *SubmitResponse {
	resp := &SubmitResponse{
		Flow:        string(result.Flow),
		Intent:      string(result.Intent),
		SubmittedAt: result.SubmittedAt,
	}
	if result.Date != nil {
		resp.Date = result.Date.Format(domain.DateFormat)
		resp.SelectedTime = result.SelectedTime
		scheduledAt := result.ScheduledAt
		resp.ScheduledAt = &scheduledAt
	}
	return resp
}
