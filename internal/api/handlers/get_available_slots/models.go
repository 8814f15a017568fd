package get_available_slots

import (
	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	usecase "github.com/shamal-freight/SFB-LeadService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date     string          `json:"date"`
	Flow     string          `json:"flow"`
	Timezone string          `json:"timezone,omitempty"`
	Groups   []GroupResponse `json:"groups"`
}

// GroupResponse группа слотов в порядке отображения
type GroupResponse struct {
	Group string         `json:"group"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse один слот каталога
type SlotResponse struct {
	Time      string `json:"time"`
	LocalTime string `json:"localTime"`
	Available bool   `json:"available"`
}

func toResponse(result *usecase.Response) *SlotsResponse {
	groups := make([]GroupResponse, 0, len(result.Groups))
	for _, g := range result.Groups {
		slots := make([]SlotResponse, 0, len(g.Slots))
		for _, s := range g.Slots {
			slots = append(slots, SlotResponse{
				Time:      s.Time,
				LocalTime: s.LocalTime,
				Available: s.Available,
			})
		}
		groups = append(groups, GroupResponse{
			Group: string(g.Group),
			Slots: slots,
		})
	}

	return &SlotsResponse{
		Date:     result.Date.Format(domain.DateFormat),
		Flow:     string(result.Flow),
		Timezone: result.ViewerTZ,
		Groups:   groups,
	}
}
