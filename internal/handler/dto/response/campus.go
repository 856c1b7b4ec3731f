package response

import (
	"time"

	"rehearsal-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CampusResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BlackoutRuleResponse struct {
	ID        uuid.UUID `json:"id"`
	CampusID  uuid.UUID `json:"campusId"`
	Date      *string   `json:"date,omitempty"`
	DayOfWeek *int      `json:"dayOfWeek,omitempty"`
	StartHour int       `json:"startHour"`
	EndHour   int       `json:"endHour"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromCampusView(rm *queries.CampusView) *CampusResponse {
	var resp CampusResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCampusViews(rms []*queries.CampusView) []*CampusResponse {
	resps := make([]*CampusResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromCampusView(rm)
	}
	return resps
}

func FromBlackoutRuleView(rm *queries.BlackoutRuleView) *BlackoutRuleResponse {
	resp := &BlackoutRuleResponse{
		ID:        rm.ID,
		CampusID:  rm.CampusID,
		DayOfWeek: rm.DayOfWeek,
		StartHour: rm.StartHour,
		EndHour:   rm.EndHour,
		Reason:    rm.Reason,
		CreatedAt: rm.CreatedAt,
	}
	if rm.Date != nil {
		d := rm.Date.Format(dateLayout)
		resp.Date = &d
	}
	return resp
}

func FromBlackoutRuleViews(rms []*queries.BlackoutRuleView) []*BlackoutRuleResponse {
	resps := make([]*BlackoutRuleResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromBlackoutRuleView(rm)
	}
	return resps
}
