package response

import (
	"time"

	"rehearsal-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	UserName      string     `json:"userName"`
	CampusID      uuid.UUID  `json:"campusId"`
	CampusName    string     `json:"campusName"`
	Date          string     `json:"date"`
	StartHour     int        `json:"startHour"`
	EndHour       int        `json:"endHour"`
	Status        string     `json:"status"`
	KeyPickedUp   bool       `json:"keyPickedUp"`
	KeyPickupTime *time.Time `json:"keyPickupTime,omitempty"`
	KeyReturned   bool       `json:"keyReturned"`
	KeyReturnTime *time.Time `json:"keyReturnTime,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type WeekScheduleResponse struct {
	WindowStart  string                 `json:"windowStart"`
	WindowEnd    string                 `json:"windowEnd"`
	Reservations []*ReservationResponse `json:"reservations"`
}

type PagedReservationsResponse struct {
	Items    []*ReservationResponse `json:"items"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"pageSize"`
}

const dateLayout = "2006-01-02"

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	resp.Date = rm.Date.Format(dateLayout)
	return &resp
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	resps := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromReservationView(rm)
	}
	return resps
}

func FromWeekScheduleView(rm *queries.WeekScheduleView) *WeekScheduleResponse {
	return &WeekScheduleResponse{
		WindowStart:  rm.WindowStart.Format(dateLayout),
		WindowEnd:    rm.WindowEnd.Format(dateLayout),
		Reservations: FromReservationViews(rm.Reservations),
	}
}

func FromPagedReservations(rm *queries.PagedReservations) *PagedReservationsResponse {
	return &PagedReservationsResponse{
		Items:    FromReservationViews(rm.Items),
		Total:    rm.Total,
		Page:     rm.Page,
		PageSize: rm.PageSize,
	}
}
