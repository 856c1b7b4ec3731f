package request

import (
	"errors"
	"time"

	"rehearsal-rooms/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

type CreateReservationRequest struct {
	CampusID  uuid.UUID `json:"campus_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	StartHour int       `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int       `json:"end_hour" binding:"required,min=1,max=24"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return commands.CreateReservationInput{}, errInvalidDate
	}

	return commands.CreateReservationInput{
		CampusID:  r.CampusID,
		Date:      date,
		StartHour: r.StartHour,
		EndHour:   r.EndHour,
	}, nil
}

// ParseDateParam parses a ?date= query value.
func ParseDateParam(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return date, nil
}
