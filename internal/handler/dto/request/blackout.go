package request

import (
	"errors"
	"time"

	"rehearsal-rooms/internal/usecase/commands"

	"github.com/google/uuid"
)

var errInvalidDayOfWeek = errors.New("day_of_week must be between 0 (Sunday) and 6 (Saturday)")

// CreateBlackoutRequest creates one closure rule. Providing date makes it
// an exact-date rule, day_of_week a weekly rule; neither means every day.
type CreateBlackoutRequest struct {
	CampusID  uuid.UUID `json:"campus_id" binding:"required"`
	Date      *string   `json:"date,omitempty"`
	DayOfWeek *int      `json:"day_of_week,omitempty"`
	StartHour int       `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int       `json:"end_hour" binding:"required,min=1,max=24"`
	Reason    string    `json:"reason,omitempty"`
}

func (r CreateBlackoutRequest) ToInput() (commands.CreateBlackoutInput, error) {
	input := commands.CreateBlackoutInput{
		CampusID:  r.CampusID,
		StartHour: r.StartHour,
		EndHour:   r.EndHour,
		Reason:    r.Reason,
	}

	if r.Date != nil {
		date, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return commands.CreateBlackoutInput{}, errInvalidDate
		}
		input.Date = &date
		return input, nil
	}

	if r.DayOfWeek != nil {
		if *r.DayOfWeek < 0 || *r.DayOfWeek > 6 {
			return commands.CreateBlackoutInput{}, errInvalidDayOfWeek
		}
		weekday := time.Weekday(*r.DayOfWeek)
		input.DayOfWeek = &weekday
	}

	return input, nil
}
