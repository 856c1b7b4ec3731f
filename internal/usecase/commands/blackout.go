package commands

import (
	"context"
	"time"

	"rehearsal-rooms/internal/domain/blackout"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/infra/db"
	"rehearsal-rooms/internal/pkg/errs"
	"rehearsal-rooms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBlackoutRuleNotFound = errs.New("blackout rule not found")
	ErrInvalidBlackoutRule  = errs.New("invalid blackout rule")
)

// CreateBlackoutInput describes one closure rule. Date takes precedence
// over DayOfWeek; with neither set the rule applies every day.
type CreateBlackoutInput struct {
	CampusID  uuid.UUID
	Date      *time.Time
	DayOfWeek *time.Weekday
	StartHour int
	EndHour   int
	Reason    string
}

type BlackoutCommands interface {
	Create(ctx context.Context, input CreateBlackoutInput) (uuid.UUID, error)
	Delete(ctx context.Context, ruleID uuid.UUID) error
}

type blackoutCommandsImpl struct {
	rules    BlackoutRepository
	campuses CampusReader
	tx       shared.TxRunner
}

func NewBlackoutCommands(rules BlackoutRepository, campuses CampusReader, tx shared.TxRunner) BlackoutCommands {
	return &blackoutCommandsImpl{rules: rules, campuses: campuses, tx: tx}
}

func (c *blackoutCommandsImpl) Create(ctx context.Context, input CreateBlackoutInput) (uuid.UUID, error) {
	if _, err := c.campuses.FindByID(ctx, input.CampusID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrCampusNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rule, err := buildRule(input)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidBlackoutRule)
	}

	var id uuid.UUID
	err = c.tx.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		created, err := c.rules.Create(ctx, dbtx, rule)
		if err != nil {
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *blackoutCommandsImpl) Delete(ctx context.Context, ruleID uuid.UUID) error {
	err := c.tx.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return c.rules.Delete(ctx, dbtx, ruleID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBlackoutRuleNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func buildRule(input CreateBlackoutInput) (blackout.Rule, error) {
	switch {
	case input.Date != nil:
		return blackout.NewExactDateRule(input.CampusID, *input.Date, input.StartHour, input.EndHour, input.Reason)
	case input.DayOfWeek != nil:
		return blackout.NewWeeklyRule(input.CampusID, *input.DayOfWeek, input.StartHour, input.EndHour, input.Reason)
	default:
		return blackout.NewGlobalRule(input.CampusID, input.StartHour, input.EndHour, input.Reason)
	}
}
