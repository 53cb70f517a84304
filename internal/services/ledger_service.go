package services

import (
	"context"
	"errors"
	"fmt"

	"fishledger/internal/amqp"
	"fishledger/internal/core"
	"fishledger/internal/ledger"
	applog "fishledger/internal/log"
)

// EventPublisher receives a message after each successful mutation.
type EventPublisher interface {
	Publish(ctx context.Context, msg *amqp.LedgerEventMessage) error
}

var ErrInvalidSession = errors.New("invalid session")

// LedgerService runs every ledger operation as load, mutate, save. Nothing is
// cached between calls; the store is the only state.
type LedgerService struct {
	store  ledger.Store
	events EventPublisher
	logger *applog.Logger
}

// NewLedgerService wires a store and an optional publisher (nil disables events).
func NewLedgerService(store ledger.Store, events EventPublisher, logger *applog.Logger) *LedgerService {
	if logger == nil {
		logger = applog.Discard()
	}
	return &LedgerService{
		store:  store,
		events: events,
		logger: logger.WithComponent(applog.ComponentLedger),
	}
}

// Ledger returns a freshly loaded copy of the whole ledger.
func (s *LedgerService) Ledger(ctx context.Context) (core.Ledger, error) {
	l, err := s.store.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load ledger",
			applog.NewFields().WithOperation(applog.OpLoad).WithError(err).WithErrorType(applog.ErrorTypeStorage).ToSlice()...)
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return l, nil
}

// MonthKeys returns the existing month-keys in lexicographic order.
func (s *LedgerService) MonthKeys(ctx context.Context) ([]string, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	return l.Keys(), nil
}

// CreateMonth adds an empty month log. An existing month is left untouched
// and nothing is written.
func (s *LedgerService) CreateMonth(ctx context.Context, key string) (CreateStatus, error) {
	if err := core.ValidateMonthKey(key); err != nil {
		return 0, err
	}

	l, err := s.Ledger(ctx)
	if err != nil {
		return 0, err
	}
	if l.Has(key) {
		s.logger.DebugContext(ctx, "Month already exists", applog.FieldMonthKey, key)
		return AlreadyExists, nil
	}

	l[key] = []core.Session{}
	if err := s.save(ctx, l, applog.OpCreateMonth); err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "Month created", applog.FieldMonthKey, key)
	s.publish(ctx, amqp.NewLedgerEventMessage(amqp.EventMonthCreated, key, nil))
	return Created, nil
}

// DeleteMonth removes a month log and all of its sessions.
func (s *LedgerService) DeleteMonth(ctx context.Context, key string) (DeleteStatus, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return 0, err
	}
	if !l.Has(key) {
		s.logger.DebugContext(ctx, "Month not found for delete",
			applog.NewFields().WithOperation(applog.OpDeleteMonth).WithMonth(key).
				WithErrorType(applog.ErrorTypeNotFound).ToSlice()...)
		return NotFound, nil
	}

	removed := len(l[key])
	delete(l, key)
	if err := s.save(ctx, l, applog.OpDeleteMonth); err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "Month deleted",
		applog.FieldMonthKey, key,
		applog.FieldSessions, removed)
	s.publish(ctx, amqp.NewLedgerEventMessage(amqp.EventMonthDeleted, key, nil))
	return Deleted, nil
}

// AppendSession records a session under key, creating the month if needed.
// The date must be a real YYYY-MM-DD date and profit must be non-negative;
// whether the date falls inside the month named by key is the caller's concern.
func (s *LedgerService) AppendSession(ctx context.Context, key, fishingLocation, sellLocation, date string, profit int64) error {
	if err := core.ValidateMonthKey(key); err != nil {
		return err
	}
	session := core.Session{
		Date:            date,
		FishingLocation: fishingLocation,
		SellLocation:    sellLocation,
		Profit:          profit,
	}
	if err := session.Validate(); err != nil {
		s.logger.WarnContext(ctx, "Rejected session",
			applog.NewFields().WithMonth(key).WithSession(date, fishingLocation, sellLocation, profit).
				WithError(err).WithErrorType(applog.ErrorTypeValidation).ToSlice()...)
		return fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	l, err := s.Ledger(ctx)
	if err != nil {
		return err
	}
	l[key] = append(l[key], session)
	if err := s.save(ctx, l, applog.OpAppend); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Session logged",
		applog.NewFields().WithMonth(key).WithSession(date, fishingLocation, sellLocation, profit).ToSlice()...)
	s.publish(ctx, amqp.NewLedgerEventMessage(amqp.EventSessionLogged, key, &session))
	return nil
}

// TotalForMonth sums the month's profits. found is false for an unknown key.
func (s *LedgerService) TotalForMonth(ctx context.Context, key string) (total int64, found bool, err error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return 0, false, err
	}
	total, found = l.MonthTotal(key)
	s.logger.DebugContext(ctx, "Month total computed",
		applog.FieldOperation, applog.OpMonthTotal,
		applog.FieldMonthKey, key,
		applog.FieldTotal, total)
	return total, found, nil
}

// TotalLifetime sums every session in the ledger; zero when it is empty.
func (s *LedgerService) TotalLifetime(ctx context.Context) (int64, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return 0, err
	}
	total := l.LifetimeTotal()
	s.logger.DebugContext(ctx, "Lifetime total computed",
		applog.FieldOperation, applog.OpLifetime,
		applog.FieldMonths, len(l),
		applog.FieldTotal, total)
	return total, nil
}

// MonthReport renders the month total line shown by the menu.
func (s *LedgerService) MonthReport(ctx context.Context, key string) (string, error) {
	total, found, err := s.TotalForMonth(ctx, key)
	if err != nil {
		return "", err
	}
	return MonthTotalMessage(key, total, found), nil
}

// LifetimeReport renders the lifetime total line shown by the menu.
func (s *LedgerService) LifetimeReport(ctx context.Context) (string, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return "", err
	}
	total := l.LifetimeTotal()
	s.logger.DebugContext(ctx, "Lifetime total computed",
		applog.FieldOperation, applog.OpLifetime,
		applog.FieldMonths, len(l),
		applog.FieldTotal, total)
	return LifetimeMessage(total, len(l)), nil
}

func (s *LedgerService) save(ctx context.Context, l core.Ledger, op string) error {
	if err := s.store.Save(ctx, l); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save ledger",
			applog.NewFields().WithOperation(op).WithError(err).WithErrorType(applog.ErrorTypeStorage).ToSlice()...)
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// publish never fails the caller: the ledger is already saved.
func (s *LedgerService) publish(ctx context.Context, msg *amqp.LedgerEventMessage) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish ledger event",
			applog.NewFields().WithOperation(applog.OpPublish).WithMonth(msg.MonthKey).
				WithError(err).WithErrorType(applog.ErrorTypeNetwork).ToSlice()...)
	}
}
