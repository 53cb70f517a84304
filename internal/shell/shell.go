// Package shell is the interactive menu in front of the ledger service.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fishledger/internal/core"
	applog "fishledger/internal/log"
	"fishledger/internal/services"
)

// Ledger is the subset of services.LedgerService the menu drives.
type Ledger interface {
	MonthKeys(ctx context.Context) ([]string, error)
	CreateMonth(ctx context.Context, key string) (services.CreateStatus, error)
	DeleteMonth(ctx context.Context, key string) (services.DeleteStatus, error)
	AppendSession(ctx context.Context, key, fishingLocation, sellLocation, date string, profit int64) error
	MonthReport(ctx context.Context, key string) (string, error)
	LifetimeReport(ctx context.Context) (string, error)
}

// Outcome is how Run ended.
type Outcome int

const (
	OutcomeExit Outcome = iota
	OutcomeClosed
	OutcomeInterrupted
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExit:
		return "exit"
	case OutcomeClosed:
		return "closed"
	case OutcomeInterrupted:
		return "interrupted"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExitCode is the process status for the outcome.
func (o Outcome) ExitCode() int {
	if o == OutcomeExit {
		return 0
	}
	return 1
}

const menu = `
BDO Fishing Profit Calculator
1. Log a fishing session
2. View total profits for a month
3. Create a new monthly log
4. Delete a monthly log
5. View lifetime profit
6. Exit
`

const (
	actionLog    = "log a session"
	actionView   = "view profits"
	actionDelete = "delete"
)

type Shell struct {
	ledger Ledger
	prompt *Prompter
	out    io.Writer
	logger *applog.Logger
}

func New(ledger Ledger, in io.Reader, out io.Writer, logger *applog.Logger) *Shell {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Shell{
		ledger: ledger,
		prompt: NewPrompter(in, out),
		out:    out,
		logger: logger.WithComponent(applog.ComponentShell),
	}
}

// Run loops over the main menu until the user exits, input ends, ctx is
// cancelled or storage fails. Only OutcomeFailed carries an error.
func (s *Shell) Run(ctx context.Context) (Outcome, error) {
	for {
		err := s.step(ctx)
		switch {
		case err == nil:
			continue
		case errors.Is(err, errExit):
			s.println("Exiting program.")
			return OutcomeExit, nil
		case errors.Is(err, ErrInputClosed):
			s.println("\nInput stream closed unexpectedly. Exiting.")
			return OutcomeClosed, nil
		case errors.Is(err, ErrInterrupted):
			s.println("\nOperation interrupted. Exiting.")
			return OutcomeInterrupted, nil
		default:
			s.logger.ErrorContext(ctx, "Menu loop stopped",
				applog.NewFields().WithError(err).WithErrorType(applog.ErrorTypeStorage).ToSlice()...)
			return OutcomeFailed, err
		}
	}
}

var errExit = errors.New("exit requested")

// step shows the menu once and runs the chosen action.
func (s *Shell) step(ctx context.Context) error {
	fmt.Fprint(s.out, menu)
	choice, err := s.ask(ctx, "Select an option (1-6): ")
	if err != nil {
		return err
	}
	choice = strings.TrimSpace(choice)
	s.logger.DebugContext(ctx, "Menu choice", applog.FieldMenuChoice, choice)

	// Reload before dispatch so every action sees what is on disk.
	keys, err := s.ledger.MonthKeys(ctx)
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return s.logSession(ctx, keys)
	case "2":
		key, ok, err := s.pickMonth(ctx, keys, actionView)
		if err != nil || !ok {
			return err
		}
		report, err := s.ledger.MonthReport(ctx, key)
		if err != nil {
			return err
		}
		s.println(report)
	case "3":
		return s.createMonth(ctx)
	case "4":
		key, ok, err := s.pickMonth(ctx, keys, actionDelete)
		if err != nil || !ok {
			return err
		}
		status, err := s.ledger.DeleteMonth(ctx, key)
		if err != nil {
			return err
		}
		s.println(status.Message(key))
	case "5":
		report, err := s.ledger.LifetimeReport(ctx)
		if err != nil {
			return err
		}
		s.println(report)
	case "6":
		return errExit
	default:
		s.println("Invalid choice. Please select 1-6.")
	}
	return nil
}

// pickMonth lists keys (already sorted) and reads a 1-based index.
// ok is false when the user should be sent back to the main menu.
func (s *Shell) pickMonth(ctx context.Context, keys []string, action string) (key string, ok bool, err error) {
	if len(keys) == 0 {
		s.printf("No monthly logs exist. Please create a new log before %s.\n", action)
		return "", false, nil
	}

	s.printf("\nSelect a month to %s:\n", action)
	for i, k := range keys {
		s.printf("%d. %s\n", i+1, k)
	}

	text, err := s.ask(ctx, "Enter the number of your choice: ")
	if err != nil {
		return "", false, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil {
		s.logger.DebugContext(ctx, "Month choice is not a number",
			applog.NewFields().WithError(convErr).WithErrorType(applog.ErrorTypeInput).ToSlice()...)
		s.println("Please enter a valid number.")
		return "", false, nil
	}
	if n < 1 || n > len(keys) {
		s.println("Invalid choice.")
		return "", false, nil
	}
	return keys[n-1], true, nil
}

// logSession is the guided flow. Any invalid field abandons the attempt.
func (s *Shell) logSession(ctx context.Context, keys []string) error {
	key, ok, err := s.pickMonth(ctx, keys, actionLog)
	if err != nil || !ok {
		return err
	}

	fishing, err := s.ask(ctx, "Enter fishing location (e.g., Velia, Epheria, Altinova): ")
	if err != nil {
		return err
	}
	sell, err := s.ask(ctx, "Enter sell location (e.g., Seoul): ")
	if err != nil {
		return err
	}

	month, year, ok := core.ParseMonthKey(key)
	if !ok {
		s.println("Invalid month format in log. Please create a new log with correct format.")
		return nil
	}
	days := core.DaysIn(year, month)

	dayText, err := s.ask(ctx, fmt.Sprintf("Enter day of the month (1-%d): ", days))
	if err != nil {
		return err
	}
	day, ok := core.ValidateDay(dayText, month, year)
	if !ok {
		s.printf("Invalid day. Please enter a number between 1 and %d.\n", days)
		return nil
	}

	date, ok := core.AssembleDate(year, month, day)
	if !ok {
		s.println("Invalid date constructed. Please try again.")
		return nil
	}

	profitText, err := s.ask(ctx, "Enter total profit (in silver, e.g., 1,000,000): ")
	if err != nil {
		return err
	}
	profit, ok := core.ParseProfit(profitText)
	if !ok {
		s.println("Please enter a valid non-negative number (commas allowed, e.g., 1,000,000).")
		return nil
	}

	if err := s.ledger.AppendSession(ctx, key, fishing, sell, date, profit); err != nil {
		return err
	}
	s.println(services.SessionLoggedMessage(profit))
	return nil
}

func (s *Shell) createMonth(ctx context.Context) error {
	key, err := s.ask(ctx, "Enter month and year for new log (e.g., April 2025): ")
	if err != nil {
		return err
	}

	status, err := s.ledger.CreateMonth(ctx, key)
	if errors.Is(err, core.ErrEmptyMonthKey) {
		s.println("Month and year cannot be empty.")
		return nil
	}
	if err != nil {
		return err
	}
	s.println(status.Message(key))
	return nil
}

func (s *Shell) ask(ctx context.Context, prompt string) (string, error) {
	in := s.prompt.Ask(ctx, prompt)
	if err := in.Err(); err != nil {
		return "", err
	}
	return in.Text, nil
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
