package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/arenaku/courtbook/internal/api"
	"github.com/arenaku/courtbook/internal/display"
	"github.com/arenaku/courtbook/internal/domain"
	"github.com/arenaku/courtbook/internal/session"
	"github.com/arenaku/courtbook/internal/state"
	"github.com/arenaku/courtbook/internal/utils"
	"github.com/arenaku/courtbook/internal/workflow"
	"github.com/arenaku/courtbook/pkg/config"
	"github.com/arenaku/courtbook/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	app, err := newApp(cfg)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "book":
		err = app.runBook(ctx, os.Args[2:])
	case "status":
		err = app.runStatus(ctx, os.Args[2:])
	case "list":
		err = app.runList(ctx, os.Args[2:])
	case "login":
		err = app.runLogin(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: courtbook <book|status|list|login> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "  book    submit a booking for a selected court and time slot")
	fmt.Fprintln(os.Stderr, "  status  look up a booking's current status")
	fmt.Fprintln(os.Stderr, "  list    list your bookings")
	fmt.Fprintln(os.Stderr, "  login   store an access token for authenticated calls")
}

type app struct {
	cfg    *config.Config
	store  state.Store
	client *api.Client
	users  *session.Manager
	notify *consoleNotifier
}

func newApp(cfg *config.Config) (*app, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	users := session.NewManager(store, cfg.Session.JWTSecret)
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, users)

	return &app{
		cfg:    cfg,
		store:  store,
		client: client,
		users:  users,
		notify: &consoleNotifier{},
	}, nil
}

func newStore(cfg *config.Config) (state.Store, error) {
	switch cfg.State.Backend {
	case "redis":
		return state.NewRedisStore(cfg.State.RedisURL, cfg.State.RedisPassword, cfg.State.RedisDB, cfg.State.KeyPrefix)
	case "file":
		path := cfg.State.FilePath
		if path == "" {
			var err error
			path, err = state.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		return state.NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.State.Backend)
	}
}

func (a *app) runBook(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	court := fs.String("court", "", "court identifier or name from the court list (required)")
	date := fs.String("date", "", `calendar date, e.g. "2025-03-10" (required)`)
	timeRange := fs.String("time", "", `time slot, e.g. "09:00-10:30" (required)`)
	name := fs.String("name", "", "full name (required)")
	phone := fs.String("phone", "", "WhatsApp number (required)")
	email := fs.String("email", "", "email address (optional)")
	team := fs.String("team", "", "team name (optional)")
	findOpponent := fs.Bool("find-opponent", false, "list this slot in the open matches board")
	fs.Parse(args)

	if *phone != "" && !utils.IsValidPhone(*phone) {
		a.notify.Info("the phone number looks unusual, double-check it before confirming")
	}

	form := domain.FormInput{
		Name:         *name,
		Phone:        *phone,
		Email:        *email,
		TeamName:     *team,
		FindOpponent: *findOpponent,
	}
	bctx := domain.BookingContext{
		CourtID:   *court,
		Court:     *court,
		Date:      *date,
		TimeRange: *timeRange,
	}

	submitter := workflow.NewSubmitter(a.client, a.users, a.store, a.notify, a.cfg.Locale.Location())
	outcome := submitter.Submit(ctx, form, bctx)

	switch outcome.State {
	case workflow.StateRedirecting:
		fmt.Println("Open this link to complete the payment:")
		fmt.Println(outcome.RedirectURL)
		return nil
	case workflow.StateStatusFallback:
		// The booking exists even though payment initiation did not
		// complete; show its status instead of losing it.
		fmt.Printf("Your booking ID is %d.\n", outcome.BookingID)
		return a.showStatus(ctx, fmt.Sprintf("%d", outcome.BookingID), nil)
	default:
		return fmt.Errorf("submission failed: %s", outcome.Reason)
	}
}

func (a *app) runStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	rawQuery := fs.String("query", "", `navigational query string, e.g. "bookingId=42"`)
	fs.Parse(args)

	candidate := fs.Arg(0)

	var q url.Values
	if *rawQuery != "" {
		parsed, err := url.ParseQuery(*rawQuery)
		if err != nil {
			a.notify.Error("invalid query string")
			return err
		}
		q = parsed
	}

	return a.showStatus(ctx, candidate, q)
}

func (a *app) showStatus(ctx context.Context, candidate string, q url.Values) error {
	viewer := workflow.NewStatusViewer(a.client, a.store, a.notify, workflow.WithQuery(q))

	booking, err := viewer.Refresh(ctx, candidate)
	if err != nil {
		return err
	}
	if booking == nil {
		fmt.Println("Enter a booking ID to view its status.")
		return nil
	}

	renderBooking(booking)
	return nil
}

func renderBooking(b *domain.Booking) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Status:\t%s\n", display.FormatStatus(string(b.Status)))
	if b.Court != nil && b.Court.Name != "" {
		fmt.Fprintf(w, "Court:\t%s\n", b.Court.Name)
		if b.Court.Location != "" {
			fmt.Fprintf(w, "Location:\t%s\n", b.Court.Location)
		}
	} else {
		fmt.Fprintf(w, "Court:\t#%d\n", b.CourtID)
	}
	fmt.Fprintf(w, "Date:\t%s\n", display.FormatDate(b.StartTime))
	fmt.Fprintf(w, "Time:\t%s\n", display.FormatTimeRange(b.StartTime, b.EndTime))
	fmt.Fprintf(w, "Price:\t%s\n", display.FormatPrice(b.TotalPrice))
	w.Flush()
}

func (a *app) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	limit := fs.Int("limit", 20, "maximum number of bookings to list")
	offset := fs.Int("offset", 0, "number of bookings to skip")
	status := fs.String("status", "", "filter by lifecycle status")
	fs.Parse(args)

	if *status != "" {
		if _, ok := domain.ParseBookingStatus(*status); !ok {
			a.notify.Error("unknown status filter")
			return fmt.Errorf("unknown status %q", *status)
		}
	}

	bookings, err := a.client.ListBookings(ctx, api.ListOptions{
		Limit:  *limit,
		Offset: *offset,
		Status: *status,
	})
	if err != nil {
		a.notify.Error("failed to list bookings")
		return err
	}

	if len(bookings) == 0 {
		fmt.Println("No bookings found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tDATE\tTIME\tPRICE")
	for _, b := range bookings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			b.ID,
			display.FormatStatus(string(b.Status)),
			display.FormatDate(b.StartTime),
			display.FormatTimeRange(b.StartTime, b.EndTime),
			display.FormatPrice(b.TotalPrice),
		)
	}
	return w.Flush()
}

func (a *app) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	token := fs.String("token", "", "access token issued by the booking backend (required)")
	fs.Parse(args)

	if *token == "" {
		a.notify.Error("a token is required")
		return fmt.Errorf("missing -token")
	}

	if err := a.store.SetSessionToken(ctx, *token); err != nil {
		a.notify.Error("failed to store the access token")
		return err
	}

	if user, err := a.users.CurrentUser(ctx); err == nil {
		a.notify.Success(fmt.Sprintf("signed in as %s", user.Email))
	} else {
		a.notify.Info("token stored, but it does not parse as a valid session yet")
	}
	return nil
}

// consoleNotifier renders workflow notifications on stderr, keeping stdout
// for the actual command output.
type consoleNotifier struct{}

func (n *consoleNotifier) Success(msg string) { fmt.Fprintln(os.Stderr, "ok: "+msg) }
func (n *consoleNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "error: "+msg) }
func (n *consoleNotifier) Info(msg string)    { fmt.Fprintln(os.Stderr, "note: "+msg) }
