package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vibestage/vibestage-client/internal/app"
	"github.com/vibestage/vibestage-client/internal/catalog"
	"github.com/vibestage/vibestage-client/internal/model"
	"github.com/vibestage/vibestage-client/internal/result"
)

// ---- auth ----

func cmdRegister(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email")
	pass := fs.String("password", "", "password")
	role := fs.String("role", model.RoleArtist, "artist or promoter")
	_ = fs.Parse(args)
	if *name == "" || *email == "" || *pass == "" {
		fmt.Fprintln(os.Stderr, "need -name, -email and -password")
		os.Exit(2)
	}

	resp := await(a.Auth.Register(ctx, model.RegisterRequest{
		Name: *name, Email: *email, Password: *pass, Role: *role,
	}))
	fmt.Printf("registered as %s (%s)\n", resp.User.Name, resp.User.Role)
}

func cmdLogin(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email")
	pass := fs.String("password", "", "password")
	_ = fs.Parse(args)
	if *email == "" || *pass == "" {
		fmt.Fprintln(os.Stderr, "need -email and -password")
		os.Exit(2)
	}

	resp := await(a.Auth.Login(ctx, *email, *pass))
	fmt.Printf("ok, logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
}

func cmdLogout(a *app.App) {
	if err := a.Auth.Logout(); err != nil {
		fail(err)
	}
	fmt.Println("logged out")
}

func cmdWhoami(a *app.App) {
	sess, err := a.Store.Load()
	if err != nil {
		fail(err)
	}
	out := map[string]any{"user_id": sess.UserID, "name": sess.Name, "email": sess.Email}
	if exp, ok := sess.ExpiresAt(); ok {
		out["token_expires"] = exp.UTC().Format(time.RFC3339)
	}
	printJSON(out)
}

// ---- shows ----

func cmdShows(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("shows", flag.ExitOnError)
	genre := fs.String("genre", "", "genre filter")
	location := fs.String("location", "", "location filter")
	from := fs.String("from", "", "date from (YYYY-MM-DD)")
	to := fs.String("to", "", "date to (YYYY-MM-DD)")
	page := fs.Int("page", 0, "page")
	limit := fs.Int("limit", 0, "page size")
	_ = fs.Parse(args)

	shows := await(a.Shows.List(ctx, model.ShowFilter{
		Genre: *genre, Location: *location,
		DateFrom: *from, DateTo: *to,
		Page: *page, Limit: *limit,
	}))
	printJSON(shows)
}

func cmdShow(ctx context.Context, a *app.App, args []string) {
	id := parseID("show", args)
	printJSON(await(a.Shows.Get(ctx, id)))
}

func cmdShowAdd(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("show-add", flag.ExitOnError)
	title := fs.String("title", "", "title")
	desc := fs.String("desc", "", "description")
	location := fs.String("location", "", "location")
	date := fs.String("date", "", "date (YYYY-MM-DD)")
	genre := fs.String("genre", "", "genre")
	_ = fs.Parse(args)
	if *title == "" || *desc == "" || *location == "" || *date == "" {
		fmt.Fprintln(os.Stderr, "need -title, -desc, -location and -date")
		os.Exit(2)
	}

	show := await(a.Shows.Create(ctx, model.CreateShowRequest{
		Title: *title, Description: *desc, Location: *location,
		Date: *date, Genre: *genre,
	}))
	printJSON(show)
}

func cmdShowEdit(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("show-edit", flag.ExitOnError)
	id := fs.Int("id", 0, "show id")
	title := fs.String("title", "", "title")
	desc := fs.String("desc", "", "description")
	location := fs.String("location", "", "location")
	date := fs.String("date", "", "date")
	genre := fs.String("genre", "", "genre")
	available := fs.String("available", "", "true or false")
	_ = fs.Parse(args)
	if *id <= 0 {
		fmt.Fprintln(os.Stderr, "need -id")
		os.Exit(2)
	}

	var req model.UpdateShowRequest
	setIf := func(dst **string, v string) {
		if v != "" {
			*dst = &v
		}
	}
	setIf(&req.Title, *title)
	setIf(&req.Description, *desc)
	setIf(&req.Location, *location)
	setIf(&req.Date, *date)
	setIf(&req.Genre, *genre)
	switch strings.ToLower(*available) {
	case "":
	case "true":
		v := true
		req.IsAvailable = &v
	case "false":
		v := false
		req.IsAvailable = &v
	default:
		fmt.Fprintln(os.Stderr, "-available must be true or false")
		os.Exit(2)
	}

	printJSON(await(a.Shows.Update(ctx, *id, req)))
}

func cmdShowRm(ctx context.Context, a *app.App, args []string) {
	id := parseID("show-rm", args)
	fmt.Println(await(a.Shows.Delete(ctx, id)))
}

// ---- applications ----

func cmdApply(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	event := fs.Int("event", 0, "show id to apply to")
	message := fs.String("message", "", "message to the promoter")
	_ = fs.Parse(args)
	if *event <= 0 || *message == "" {
		fmt.Fprintln(os.Stderr, "need -event and -message")
		os.Exit(2)
	}

	printJSON(await(a.Applications.Create(ctx, *event, *message)))
}

func cmdApplications(ctx context.Context, a *app.App) {
	printJSON(await(a.Applications.Mine(ctx)))
}

func cmdEventApps(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("event-apps", flag.ExitOnError)
	event := fs.Int("event", 0, "show id")
	_ = fs.Parse(args)
	if *event <= 0 {
		fmt.Fprintln(os.Stderr, "need -event")
		os.Exit(2)
	}
	printJSON(await(a.Applications.ByEvent(ctx, *event)))
}

func cmdAccept(ctx context.Context, a *app.App, args []string) {
	id := parseID("accept", args)
	printJSON(await(a.Applications.Accept(ctx, id)))
}

func cmdReject(ctx context.Context, a *app.App, args []string) {
	id := parseID("reject", args)
	printJSON(await(a.Applications.Reject(ctx, id)))
}

func cmdWithdraw(ctx context.Context, a *app.App, args []string) {
	id := parseID("withdraw", args)
	fmt.Println(await(a.Applications.Delete(ctx, id)))
}

// ---- dashboard ----

// cmdDashboard renders the built-in opportunity board and, when the API is
// reachable, the live show listing next to it.
func cmdDashboard(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	filter := fs.String("filter", "Todos", "board filter: "+strings.Join(catalog.Filters, ", "))
	_ = fs.Parse(args)

	fmt.Println("genres:", strings.Join(catalog.Genres, ", "))
	fmt.Printf("opportunity board (%s):\n", *filter)
	for _, o := range catalog.Filter(*filter) {
		urgent := ""
		if o.Urgent {
			urgent = " [urgent]"
		}
		fmt.Printf("  %-18s %-14s %-12s %s%s\n",
			o.VenueName, o.EventDate, o.Payment, strings.Join(o.GenresWanted, "/"), urgent)
	}

	// Live data is best effort here; the board above works offline.
	live := result.Await(a.Shows.List(ctx, model.ShowFilter{Limit: 5}))
	if live.State == result.StateFailure {
		fmt.Fprintln(os.Stderr, "live shows unavailable:", live.Reason)
		return
	}
	fmt.Println("upcoming shows:")
	for _, s := range live.Data {
		fmt.Printf("  #%-4d %-24s %-12s %s\n", s.ID, s.Title, s.Date, s.Location)
	}
}

func parseID(cmd string, args []string) int {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	id := fs.Int("id", 0, "id")
	_ = fs.Parse(args)
	if *id <= 0 {
		fmt.Fprintln(os.Stderr, "need -id")
		os.Exit(2)
	}
	return *id
}
