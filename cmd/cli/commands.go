package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/epic-events/gen/go/crm/v1"
)

var errUsage = errors.New("usage")

// Accepted date layouts, day first.
const (
	dateTimeLayout = "02/01/2006 15:04"
	dateLayout     = "02/01/2006"
)

type app struct {
	cli      pb.CRMClient
	out      io.Writer
	json     bool
	token    string
	password func(prompt string) (string, error)
}

type command func(ctx context.Context, args []string) error

func (a *app) commands() map[string]command {
	return map[string]command{
		"login":  a.login,
		"logout": a.logout,
		"whoami": a.whoami,

		"user create": a.userCreate,
		"user list":   a.userList,
		"user update": a.userUpdate,
		"user delete": a.userDelete,

		"client create": a.clientCreate,
		"client list":   a.clientList,
		"client get":    a.clientGet,
		"client update": a.clientUpdate,

		"contract create": a.contractCreate,
		"contract list":   a.contractList,
		"contract update": a.contractUpdate,

		"event create": a.eventCreate,
		"event list":   a.eventList,
		"event update": a.eventUpdate,
		"event assign": a.eventAssign,
	}
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmds := a.commands()
	if c, ok := cmds[args[0]]; ok {
		return c(ctx, args[1:])
	}
	if len(args) >= 2 {
		if c, ok := cmds[args[0]+" "+args[1]]; ok {
			if a.token == "" {
				return errNoSession
			}
			return c(ctx, args[2:])
		}
	}
	return errUsage
}

// ---- flag helpers ----

func newFlags(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// given reports which flags were explicitly set, for partial updates.
func given(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func optString(set map[string]bool, name, v string) *string {
	if !set[name] {
		return nil
	}
	return &v
}

func required(fs *flag.FlagSet, names ...string) error {
	set := given(fs)
	var missing []string
	for _, n := range names {
		if !set[n] {
			missing = append(missing, "-"+n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing %s", fs.Name(), strings.Join(missing, ", "))
	}
	return nil
}

// parseDate accepts "DD/MM/YYYY HH:MM" or "DD/MM/YYYY" in local time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{dateTimeLayout, dateLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want DD/MM/YYYY or \"DD/MM/YYYY HH:MM\")", s)
}

// parseAmount normalizes s to the two-decimal wire form.
func parseAmount(name, s string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid %s %q", name, s)
	}
	return d.StringFixed(2), nil
}

func parseTimestamp(s string) (*timestamppb.Timestamp, error) {
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return timestamppb.New(t), nil
}

// ---- session ----

func (a *app) login(ctx context.Context, args []string) error {
	fs := newFlags("login")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("login: need -email")
	}
	if *password == "" {
		p, err := a.password("Password: ")
		if err != nil {
			return err
		}
		*password = p
	}
	resp, err := a.cli.Login(ctx, &pb.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	if err := saveToken(tokenFile{Token: resp.GetToken(), ExpiresAt: resp.GetExpiresAt().AsTime(), Email: resp.GetUser().GetEmail()}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "logged in as %s (%s) until %s\n", resp.GetUser().GetEmail(), resp.GetUser().GetRole(), localTime(resp.GetExpiresAt(), dateTimeLayout))
	return nil
}

func (a *app) logout(context.Context, []string) error {
	if err := clearToken(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *app) whoami(ctx context.Context, _ []string) error {
	if a.token == "" {
		return errNoSession
	}
	u, err := a.cli.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return err
	}
	return a.users([]*pb.User{u})
}

// ---- users ----

func (a *app) userCreate(ctx context.Context, args []string) error {
	fs := newFlags("user create")
	in := pb.CreateUserRequest{}
	fs.StringVar(&in.Name, "name", "", "full name")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Password, "password", "", "password (prompted when empty)")
	fs.StringVar(&in.Department, "department", "", "sales|support|gestion")
	fs.StringVar(&in.Role, "role", "", "sales|support|gestion")
	fs.BoolVar(&in.IsSuperuser, "superuser", false, "grant every permission")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "name", "email", "role"); err != nil {
		return err
	}
	if in.Department == "" {
		in.Department = in.Role
	}
	if in.Password == "" {
		p, err := a.password("New user password: ")
		if err != nil {
			return err
		}
		in.Password = p
	}
	u, err := a.cli.CreateUser(ctx, &in)
	if err != nil {
		return err
	}
	return a.users([]*pb.User{u})
}

func (a *app) userList(ctx context.Context, _ []string) error {
	res, err := a.cli.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return err
	}
	return a.users(res.GetUsers())
}

func (a *app) userUpdate(ctx context.Context, args []string) error {
	fs := newFlags("user update")
	id := fs.String("id", "", "user id")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "new password")
	dept := fs.String("department", "", "sales|support|gestion")
	role := fs.String("role", "", "sales|support|gestion")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	set := given(fs)
	u, err := a.cli.UpdateUser(ctx, &pb.UpdateUserRequest{
		Id:         *id,
		Name:       optString(set, "name", *name),
		Email:      optString(set, "email", *email),
		Password:   optString(set, "password", *password),
		Department: optString(set, "department", *dept),
		Role:       optString(set, "role", *role),
	})
	if err != nil {
		return err
	}
	return a.users([]*pb.User{u})
}

func (a *app) userDelete(ctx context.Context, args []string) error {
	fs := newFlags("user delete")
	id := fs.String("id", "", "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	if _, err := a.cli.DeleteUser(ctx, &pb.DeleteUserRequest{Id: *id}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "deleted", *id)
	return nil
}

// ---- clients ----

func (a *app) clientCreate(ctx context.Context, args []string) error {
	fs := newFlags("client create")
	in := pb.CreateClientRequest{}
	fs.StringVar(&in.Name, "name", "", "full name")
	fs.StringVar(&in.PhoneNumber, "phone", "", "phone number")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.CompanyName, "company", "", "company name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "name", "phone", "email", "company"); err != nil {
		return err
	}
	c, err := a.cli.CreateClient(ctx, &in)
	if err != nil {
		return err
	}
	return a.clients([]*pb.Client{c})
}

func (a *app) clientList(ctx context.Context, _ []string) error {
	res, err := a.cli.ListClients(ctx, &pb.ListClientsRequest{})
	if err != nil {
		return err
	}
	return a.clients(res.GetClients())
}

func (a *app) clientGet(ctx context.Context, args []string) error {
	fs := newFlags("client get")
	id := fs.String("id", "", "client id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	c, err := a.cli.GetClient(ctx, &pb.GetClientRequest{Id: *id})
	if err != nil {
		return err
	}
	return a.clients([]*pb.Client{c})
}

func (a *app) clientUpdate(ctx context.Context, args []string) error {
	fs := newFlags("client update")
	id := fs.String("id", "", "client id")
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email")
	company := fs.String("company", "", "company name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	set := given(fs)
	c, err := a.cli.UpdateClient(ctx, &pb.UpdateClientRequest{
		Id:          *id,
		Name:        optString(set, "name", *name),
		PhoneNumber: optString(set, "phone", *phone),
		Email:       optString(set, "email", *email),
		CompanyName: optString(set, "company", *company),
	})
	if err != nil {
		return err
	}
	return a.clients([]*pb.Client{c})
}

// ---- contracts ----

func (a *app) contractCreate(ctx context.Context, args []string) error {
	fs := newFlags("contract create")
	client := fs.String("client", "", "client id")
	total := fs.String("total", "", "total amount")
	remaining := fs.String("remaining", "", "remaining amount (defaults to total)")
	st := fs.String("status", "", "pending|signed (default pending)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "client", "total"); err != nil {
		return err
	}
	in := pb.CreateContractRequest{ClientId: *client, Status: *st}
	var err error
	if in.TotalAmount, err = parseAmount("total", *total); err != nil {
		return err
	}
	in.RemainingAmount = in.TotalAmount
	if *remaining != "" {
		if in.RemainingAmount, err = parseAmount("remaining", *remaining); err != nil {
			return err
		}
	}
	c, err := a.cli.CreateContract(ctx, &in)
	if err != nil {
		return err
	}
	return a.contracts([]*pb.Contract{c})
}

func (a *app) contractList(ctx context.Context, args []string) error {
	fs := newFlags("contract list")
	in := pb.ListContractsRequest{}
	fs.BoolVar(&in.Unsigned, "unsigned", false, "only contracts not signed yet")
	fs.BoolVar(&in.Unpaid, "unpaid", false, "only contracts with a remaining amount")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res, err := a.cli.ListContracts(ctx, &in)
	if err != nil {
		return err
	}
	return a.contracts(res.GetContracts())
}

func (a *app) contractUpdate(ctx context.Context, args []string) error {
	fs := newFlags("contract update")
	id := fs.String("id", "", "contract id")
	st := fs.String("status", "", "pending|signed")
	total := fs.String("total", "", "total amount")
	remaining := fs.String("remaining", "", "remaining amount")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	set := given(fs)
	in := pb.UpdateContractRequest{Id: *id, Status: optString(set, "status", *st)}
	if set["total"] {
		d, err := parseAmount("total", *total)
		if err != nil {
			return err
		}
		in.TotalAmount = &d
	}
	if set["remaining"] {
		d, err := parseAmount("remaining", *remaining)
		if err != nil {
			return err
		}
		in.RemainingAmount = &d
	}
	c, err := a.cli.UpdateContract(ctx, &in)
	if err != nil {
		return err
	}
	return a.contracts([]*pb.Contract{c})
}

// ---- events ----

func (a *app) eventCreate(ctx context.Context, args []string) error {
	fs := newFlags("event create")
	contract := fs.String("contract", "", "signed contract id")
	start := fs.String("start", "", "start date")
	end := fs.String("end", "", "end date")
	location := fs.String("location", "", "location")
	attendees := fs.Int("attendees", 0, "expected attendees")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "contract", "start", "end", "location"); err != nil {
		return err
	}
	in := pb.CreateEventRequest{
		ContractId: *contract,
		Location:   *location,
		Attendees:  int32(*attendees),
		Notes:      optString(given(fs), "notes", *notes),
	}
	var err error
	if in.StartDate, err = parseTimestamp(*start); err != nil {
		return err
	}
	if in.EndDate, err = parseTimestamp(*end); err != nil {
		return err
	}
	e, err := a.cli.CreateEvent(ctx, &in)
	if err != nil {
		return err
	}
	return a.events([]*pb.Event{e})
}

func (a *app) eventList(ctx context.Context, args []string) error {
	fs := newFlags("event list")
	in := pb.ListEventsRequest{}
	fs.BoolVar(&in.NoSupport, "no-support", false, "only events without a support contact")
	fs.BoolVar(&in.Mine, "mine", false, "only events assigned to me")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res, err := a.cli.ListEvents(ctx, &in)
	if err != nil {
		return err
	}
	return a.events(res.GetEvents())
}

func (a *app) eventUpdate(ctx context.Context, args []string) error {
	fs := newFlags("event update")
	id := fs.String("id", "", "event id")
	start := fs.String("start", "", "start date")
	end := fs.String("end", "", "end date")
	location := fs.String("location", "", "location")
	attendees := fs.Int("attendees", 0, "expected attendees")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id"); err != nil {
		return err
	}
	set := given(fs)
	in := pb.UpdateEventRequest{
		Id:       *id,
		Location: optString(set, "location", *location),
		Notes:    optString(set, "notes", *notes),
	}
	if set["attendees"] {
		n := int32(*attendees)
		in.Attendees = &n
	}
	var err error
	if set["start"] {
		if in.StartDate, err = parseTimestamp(*start); err != nil {
			return err
		}
	}
	if set["end"] {
		if in.EndDate, err = parseTimestamp(*end); err != nil {
			return err
		}
	}
	e, err := a.cli.UpdateEvent(ctx, &in)
	if err != nil {
		return err
	}
	return a.events([]*pb.Event{e})
}

func (a *app) eventAssign(ctx context.Context, args []string) error {
	fs := newFlags("event assign")
	id := fs.String("id", "", "event id")
	support := fs.String("support", "", "support collaborator id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "id", "support"); err != nil {
		return err
	}
	e, err := a.cli.AssignSupport(ctx, &pb.AssignSupportRequest{EventId: *id, SupportId: *support})
	if err != nil {
		return err
	}
	return a.events([]*pb.Event{e})
}
