package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/epic-events/gen/go/crm/v1"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

var jsonOpts = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

// render prints msgs as a JSON array or rows as a table.
func (a *app) render(msgs []proto.Message, headers []string, rows [][]string) error {
	if a.json {
		out := make([]json.RawMessage, 0, len(msgs))
		for _, m := range msgs {
			b, err := jsonOpts.Marshal(m)
			if err != nil {
				return err
			}
			out = append(out, b)
		}
		return printJSON(a.out, out)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(a.out, mutedStyle.Render("(no results)"))
		return err
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(a.out, t.Render())
	return err
}

func messages[T proto.Message](xs []T) []proto.Message {
	out := make([]proto.Message, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func localTime(ts *timestamppb.Timestamp, layout string) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Local().Format(layout)
}

func (a *app) users(us []*pb.User) error {
	rows := make([][]string, 0, len(us))
	for _, u := range us {
		role := u.GetRole()
		if u.GetIsSuperuser() {
			role += " *"
		}
		rows = append(rows, []string{u.GetId(), u.GetName(), u.GetEmail(), u.GetDepartment(), role})
	}
	return a.render(messages(us), []string{"ID", "NAME", "EMAIL", "DEPARTMENT", "ROLE"}, rows)
}

func (a *app) clients(cs []*pb.Client) error {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{
			c.GetId(), c.GetName(), c.GetEmail(), c.GetPhoneNumber(), c.GetCompanyName(), c.GetSalesContactId(),
			localTime(c.GetLastUpdate(), dateLayout),
		})
	}
	return a.render(messages(cs), []string{"ID", "NAME", "EMAIL", "PHONE", "COMPANY", "SALES CONTACT", "UPDATED"}, rows)
}

func (a *app) contracts(cs []*pb.Contract) error {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{
			c.GetId(), c.GetClientName(), c.GetTotalAmount(), c.GetRemainingAmount(), c.GetStatus(),
			localTime(c.GetCreatedAt(), dateLayout),
		})
	}
	return a.render(messages(cs), []string{"ID", "CLIENT", "TOTAL", "REMAINING", "STATUS", "CREATED"}, rows)
}

func (a *app) events(es []*pb.Event) error {
	rows := make([][]string, 0, len(es))
	for _, e := range es {
		support := e.GetSupportContactId()
		if support == "" {
			support = "-"
		}
		rows = append(rows, []string{
			e.GetId(), e.GetClientName(),
			localTime(e.GetStartDate(), dateTimeLayout), localTime(e.GetEndDate(), dateTimeLayout),
			e.GetLocation(), strconv.Itoa(int(e.GetAttendees())), support, e.GetNotes(),
		})
	}
	return a.render(messages(es), []string{"ID", "CLIENT", "START", "END", "LOCATION", "ATTENDEES", "SUPPORT", "NOTES"}, rows)
}
