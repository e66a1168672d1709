// Package convert maps domain types to and from the crm.v1 protobuf messages.
package convert

import (
	"time"

	pb "github.com/and161185/epic-events/gen/go/crm/v1"
	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	u "github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// fromTS returns the zero time for an absent timestamp.
func fromTS(field string, t *timestamppb.Timestamp) (time.Time, error) {
	if t == nil {
		return time.Time{}, nil
	}
	if err := t.CheckValid(); err != nil {
		return time.Time{}, errs.Validationf("%s: %v", field, err)
	}
	return t.AsTime(), nil
}

func requiredTS(field string, t *timestamppb.Timestamp) (time.Time, error) {
	if t == nil {
		return time.Time{}, errs.Validationf("%s is required", field)
	}
	return fromTS(field, t)
}

// ParseID parses a wire id; field names the offending argument in the error.
func ParseID(field, s string) (u.UUID, error) {
	var id u.UUID
	if err := id.UnmarshalText([]byte(s)); err != nil {
		return u.Nil, errs.Validationf("%s: invalid id %q", field, s)
	}
	return id, nil
}

// ParseAmount parses a decimal string amount.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Validationf("%s: invalid amount %q", field, s)
	}
	return d, nil
}

func optAmount(field string, s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := ParseAmount(field, *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func amount(d decimal.Decimal) string { return d.StringFixed(2) }

func idString(id *u.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// --- users ---

// ToProtoUser converts a user; the password hash never leaves the server.
func ToProtoUser(in model.User) *pb.User {
	return &pb.User{
		Id:          in.ID.String(),
		Name:        in.Name,
		Email:       in.Email,
		Department:  in.Department,
		Role:        string(in.Role),
		IsSuperuser: in.IsSuperuser,
		CreatedAt:   ts(in.CreatedAt),
	}
}

func ToProtoUsers(in []model.User) []*pb.User {
	out := make([]*pb.User, 0, len(in))
	for _, x := range in {
		out = append(out, ToProtoUser(x))
	}
	return out
}

func FromProtoNewUser(in *pb.CreateUserRequest) model.NewUser {
	return model.NewUser{
		Name:        in.GetName(),
		Email:       in.GetEmail(),
		Password:    in.GetPassword(),
		Department:  in.GetDepartment(),
		Role:        model.Role(in.GetRole()),
		IsSuperuser: in.GetIsSuperuser(),
	}
}

func FromProtoUserUpdate(in *pb.UpdateUserRequest) (u.UUID, model.UserUpdate, error) {
	id, err := ParseID("id", in.GetId())
	if err != nil {
		return u.Nil, model.UserUpdate{}, err
	}
	upd := model.UserUpdate{Name: in.Name, Email: in.Email, Password: in.Password, Department: in.Department}
	if in.Role != nil {
		r := model.Role(*in.Role)
		upd.Role = &r
	}
	return id, upd, nil
}

// --- clients ---

func ToProtoClient(in model.Client) *pb.Client {
	return &pb.Client{
		Id:             in.ID.String(),
		Name:           in.Name,
		PhoneNumber:    in.PhoneNumber,
		Email:          in.Email,
		CompanyName:    in.CompanyName,
		SalesContactId: in.SalesContactID.String(),
		CreatedAt:      ts(in.CreatedAt),
		LastUpdate:     ts(in.UpdatedAt),
	}
}

func ToProtoClients(in []model.Client) []*pb.Client {
	out := make([]*pb.Client, 0, len(in))
	for _, x := range in {
		out = append(out, ToProtoClient(x))
	}
	return out
}

func FromProtoNewClient(in *pb.CreateClientRequest) model.NewClient {
	return model.NewClient{
		Name:        in.GetName(),
		PhoneNumber: in.GetPhoneNumber(),
		Email:       in.GetEmail(),
		CompanyName: in.GetCompanyName(),
	}
}

func FromProtoClientPatch(in *pb.UpdateClientRequest) (u.UUID, model.ClientPatch, error) {
	id, err := ParseID("id", in.GetId())
	if err != nil {
		return u.Nil, model.ClientPatch{}, err
	}
	return id, model.ClientPatch{
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		CompanyName: in.CompanyName,
	}, nil
}

// --- contracts ---

// ToProtoContract renders amounts with two fraction digits.
func ToProtoContract(in model.Contract) *pb.Contract {
	return &pb.Contract{
		Id:              in.ID.String(),
		ClientId:        in.ClientID.String(),
		ClientName:      in.ClientName,
		SalesContactId:  in.SalesContactID.String(),
		TotalAmount:     amount(in.TotalAmount),
		RemainingAmount: amount(in.RemainingAmount),
		Status:          string(in.Status),
		CreatedAt:       ts(in.CreatedAt),
	}
}

func ToProtoContracts(in []model.Contract) []*pb.Contract {
	out := make([]*pb.Contract, 0, len(in))
	for _, x := range in {
		out = append(out, ToProtoContract(x))
	}
	return out
}

func FromProtoNewContract(in *pb.CreateContractRequest) (model.NewContract, error) {
	clientID, err := ParseID("client_id", in.GetClientId())
	if err != nil {
		return model.NewContract{}, err
	}
	total, err := ParseAmount("total_amount", in.GetTotalAmount())
	if err != nil {
		return model.NewContract{}, err
	}
	remaining, err := ParseAmount("remaining_amount", in.GetRemainingAmount())
	if err != nil {
		return model.NewContract{}, err
	}
	return model.NewContract{
		ClientID:        clientID,
		TotalAmount:     total,
		RemainingAmount: remaining,
		Status:          model.ContractStatus(in.GetStatus()),
	}, nil
}

func FromProtoContractPatch(in *pb.UpdateContractRequest) (u.UUID, model.ContractPatch, error) {
	id, err := ParseID("id", in.GetId())
	if err != nil {
		return u.Nil, model.ContractPatch{}, err
	}
	var p model.ContractPatch
	if p.TotalAmount, err = optAmount("total_amount", in.TotalAmount); err != nil {
		return u.Nil, model.ContractPatch{}, err
	}
	if p.RemainingAmount, err = optAmount("remaining_amount", in.RemainingAmount); err != nil {
		return u.Nil, model.ContractPatch{}, err
	}
	if in.Status != nil {
		st := model.ContractStatus(*in.Status)
		p.Status = &st
	}
	return id, p, nil
}

// --- events ---

func ToProtoEvent(in model.Event) *pb.Event {
	return &pb.Event{
		Id:               in.ID.String(),
		ContractId:       in.ContractID.String(),
		ClientName:       in.ClientName,
		SalesContactId:   in.SalesContactID.String(),
		SupportContactId: idString(in.SupportContactID),
		StartDate:        ts(in.StartDate),
		EndDate:          ts(in.EndDate),
		Location:         in.Location,
		Attendees:        int32(in.Attendees),
		Notes:            in.Notes,
	}
}

func ToProtoEvents(in []model.Event) []*pb.Event {
	out := make([]*pb.Event, 0, len(in))
	for _, x := range in {
		out = append(out, ToProtoEvent(x))
	}
	return out
}

func FromProtoNewEvent(in *pb.CreateEventRequest) (model.NewEvent, error) {
	contractID, err := ParseID("contract_id", in.GetContractId())
	if err != nil {
		return model.NewEvent{}, err
	}
	start, err := requiredTS("start_date", in.GetStartDate())
	if err != nil {
		return model.NewEvent{}, err
	}
	end, err := requiredTS("end_date", in.GetEndDate())
	if err != nil {
		return model.NewEvent{}, err
	}
	return model.NewEvent{
		ContractID: contractID,
		StartDate:  start,
		EndDate:    end,
		Location:   in.GetLocation(),
		Attendees:  int(in.GetAttendees()),
		Notes:      in.Notes,
	}, nil
}

func FromProtoEventPatch(in *pb.UpdateEventRequest) (u.UUID, model.EventPatch, error) {
	id, err := ParseID("id", in.GetId())
	if err != nil {
		return u.Nil, model.EventPatch{}, err
	}
	p := model.EventPatch{Location: in.Location, Notes: in.Notes}
	if in.StartDate != nil {
		t, err := fromTS("start_date", in.StartDate)
		if err != nil {
			return u.Nil, model.EventPatch{}, err
		}
		p.StartDate = &t
	}
	if in.EndDate != nil {
		t, err := fromTS("end_date", in.EndDate)
		if err != nil {
			return u.Nil, model.EventPatch{}, err
		}
		p.EndDate = &t
	}
	if in.Attendees != nil {
		n := int(*in.Attendees)
		p.Attendees = &n
	}
	return id, p, nil
}
