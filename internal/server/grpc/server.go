// Package grpcserver exposes the crm.v1.CRM gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"
	"strings"

	pb "github.com/and161185/epic-events/gen/go/crm/v1"
	"github.com/and161185/epic-events/internal/convert"
	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedCRMServer

	auth      service.AuthService
	users     service.UserService
	clients   service.ClientService
	contracts service.ContractService
	events    service.EventService
	log       *zap.Logger
}

var _ pb.CRMServer = (*Server)(nil)

// Services groups the application services served over gRPC.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Clients   service.ClientService
	Contracts service.ContractService
	Events    service.EventService
}

// New constructs a gRPC server with injected services.
func New(svc Services, log *zap.Logger) *Server {
	return &Server{
		auth:      svc.Auth,
		users:     svc.Users,
		clients:   svc.Clients,
		contracts: svc.Contracts,
		events:    svc.Events,
		log:       log,
	}
}

func remoteIP(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}

// actor returns the collaborator placed by AuthUnary.
func (s *Server) actor(ctx context.Context) (*model.User, error) {
	u, ok := ActorFromCtx(ctx)
	if !ok {
		return nil, toStatus(s.log, "actor", errs.ErrUnauthenticated)
	}
	return u, nil
}

// --- auth ---

// Login authenticates by email and password and issues a 24h session.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	sess, u, err := s.auth.Login(ctx, req.GetEmail(), req.GetPassword(), remoteIP(ctx))
	if err != nil {
		return nil, toStatus(s.log, "login", err)
	}
	return &pb.LoginResponse{
		Token:     sess.Token,
		ExpiresAt: timestamppb.New(sess.ExpiresAt),
		User:      convert.ToProtoUser(*u),
	}, nil
}

// WhoAmI returns the caller.
func (s *Server) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.User, error) {
	u, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	return convert.ToProtoUser(*u), nil
}

// --- users ---

func (s *Server) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, actor, convert.FromProtoNewUser(req))
	if err != nil {
		return nil, toStatus(s.log, "user.create", err)
	}
	return convert.ToProtoUser(*u), nil
}

func (s *Server) ListUsers(ctx context.Context, _ *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	us, err := s.users.List(ctx, actor)
	if err != nil {
		return nil, toStatus(s.log, "user.list", err)
	}
	return &pb.ListUsersResponse{Users: convert.ToProtoUsers(us)}, nil
}

func (s *Server) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.User, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	id, upd, err := convert.FromProtoUserUpdate(req)
	if err != nil {
		return nil, toStatus(s.log, "user.update", err)
	}
	u, err := s.users.Update(ctx, actor, id, upd)
	if err != nil {
		return nil, toStatus(s.log, "user.update", err)
	}
	return convert.ToProtoUser(*u), nil
}

func (s *Server) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID("id", req.GetId())
	if err != nil {
		return nil, toStatus(s.log, "user.delete", err)
	}
	if err := s.users.Delete(ctx, actor, id); err != nil {
		return nil, toStatus(s.log, "user.delete", err)
	}
	return &pb.DeleteUserResponse{}, nil
}

// --- clients ---

func (s *Server) CreateClient(ctx context.Context, req *pb.CreateClientRequest) (*pb.Client, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.clients.Create(ctx, actor, convert.FromProtoNewClient(req))
	if err != nil {
		return nil, toStatus(s.log, "client.create", err)
	}
	return convert.ToProtoClient(*c), nil
}

func (s *Server) ListClients(ctx context.Context, _ *pb.ListClientsRequest) (*pb.ListClientsResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	cs, err := s.clients.List(ctx, actor)
	if err != nil {
		return nil, toStatus(s.log, "client.list", err)
	}
	return &pb.ListClientsResponse{Clients: convert.ToProtoClients(cs)}, nil
}

// GetClient returns NotFound over the wire when the client does not exist.
func (s *Server) GetClient(ctx context.Context, req *pb.GetClientRequest) (*pb.Client, error) {
	if _, err := s.actor(ctx); err != nil {
		return nil, err
	}
	id, err := convert.ParseID("id", req.GetId())
	if err != nil {
		return nil, toStatus(s.log, "client.get", err)
	}
	c, err := s.clients.Get(ctx, id)
	if err != nil {
		return nil, toStatus(s.log, "client.get", err)
	}
	if c == nil {
		return nil, toStatus(s.log, "client.get", errs.NotFoundf("client %s", id))
	}
	return convert.ToProtoClient(*c), nil
}

func (s *Server) UpdateClient(ctx context.Context, req *pb.UpdateClientRequest) (*pb.Client, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	id, p, err := convert.FromProtoClientPatch(req)
	if err != nil {
		return nil, toStatus(s.log, "client.update", err)
	}
	c, err := s.clients.Update(ctx, actor, id, p)
	if err != nil {
		return nil, toStatus(s.log, "client.update", err)
	}
	return convert.ToProtoClient(*c), nil
}

// --- contracts ---

func (s *Server) CreateContract(ctx context.Context, req *pb.CreateContractRequest) (*pb.Contract, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoNewContract(req)
	if err != nil {
		return nil, toStatus(s.log, "contract.create", err)
	}
	c, err := s.contracts.Create(ctx, actor, in)
	if err != nil {
		return nil, toStatus(s.log, "contract.create", err)
	}
	return convert.ToProtoContract(*c), nil
}

func (s *Server) ListContracts(ctx context.Context, req *pb.ListContractsRequest) (*pb.ListContractsResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	cs, err := s.contracts.List(ctx, actor, model.ContractListOptions{Unsigned: req.GetUnsigned(), Unpaid: req.GetUnpaid()})
	if err != nil {
		return nil, toStatus(s.log, "contract.list", err)
	}
	return &pb.ListContractsResponse{Contracts: convert.ToProtoContracts(cs)}, nil
}

func (s *Server) UpdateContract(ctx context.Context, req *pb.UpdateContractRequest) (*pb.Contract, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	id, p, err := convert.FromProtoContractPatch(req)
	if err != nil {
		return nil, toStatus(s.log, "contract.update", err)
	}
	c, err := s.contracts.Update(ctx, actor, id, p)
	if err != nil {
		return nil, toStatus(s.log, "contract.update", err)
	}
	return convert.ToProtoContract(*c), nil
}

// --- events ---

func (s *Server) CreateEvent(ctx context.Context, req *pb.CreateEventRequest) (*pb.Event, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoNewEvent(req)
	if err != nil {
		return nil, toStatus(s.log, "event.create", err)
	}
	e, err := s.events.Create(ctx, actor, in)
	if err != nil {
		return nil, toStatus(s.log, "event.create", err)
	}
	return convert.ToProtoEvent(*e), nil
}

func (s *Server) ListEvents(ctx context.Context, req *pb.ListEventsRequest) (*pb.ListEventsResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	es, err := s.events.List(ctx, actor, model.EventListOptions{NoSupport: req.GetNoSupport(), Mine: req.GetMine()})
	if err != nil {
		return nil, toStatus(s.log, "event.list", err)
	}
	return &pb.ListEventsResponse{Events: convert.ToProtoEvents(es)}, nil
}

func (s *Server) UpdateEvent(ctx context.Context, req *pb.UpdateEventRequest) (*pb.Event, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	id, p, err := convert.FromProtoEventPatch(req)
	if err != nil {
		return nil, toStatus(s.log, "event.update", err)
	}
	e, err := s.events.Update(ctx, actor, id, p)
	if err != nil {
		return nil, toStatus(s.log, "event.update", err)
	}
	return convert.ToProtoEvent(*e), nil
}

// AssignSupport sets the support contact of an event.
func (s *Server) AssignSupport(ctx context.Context, req *pb.AssignSupportRequest) (*pb.Event, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	eventID, err := convert.ParseID("event_id", req.GetEventId())
	if err != nil {
		return nil, toStatus(s.log, "event.assign_support", err)
	}
	supportID, err := convert.ParseID("support_id", req.GetSupportId())
	if err != nil {
		return nil, toStatus(s.log, "event.assign_support", err)
	}
	e, err := s.events.AssignSupport(ctx, actor, eventID, supportID)
	if err != nil {
		return nil, toStatus(s.log, "event.assign_support", err)
	}
	return convert.ToProtoEvent(*e), nil
}
