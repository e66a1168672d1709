package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	pb "github.com/and161185/epic-events/gen/go/crm/v1"
	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/service"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/************ fakes ************/

type fakeAuth struct {
	user     *model.User
	lastAddr string
}

func (f *fakeAuth) Login(_ context.Context, email, password, addr string) (model.Session, *model.User, error) {
	f.lastAddr = addr
	if email != f.user.Email || password != "pw" {
		return model.Session{}, nil, errs.ErrUnauthenticated
	}
	return model.Session{Token: "tok", ExpiresAt: time.Now().Add(24 * time.Hour)}, f.user, nil
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (*model.User, error) {
	if token != "tok" {
		return nil, errs.ErrUnauthenticated
	}
	return f.user, nil
}

// Embedded interfaces panic on methods a test does not expect to reach.
type fakeClients struct {
	service.ClientService
	byID map[uuid.UUID]model.Client
}

func (f *fakeClients) Create(_ context.Context, actor *model.User, in model.NewClient) (*model.Client, error) {
	c := model.Client{ID: uuid.Must(uuid.NewV4()), Name: in.Name, Email: in.Email, SalesContactID: actor.ID}
	f.byID[c.ID] = c
	return &c, nil
}

func (f *fakeClients) Get(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeClients) List(_ context.Context, actor *model.User) ([]model.Client, error) {
	var out []model.Client
	for _, c := range f.byID {
		if c.SalesContactID == actor.ID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeEvents struct{ service.EventService }

func (fakeEvents) Create(context.Context, *model.User, model.NewEvent) (*model.Event, error) {
	return nil, errs.Validationf("contract must be signed")
}

type fakeContracts struct{ service.ContractService }

func (fakeContracts) Update(context.Context, *model.User, uuid.UUID, model.ContractPatch) (*model.Contract, error) {
	return nil, errs.Forbiddenf("client is owned by another sales contact")
}

type fakeUsers struct{ service.UserService }

/************ harness ************/

const bufSize = 1 << 20

func startBufGRPC(t *testing.T, srv *Server, auth service.AuthService) (*grpc.ClientConn, func()) {
	t.Helper()
	log := zaptest.NewLogger(t)
	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RecoverUnary(log),
		LoggingUnary(log),
		AuthUnary(auth, log),
	))
	pb.RegisterCRMServer(gs, srv)
	healthpb.RegisterHealthServer(gs, health.NewServer())
	go func() { _ = gs.Serve(lis) }()
	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	stop := func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() }
	return cc, stop
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestServer_E2E_BasicFlow(t *testing.T) {
	t.Parallel()

	sales := &model.User{ID: uuid.Must(uuid.NewV4()), Email: "s1@epic.io", Role: model.RoleSales}
	a := &fakeAuth{user: sales}
	srv := New(Services{
		Auth:      a,
		Users:     fakeUsers{},
		Clients:   &fakeClients{byID: map[uuid.UUID]model.Client{}},
		Contracts: fakeContracts{},
		Events:    fakeEvents{},
	}, zaptest.NewLogger(t))

	cc, stop := startBufGRPC(t, srv, a)
	defer stop()
	cl := pb.NewCRMClient(cc)
	ctx := context.Background()

	if _, err := cl.WhoAmI(ctx, &pb.WhoAmIRequest{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without session, got %v", err)
	}

	if _, err := cl.Login(ctx, &pb.LoginRequest{Email: sales.Email, Password: "nope"}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated on bad password, got %v", err)
	}
	lr, err := cl.Login(ctx, &pb.LoginRequest{Email: sales.Email, Password: "pw"})
	if err != nil || lr.GetToken() != "tok" || lr.GetUser().GetId() != sales.ID.String() {
		t.Fatalf("login: %v, resp=%+v", err, lr)
	}
	if a.lastAddr == "" {
		t.Fatalf("login must pass the peer address to the limiter")
	}

	authed := withToken(lr.GetToken())
	me, err := cl.WhoAmI(authed, &pb.WhoAmIRequest{})
	if err != nil || me.GetEmail() != sales.Email || me.GetRole() != "sales" {
		t.Fatalf("whoami: %v, resp=%+v", err, me)
	}

	c, err := cl.CreateClient(authed, &pb.CreateClientRequest{Name: "Kevin", Email: "kevin@startup.io", PhoneNumber: "1", CompanyName: "Acme"})
	if err != nil || c.GetSalesContactId() != sales.ID.String() {
		t.Fatalf("create client: %v, resp=%+v", err, c)
	}
	got, err := cl.GetClient(authed, &pb.GetClientRequest{Id: c.GetId()})
	if err != nil || got.GetName() != "Kevin" {
		t.Fatalf("get client: %v, resp=%+v", err, got)
	}
	list, err := cl.ListClients(authed, &pb.ListClientsRequest{})
	if err != nil || len(list.GetClients()) != 1 {
		t.Fatalf("list clients: %v, resp=%+v", err, list)
	}

	if _, err := cl.GetClient(authed, &pb.GetClientRequest{Id: uuid.Must(uuid.NewV4()).String()}); status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", err)
	}
	if _, err := cl.GetClient(authed, &pb.GetClientRequest{Id: "not-a-uuid"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument on bad id, got %v", err)
	}

	_, err = cl.CreateEvent(authed, &pb.CreateEventRequest{
		ContractId: uuid.Must(uuid.NewV4()).String(),
		StartDate:  timestamppb.New(time.Now().Add(time.Hour)),
		EndDate:    timestamppb.New(time.Now().Add(2 * time.Hour)),
		Location:   "x",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument for unsigned contract, got %v", err)
	}

	signed := "signed"
	_, err = cl.UpdateContract(authed, &pb.UpdateContractRequest{Id: uuid.Must(uuid.NewV4()).String(), Status: &signed})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", err)
	}

	hc, err := healthpb.NewHealthClient(cc).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil || hc.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("health must be reachable without a session: %v %v", hc, err)
	}
}

func Test_Handlers_NoActor(t *testing.T) {
	t.Parallel()

	srv := New(Services{}, zaptest.NewLogger(t))
	if _, err := srv.ListClients(context.Background(), &pb.ListClientsRequest{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
	if _, err := srv.AssignSupport(context.Background(), &pb.AssignSupportRequest{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func Test_AssignSupport_BadIDs(t *testing.T) {
	t.Parallel()

	srv := New(Services{}, zaptest.NewLogger(t))
	ctx := WithActor(context.Background(), &model.User{ID: uuid.Must(uuid.NewV4()), Role: model.RoleGestion})
	_, err := srv.AssignSupport(ctx, &pb.AssignSupportRequest{EventId: uuid.Must(uuid.NewV4()).String(), SupportId: "x"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", err)
	}
}

func Test_bearerTokenFromMD_OkAndErrors(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	got, err := bearerTokenFromMD(ctx)
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q err=%v", got, err)
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic foo"))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on non-bearer")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer   "))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on empty token")
	}

	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error on no metadata")
	}
}

func Test_bearerTokenFromMD_MultipleHeaders_CaseInsensitive(t *testing.T) {
	t.Parallel()

	md := metadata.MD{}
	md.Append("authorization", "Basic zzz")
	md.Append("authorization", "  bEaReR   tok-123  ")
	got, err := bearerTokenFromMD(metadata.NewIncomingContext(context.Background(), md))
	if err != nil || got != "tok-123" {
		t.Fatalf("got=%q err=%v", got, err)
	}
}

type loopbackAddr struct{}

func (loopbackAddr) Network() string { return "tcp" }
func (loopbackAddr) String() string  { return "127.0.0.1:5555" }

func Test_remoteIP(t *testing.T) {
	t.Parallel()

	if remoteIP(context.Background()) != "" {
		t.Fatalf("expected empty without peer")
	}
	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: loopbackAddr{}})
	if got := remoteIP(ctx); got != "127.0.0.1:5555" {
		t.Fatalf("remoteIP: %q", got)
	}
}

func TestReflection_ResolvesCRMService(t *testing.T) {
	t.Parallel()

	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer()
	pb.RegisterCRMServer(gs, New(Services{}, zaptest.NewLogger(t)))
	reflection.Register(gs)
	go func() { _ = gs.Serve(lis) }()
	defer gs.Stop()

	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer cc.Close()

	stream, err := reflectionpb.NewServerReflectionClient(cc).ServerReflectionInfo(context.Background())
	if err != nil {
		t.Fatalf("open reflection stream: %v", err)
	}
	err = stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: pb.CRM_ServiceDesc.ServiceName},
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	resp, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if resp.GetErrorResponse() != nil {
		t.Fatalf("reflection error: %v", resp.GetErrorResponse())
	}
	if len(resp.GetFileDescriptorResponse().GetFileDescriptorProto()) == 0 {
		t.Fatalf("no descriptor for %s", pb.CRM_ServiceDesc.ServiceName)
	}
}
