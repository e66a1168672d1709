package service

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/and161185/epic-events/internal/crypto"
	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/limiter"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/notify"
	"github.com/and161185/epic-events/internal/repository"
	"github.com/and161185/epic-events/internal/session"
	"github.com/and161185/epic-events/internal/validate"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

/************ in-memory storage ************/

type memDB struct {
	mu        sync.Mutex
	users     map[uuid.UUID]model.User
	clients   map[uuid.UUID]model.Client
	contracts map[uuid.UUID]model.Contract
	events    map[uuid.UUID]model.Event
	clock     time.Time
}

func newMemDB() *memDB {
	return &memDB{
		users:     map[uuid.UUID]model.User{},
		clients:   map[uuid.UUID]model.Client{},
		contracts: map[uuid.UUID]model.Contract{},
		events:    map[uuid.UUID]model.Event{},
		clock:     time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memDB) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

// contract joins the owning client, as the SQL repositories do.
func (m *memDB) contract(id uuid.UUID) (model.Contract, bool) {
	c, ok := m.contracts[id]
	if !ok {
		return c, false
	}
	cl := m.clients[c.ClientID]
	c.ClientName, c.SalesContactID = cl.Name, cl.SalesContactID
	return c, true
}

func (m *memDB) event(id uuid.UUID) (model.Event, bool) {
	e, ok := m.events[id]
	if !ok {
		return e, false
	}
	c, _ := m.contract(e.ContractID)
	e.ClientName, e.SalesContactID = c.ClientName, c.SalesContactID
	return e, true
}

type memUsers struct{ *memDB }

var _ repository.UserRepository = memUsers{}

func (m memUsers) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.users {
		if x.Email == u.Email {
			return errs.ErrAlreadyExists
		}
	}
	u.CreatedAt = m.tick()
	m.users[u.ID] = *u
	return nil
}

func (m memUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m memUsers) List(context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m memUsers) Update(_ context.Context, id uuid.UUID, mutate func(model.User) (model.UserPatch, error)) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	p, err := mutate(cur)
	if err != nil {
		return nil, err
	}
	p.Apply(&cur)
	m.users[id] = cur
	return &cur, nil
}

func (m memUsers) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return errs.ErrNotFound
	}
	for _, c := range m.clients {
		if c.SalesContactID == id {
			return errs.ErrConflict
		}
	}
	for eid, e := range m.events {
		if e.SupportContactID != nil && *e.SupportContactID == id {
			e.SupportContactID = nil
			m.events[eid] = e
		}
	}
	delete(m.users, id)
	return nil
}

type memClients struct{ *memDB }

var _ repository.ClientRepository = memClients{}

func (m memClients) Create(_ context.Context, c *model.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.clients {
		if x.Email == c.Email {
			return errs.ErrAlreadyExists
		}
	}
	c.CreatedAt = m.tick()
	c.UpdatedAt = c.CreatedAt
	m.clients[c.ID] = *c
	return nil
}

func (m memClients) GetByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

func (m memClients) List(_ context.Context, f model.ClientFilter) ([]model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Client
	for _, c := range m.clients {
		if f.SalesContactID != nil && c.SalesContactID != *f.SalesContactID {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m memClients) Update(_ context.Context, id uuid.UUID, mutate func(model.Client) (model.ClientPatch, error)) (*model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.clients[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	p, err := mutate(cur)
	if err != nil {
		return nil, err
	}
	if !p.Empty() {
		p.Apply(&cur)
		cur.UpdatedAt = m.tick()
		m.clients[id] = cur
	}
	return &cur, nil
}

type memContracts struct{ *memDB }

var _ repository.ContractRepository = memContracts{}

func (m memContracts) Create(_ context.Context, c *model.Contract) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[c.ClientID]; !ok {
		return errs.ErrConflict
	}
	c.CreatedAt = m.tick()
	m.contracts[c.ID] = *c
	return nil
}

func (m memContracts) GetByID(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contract(id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

func (m memContracts) List(_ context.Context, f model.ContractFilter) ([]model.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Contract
	for id := range m.contracts {
		c, _ := m.contract(id)
		switch {
		case f.SalesContactID != nil && c.SalesContactID != *f.SalesContactID:
			continue
		case f.Unsigned && c.Status == model.StatusSigned:
			continue
		case f.Unpaid && !c.RemainingAmount.IsPositive():
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m memContracts) Update(_ context.Context, id uuid.UUID, mutate func(model.Contract) (model.ContractPatch, error)) (*model.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.contract(id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	p, err := mutate(cur)
	if err != nil {
		return nil, err
	}
	p.Apply(&cur)
	m.contracts[id] = cur
	return &cur, nil
}

type memEvents struct{ *memDB }

var _ repository.EventRepository = memEvents{}

func (m memEvents) Create(_ context.Context, e *model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[e.ID] = *e
	return nil
}

func (m memEvents) GetByID(_ context.Context, id uuid.UUID) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.event(id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &e, nil
}

func (m memEvents) List(_ context.Context, f model.EventFilter) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Event
	for id := range m.events {
		e, _ := m.event(id)
		switch {
		case f.SalesContactID != nil && e.SalesContactID != *f.SalesContactID:
			continue
		case f.SupportContactID != nil && (e.SupportContactID == nil || *e.SupportContactID != *f.SupportContactID):
			continue
		case f.NoSupport && e.SupportContactID != nil:
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (m memEvents) Update(_ context.Context, id uuid.UUID, mutate func(model.Event) (model.EventPatch, error)) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.event(id)
	if !ok {
		return nil, errs.ErrNotFound
	}
	p, err := mutate(cur)
	if err != nil {
		return nil, err
	}
	p.Apply(&cur)
	m.events[id] = cur
	return &cur, nil
}

func (m memEvents) SetSupport(_ context.Context, id, supportID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return errs.ErrNotFound
	}
	e.SupportContactID = &supportID
	m.events[id] = e
	return nil
}

/************ other collaborators ************/

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool

	allowCalls   int
	failureCalls int
	successCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	l.allowCalls++
	return l.allowOK, 0, l.allowErr
}
func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return nil
}
func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, nil
}

// countingHasher counts Verify calls made through it.
type countingHasher struct {
	*crypto.Hasher
	n *atomic.Int32
}

func (h countingHasher) Verify(encoded, password string) bool {
	h.n.Add(1)
	return h.Hasher.Verify(encoded, password)
}

type recordSink struct {
	mu  sync.Mutex
	got []notify.Notification
	err error
}

func (r *recordSink) Emit(_ context.Context, n notify.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
	return r.err
}

func (r *recordSink) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.got))
	for _, n := range r.got {
		out = append(out, n.Kind)
	}
	return out
}

/************ fixture ************/

const testPassword = "s3cret-pass"

type fixture struct {
	db        *memDB
	hasher    *crypto.Hasher
	codec     *session.Codec
	lim       *fakeLimiter
	verifies  atomic.Int32
	sink      *recordSink
	auth      *AuthServiceImpl
	users     *UserServiceImpl
	clients   *ClientServiceImpl
	contracts *ContractServiceImpl
	events    *EventServiceImpl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zaptest.NewLogger(t)
	db := newMemDB()
	f := &fixture{
		db:     db,
		hasher: crypto.NewHasher(crypto.Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}),
		codec:  session.NewCodec([]byte("test-key"), session.DefaultTTL),
		lim:    &fakeLimiter{allowOK: true},
		sink:   &recordSink{},
	}
	v := validate.New()
	f.auth = NewAuthService(memUsers{db}, countingHasher{f.hasher, &f.verifies}, f.codec, f.lim, f.sink, log)
	f.users = NewUserService(memUsers{db}, f.hasher, v, f.sink, log)
	f.clients = NewClientService(memClients{db}, v, log)
	f.contracts = NewContractService(memContracts{db}, memClients{db}, f.sink, log)
	f.events = NewEventService(memEvents{db}, memContracts{db}, memUsers{db}, log)
	return f
}

// seed stores a collaborator directly, bypassing the guard.
func (f *fixture) seed(t *testing.T, email string, role model.Role) *model.User {
	t.Helper()
	hash, err := f.hasher.Hash(testPassword)
	require.NoError(t, err)
	u := &model.User{ID: uuid.Must(uuid.NewV4()), Name: email, Email: email, PwdHash: hash, Department: string(role), Role: role}
	require.NoError(t, memUsers{f.db}.Create(context.Background(), u))
	return u
}

