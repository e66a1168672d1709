package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/notify"
)

func TestAuth_Login_RateLimiterAndCreds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seed(t, "anna@epic.io", model.RoleSales)

	f.lim.allowErr = errors.New("limiter down")
	if _, _, err := f.auth.Login(ctx, u.Email, testPassword, "10.0.0.1:5555"); err == nil {
		t.Fatalf("want limiter error propagate")
	}
	f.lim.allowErr = nil

	f.lim.allowOK = false
	if _, _, err := f.auth.Login(ctx, u.Email, testPassword, "10.0.0.1:5555"); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	f.lim.allowOK = true

	f.verifies.Store(0)
	if _, _, err := f.auth.Login(ctx, "ghost@epic.io", testPassword, "10.0.0.1:5555"); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated on unknown email, got %v", err)
	}
	if n := f.verifies.Load(); n != 1 {
		t.Fatalf("unknown email must still verify one hash, got %d", n)
	}

	sess, got, err := f.auth.Login(ctx, u.Email, "wrong-password", "10.0.0.1:5555")
	if !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated on wrong password, got %v", err)
	}
	if sess.Token != "" || got != nil {
		t.Fatalf("no session may be issued on failure: %+v %+v", sess, got)
	}
	if f.lim.failureCalls != 2 {
		t.Fatalf("want 2 recorded failures, got %d", f.lim.failureCalls)
	}

	f.lim.failBlocked = true
	if _, _, err := f.auth.Login(ctx, u.Email, "wrong-password", "10.0.0.1:5555"); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited on blocked after failure, got %v", err)
	}
	f.lim.failBlocked = false
	if kinds := f.sink.kinds(); len(kinds) != 1 || kinds[0] != "login.locked" {
		t.Fatalf("lockout must be notified, got %v", kinds)
	}
	if f.sink.got[0].Severity != notify.Warning || f.sink.got[0].Fields["email"] != u.Email {
		t.Fatalf("bad lockout notification: %+v", f.sink.got[0])
	}

	sess, got, err = f.auth.Login(ctx, u.Email, testPassword, "10.0.0.1:5555")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token == "" || got.ID != u.ID {
		t.Fatalf("bad session/user: %+v %+v", sess, got)
	}
	if f.lim.successCalls != 1 {
		t.Fatalf("expected Success() to be called")
	}
	if d := time.Until(sess.ExpiresAt); d < 23*time.Hour || d > 25*time.Hour {
		t.Fatalf("session should last about 24h, got %v", d)
	}
}

func TestAuth_Authenticate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.seed(t, "sam@epic.io", model.RoleSupport)

	sess, _, err := f.auth.Login(ctx, u.Email, testPassword, "127.0.0.1:1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	got, err := f.auth.Authenticate(ctx, sess.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID || got.Role != model.RoleSupport {
		t.Fatalf("bad user: %+v", got)
	}

	// role changes apply to live sessions
	role := model.RoleGestion
	if _, err := (memUsers{f.db}).Update(ctx, u.ID, func(model.User) (model.UserPatch, error) {
		return model.UserPatch{Role: &role}, nil
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = f.auth.Authenticate(ctx, sess.Token)
	if err != nil || got.Role != model.RoleGestion {
		t.Fatalf("want reloaded role, got %+v %v", got, err)
	}

	if _, err := f.auth.Authenticate(ctx, "garbage"); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated on garbage token, got %v", err)
	}

	if err := (memUsers{f.db}).Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.auth.Authenticate(ctx, sess.Token); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated for deleted user, got %v", err)
	}
}
