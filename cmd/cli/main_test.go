package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "epicevents")
}

func Test_cfgDir_And_Paths(t *testing.T) {
	_ = withTmpConfig(t)
	got := cfgDir()
	base := os.Getenv("XDG_CONFIG_HOME") + "/epicevents"
	if got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	if !strings.HasPrefix(tokenPath(), base) || !strings.HasSuffix(tokenPath(), "token.json") {
		t.Fatalf("tokenPath unexpected: %s", tokenPath())
	}
}

func Test_token_SaveLoadClear(t *testing.T) {
	_ = withTmpConfig(t)

	if _, err := loadToken(); !errors.Is(err, errNoSession) {
		t.Fatalf("expected errNoSession when token file missing, got %v", err)
	}
	if err := saveToken(tokenFile{Token: "tok", ExpiresAt: time.Now().Add(time.Minute)}); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tok, err := loadToken()
	if err != nil || tok != "tok" {
		t.Fatalf("loadToken: tok=%q err=%v", tok, err)
	}
	st, err := os.Stat(tokenPath())
	if err != nil || st.Mode().Perm() != 0o600 {
		t.Fatalf("token file must be private: %v %v", st, err)
	}

	if err := saveToken(tokenFile{Token: "tok2", ExpiresAt: time.Now().Add(-time.Minute)}); err != nil {
		t.Fatalf("saveToken expired: %v", err)
	}
	if _, err := loadToken(); !errors.Is(err, errNoSession) {
		t.Fatalf("want errNoSession for expired token, got %v", err)
	}

	if err := clearToken(); err != nil {
		t.Fatalf("clearToken: %v", err)
	}
	if err := clearToken(); err != nil {
		t.Fatalf("clearToken twice: %v", err)
	}
}

func Test_printJSON_WritesPretty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := printJSON(&out, map[string]any{"a": 1}); err != nil {
		t.Fatalf("printJSON: %v", err)
	}
	var m map[string]any
	if json.Unmarshal(out.Bytes(), &m) != nil || m["a"] != float64(1) {
		t.Fatalf("printJSON produced invalid json: %s", out.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("\n  ")) {
		t.Fatalf("printJSON should indent")
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T", secure: true}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds over TLS must require TLS")
	}
	if (bearerCreds{token: "T"}).RequireTransportSecurity() {
		t.Fatalf("plaintext dial must not require TLS")
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	creds, err := loadTLS("", true)
	if err != nil || creds == nil {
		t.Fatalf("insecure: %v %v", creds, err)
	}

	creds, err = loadTLS("", false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}

	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}
}

func Test_parseDate(t *testing.T) {
	t.Parallel()

	got, err := parseDate("04/06/2026 13:30")
	if err != nil || got.Day() != 4 || got.Month() != time.June || got.Hour() != 13 || got.Minute() != 30 {
		t.Fatalf("datetime: %v %v", got, err)
	}
	got, err = parseDate(" 05/06/2026 ")
	if err != nil || got.Day() != 5 || got.Hour() != 0 {
		t.Fatalf("date: %v %v", got, err)
	}
	for _, bad := range []string{"2026-06-04", "32/01/2026", ""} {
		if _, err := parseDate(bad); err == nil {
			t.Fatalf("want error for %q", bad)
		}
	}
}

func Test_parseAmount(t *testing.T) {
	t.Parallel()

	d, err := parseAmount("total", "1000.456")
	if err != nil || d != "1000.46" {
		t.Fatalf("parseAmount: %v %v", d, err)
	}
	if d, _ := parseAmount("total", " 12 "); d != "12.00" {
		t.Fatalf("want two decimals, got %q", d)
	}
	if _, err := parseAmount("total", "ten"); err == nil {
		t.Fatalf("want error on non-number")
	}
}
