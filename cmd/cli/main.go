// Command crm is a CLI client for the Epic Events CRM service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/epic-events/gen/go/crm/v1"
)

// ---- config/token store ----

// tokenFile is the single current-session slot.
type tokenFile struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "epicevents")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "epicevents")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tf tokenFile) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tf)
}

var errNoSession = errors.New("no valid session (run: crm login)")

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if errors.Is(err, os.ErrNotExist) {
		return "", errNoSession
	}
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.Token == "" || time.Now().After(tf.ExpiresAt) {
		return "", errNoSession
	}
	return tf.Token, nil
}

func clearToken() error {
	err := os.Remove(tokenPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

type dialOpts struct {
	addr       string
	useTLS     bool
	caPath     string
	skipVerify bool
}

func dial(ctx context.Context, o dialOpts, bearer string) (*grpc.ClientConn, error) {
	var creds credentials.TransportCredentials
	secure := o.useTLS || o.caPath != "" || o.skipVerify
	if secure {
		c, err := loadTLS(o.caPath, o.skipVerify)
		if err != nil {
			return nil, err
		}
		creds = c
	} else {
		creds = insecure.NewCredentials()
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, secure: secure}))
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	return grpc.DialContext(ctx, o.addr, opts...)
}

// ---- utils ----

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `crm CLI
Usage:
  crm [-addr HOST:PORT] [-tls [-cacert file | -insecure]] [-json] <cmd> [args]

Commands:
  version
  login      -email <email> [-password <pw>]       (prompts when -password is omitted)
  logout
  whoami
  user       create|list|update|delete
  client     create|list|get|update
  contract   create|list|update
  event      create|list|update|assign

Dates are DD/MM/YYYY or "DD/MM/YYYY HH:MM".
Run "crm <cmd> <sub> -h" for the flags of a subcommand.
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	var o dialOpts
	flag.StringVar(&o.addr, "addr", envOr("CRM_SERVER", "localhost:8443"), "server addr")
	flag.BoolVar(&o.useTLS, "tls", false, "use TLS")
	flag.StringVar(&o.caPath, "cacert", "", "CA cert (PEM), implies -tls")
	flag.BoolVar(&o.skipVerify, "insecure", false, "skip cert verify (dev), implies -tls")
	asJSON := flag.Bool("json", false, "print JSON instead of tables")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	if flag.Arg(0) == "version" {
		fmt.Printf("crm %s (%s)\n", version, buildDate)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, _ := loadToken()
	cc, err := dial(ctx, o, token)
	if err != nil {
		fail(err)
	}
	defer cc.Close()

	a := &app{
		cli:      pb.NewCRMClient(cc),
		out:      os.Stdout,
		json:     *asJSON,
		token:    token,
		password: promptPassword,
	}
	if err := a.dispatch(ctx, flag.Args()); err != nil {
		switch {
		case errors.Is(err, errUsage):
			usage()
		case errors.Is(err, flag.ErrHelp):
			return
		}
		fail(err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "error: %s (%s)\n", s.Message(), s.Code())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
