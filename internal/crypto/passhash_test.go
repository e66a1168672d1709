package crypto

import (
	"bytes"
	"strings"
	"testing"
)

// cheap parameters keep the suite fast; format and verification logic are identical.
var testParams = Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestRandBytes_LengthAndUniqueness(t *testing.T) {
	t.Parallel()

	const n = 64
	a, err := RandBytes(n)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	if len(a) != n {
		t.Fatalf("len=%d, want=%d", len(a), n)
	}
	b, err := RandBytes(n)
	if err != nil {
		t.Fatalf("RandBytes(2): %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two subsequent RandBytes(%d) are equal, looks non-random", n)
	}
}

func TestHash_PHCFormatAndSalted(t *testing.T) {
	t.Parallel()

	h := NewHasher(testParams)
	h1, err := h.Hash("p@ssw0rd")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(h1, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Fatalf("unexpected encoding: %s", h1)
	}
	if strings.Contains(h1, "p@ssw0rd") {
		t.Fatalf("plaintext leaked into hash")
	}
	h2, err := h.Hash("p@ssw0rd")
	if err != nil {
		t.Fatalf("Hash(2): %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ by salt")
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(testParams)
	enc, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !h.Verify(enc, "correct horse battery staple") {
		t.Fatalf("Verify: expected true for correct password")
	}
	if h.Verify(enc, "wrong") {
		t.Fatalf("Verify: expected false for wrong password")
	}
	if h.Verify(enc, "") {
		t.Fatalf("Verify: expected false for empty password")
	}

	// parameters come from the stored hash, not the verifier
	other := NewHasher(Params{Time: 2, Memory: 16 * 1024, Threads: 2, KeyLen: 16, SaltLen: 8})
	if !other.Verify(enc, "correct horse battery staple") {
		t.Fatalf("Verify: stored parameters must win")
	}
}

func TestVerify_MalformedNeverMatches(t *testing.T) {
	t.Parallel()

	h := NewHasher(testParams)
	for _, enc := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=8192,t=0,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$",
	} {
		if h.Verify(enc, "anything") {
			t.Fatalf("Verify(%q) must be false", enc)
		}
	}
}
