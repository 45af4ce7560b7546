package crypto

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

var _ domain.PasswordHasher = (*BcryptHasher)(nil)

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, bcrypt.DefaultCost},
		{bcrypt.MinCost - 1, bcrypt.DefaultCost},
		{bcrypt.MaxCost + 1, bcrypt.DefaultCost},
		{bcrypt.MinCost, bcrypt.MinCost},
		{12, 12},
	}
	for _, tc := range cases {
		if got := NewBcryptHasher(tc.in).Cost(); got != tc.want {
			t.Fatalf("cost %d: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Compare(digest, "s3cret") {
		t.Fatalf("expected match")
	}
	if h.Compare(digest, "S3cret") {
		t.Fatalf("expected mismatch")
	}
	if h.Compare("", "s3cret") {
		t.Fatalf("empty digest must not match")
	}
	if h.Compare("not-a-bcrypt-digest", "s3cret") {
		t.Fatalf("malformed digest must not match")
	}
}

func TestBcryptHasher_SaltsEachDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Fatalf("expected distinct digests for the same plaintext")
	}
}

func TestBcryptHasher_ComparesAcrossCosts(t *testing.T) {
	digest, err := NewBcryptHasher(bcrypt.MinCost).Hash("pw")
	if err != nil {
		t.Fatal(err)
	}
	if !NewBcryptHasher(bcrypt.MinCost+1).Compare(digest, "pw") {
		t.Fatalf("expected digest from another cost to verify")
	}
}
