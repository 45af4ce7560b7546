package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PasswordHasher derives and checks password digests. Implementations must
// use a salted, deliberately slow algorithm.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(digest, plaintext string) bool
}

// User models an account holder. The password digest is unexported: it can
// only be written through SetPassword and only read by Authenticate and the
// BSON codec below.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Username  string    `json:"username"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	passwordHash string
}

// NewUser validates the account fields. The password is set separately.
func NewUser(name, username string, admin bool, now time.Time) (*User, error) {
	username, err := validateRequired("username", username)
	if err != nil {
		return nil, err
	}
	return &User{
		Name:      name,
		Username:  username,
		Admin:     admin,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetPassword hashes plaintext with h and keeps only the digest.
func (u *User) SetPassword(h PasswordHasher, plaintext string) error {
	digest, err := h.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	u.passwordHash = digest
	return nil
}

// Authenticate reports whether plaintext matches the stored digest. A user
// without a digest never authenticates.
func (u *User) Authenticate(h PasswordHasher, plaintext string) bool {
	if u.passwordHash == "" {
		return false
	}
	return h.Compare(u.passwordHash, plaintext)
}

// HasPassword reports whether a digest has been set.
func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}

func (u User) String() string {
	return fmt.Sprintf("User{ID:%s Username:%s Admin:%t}", u.ID, u.Username, u.Admin)
}

func (u User) GoString() string {
	return u.String()
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash,omitempty"`
	Admin        bool               `bson:"admin"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// MarshalBSON persists the user including its digest.
func (u User) MarshalBSON() ([]byte, error) {
	doc := userDocument{
		Name:         u.Name,
		Username:     u.Username,
		PasswordHash: u.passwordHash,
		Admin:        u.Admin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.ID != "" {
		oid, err := primitive.ObjectIDFromHex(u.ID)
		if err != nil {
			return nil, fmt.Errorf("user id %q: %w", u.ID, err)
		}
		doc.ID = oid
	}
	return bson.Marshal(doc)
}

// UnmarshalBSON restores a user, digest included, from its stored form.
func (u *User) UnmarshalBSON(data []byte) error {
	var doc userDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	*u = User{
		Name:         doc.Name,
		Username:     doc.Username,
		Admin:        doc.Admin,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
		passwordHash: doc.PasswordHash,
	}
	if !doc.ID.IsZero() {
		u.ID = doc.ID.Hex()
	}
	return nil
}
