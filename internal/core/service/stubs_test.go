package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Repositories
// ---------------------------------------------------------------------------

type stubProductionRepo struct {
	byID      map[string]*domain.Production
	seq       int
	listCalls int
	listErr   error
	updateErr error
}

func newStubProductionRepo() *stubProductionRepo {
	return &stubProductionRepo{byID: make(map[string]*domain.Production)}
}

func cloneProduction(p *domain.Production) *domain.Production {
	c := *p
	return &c
}

func (r *stubProductionRepo) Create(_ context.Context, p *domain.Production) error {
	for _, existing := range r.byID {
		if existing.Title == p.Title {
			return domain.ErrProductionExists
		}
	}
	r.seq++
	p.ID = fmt.Sprintf("p%d", r.seq)
	r.byID[p.ID] = cloneProduction(p)
	return nil
}

func (r *stubProductionRepo) FindByID(_ context.Context, id string) (*domain.Production, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductionNotFound
	}
	return cloneProduction(p), nil
}

func (r *stubProductionRepo) FindByTitle(_ context.Context, title string) (*domain.Production, error) {
	for _, p := range r.byID {
		if p.Title == title {
			return cloneProduction(p), nil
		}
	}
	return nil, domain.ErrProductionNotFound
}

func (r *stubProductionRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Production, error) {
	out := make([]*domain.Production, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out = append(out, cloneProduction(p))
		}
	}
	return out, nil
}

func (r *stubProductionRepo) List(_ context.Context, f ports.ListProductionsFilter) ([]*domain.Production, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Production, 0, len(r.byID))
	for _, p := range r.byID {
		if f.Genre != "" && p.Genre != f.Genre {
			continue
		}
		out = append(out, cloneProduction(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if f.SortByLength {
			return lengthOf(out[i]) > lengthOf(out[j])
		}
		return out[i].Title < out[j].Title
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func lengthOf(p *domain.Production) int {
	if p.Length == nil {
		return 0
	}
	return *p.Length
}

func (r *stubProductionRepo) Update(_ context.Context, p *domain.Production) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProductionNotFound
	}
	r.byID[p.ID] = cloneProduction(p)
	return nil
}

func (r *stubProductionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductionNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubActorRepo struct {
	byID map[string]*domain.Actor
	seq  int
}

func newStubActorRepo() *stubActorRepo {
	return &stubActorRepo{byID: make(map[string]*domain.Actor)}
}

func cloneActor(a *domain.Actor) *domain.Actor {
	c := *a
	return &c
}

func (r *stubActorRepo) Create(_ context.Context, a *domain.Actor) error {
	for _, existing := range r.byID {
		if existing.Name == a.Name {
			return domain.ErrActorExists
		}
	}
	r.seq++
	a.ID = fmt.Sprintf("a%d", r.seq)
	r.byID[a.ID] = cloneActor(a)
	return nil
}

func (r *stubActorRepo) FindByID(_ context.Context, id string) (*domain.Actor, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	return cloneActor(a), nil
}

func (r *stubActorRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Actor, error) {
	out := make([]*domain.Actor, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.byID[id]; ok {
			out = append(out, cloneActor(a))
		}
	}
	return out, nil
}

func (r *stubActorRepo) List(_ context.Context) ([]*domain.Actor, error) {
	out := make([]*domain.Actor, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, cloneActor(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubActorRepo) Update(_ context.Context, a *domain.Actor) error {
	if _, ok := r.byID[a.ID]; !ok {
		return domain.ErrActorNotFound
	}
	r.byID[a.ID] = cloneActor(a)
	return nil
}

func (r *stubActorRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrActorNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubRoleRepo struct {
	roles []*domain.Role
	seq   int
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) error {
	r.seq++
	role.ID = fmt.Sprintf("r%d", r.seq)
	c := *role
	r.roles = append(r.roles, &c)
	return nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			c := *role
			return &c, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) ListByProduction(_ context.Context, productionID string) ([]*domain.Role, error) {
	return r.filter(func(role *domain.Role) bool { return role.ProductionID == productionID }), nil
}

func (r *stubRoleRepo) ListByActor(_ context.Context, actorID string) ([]*domain.Role, error) {
	return r.filter(func(role *domain.Role) bool { return role.ActorID == actorID }), nil
}

func (r *stubRoleRepo) filter(keep func(*domain.Role) bool) []*domain.Role {
	var out []*domain.Role
	for _, role := range r.roles {
		if keep(role) {
			c := *role
			out = append(out, &c)
		}
	}
	return out
}

func (r *stubRoleRepo) Delete(_ context.Context, id string) error {
	n := r.remove(func(role *domain.Role) bool { return role.ID == id })
	if n == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *stubRoleRepo) DeleteByProduction(_ context.Context, productionID string) (int64, error) {
	return r.remove(func(role *domain.Role) bool { return role.ProductionID == productionID }), nil
}

func (r *stubRoleRepo) DeleteByActor(_ context.Context, actorID string) (int64, error) {
	return r.remove(func(role *domain.Role) bool { return role.ActorID == actorID }), nil
}

func (r *stubRoleRepo) remove(match func(*domain.Role) bool) int64 {
	kept := r.roles[:0]
	var n int64
	for _, role := range r.roles {
		if match(role) {
			n++
			continue
		}
		kept = append(kept, role)
	}
	r.roles = kept
	return n
}

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	r.seq++
	user.ID = fmt.Sprintf("u%d", r.seq)
	r.users[user.Username] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubAuditRepo struct {
	insertErr error
	inserted  []*domain.AuditEvent
}

func (r *stubAuditRepo) Insert(_ context.Context, e *domain.AuditEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, e)
	return nil
}

// ---------------------------------------------------------------------------
// Cache, publisher, hasher
// ---------------------------------------------------------------------------

type stubCache struct {
	entries     map[string][]byte
	getErr      error
	invalidated int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *stubCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *stubCache) Invalidate(context.Context) error {
	c.invalidated++
	c.entries = make(map[string][]byte)
	return nil
}

type stubPublisher struct {
	mu     sync.Mutex
	events []ports.AuditEventInput
}

func (p *stubPublisher) Enqueue(e ports.AuditEventInput) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

type testHasher struct{}

func (testHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	return string(b), err
}

func (testHasher) Compare(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
