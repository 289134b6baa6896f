package account

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// 12 balances cost against login latency; bcrypt truncates past 72 bytes.
const bcryptCost = 12

// memoryUser keeps the hash alongside the public record.
type memoryUser struct {
	user User
	hash []byte
}

// MemoryDirectory is a mutex-guarded in-memory directory. The optional
// created hook mirrors the database trigger that provisions a company row
// for every new owner.
type MemoryDirectory struct {
	mu      sync.RWMutex
	byEmail map[string]*memoryUser
	byCNPJ  map[string]uuid.UUID
	created func(ctx context.Context, u *User) error
}

// NewMemoryDirectory builds an empty directory. The hook may be nil.
func NewMemoryDirectory(created func(ctx context.Context, u *User) error) *MemoryDirectory {
	return &MemoryDirectory{
		byEmail: make(map[string]*memoryUser),
		byCNPJ:  make(map[string]uuid.UUID),
		created: created,
	}
}

func (d *MemoryDirectory) CreateUser(ctx context.Context, req NewUser) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	email := normalizeEmail(req.Email)
	if _, ok := d.byEmail[email]; ok {
		d.mu.Unlock()
		return nil, ErrEmailTaken
	}
	if _, ok := d.byCNPJ[req.Metadata.CNPJ]; ok {
		d.mu.Unlock()
		return nil, ErrCNPJTaken
	}
	u := &memoryUser{
		user: User{ID: uuid.New(), Email: email, Metadata: req.Metadata},
		hash: hash,
	}
	d.byEmail[email] = u
	d.byCNPJ[req.Metadata.CNPJ] = u.user.ID
	d.mu.Unlock()

	created := u.user
	if d.created != nil {
		if err := d.created(ctx, &created); err != nil {
			return nil, err
		}
	}
	return &created, nil
}

func (d *MemoryDirectory) FindByEmail(_ context.Context, email string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	found := u.user
	return &found, nil
}

// CheckPassword verifies a login attempt against the stored hash.
func (d *MemoryDirectory) CheckPassword(_ context.Context, email, password string) error {
	d.mu.RLock()
	u, ok := d.byEmail[normalizeEmail(email)]
	d.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return bcrypt.CompareHashAndPassword(u.hash, []byte(password))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
