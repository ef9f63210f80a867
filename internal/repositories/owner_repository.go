package repositories

import (
	"time"

	"clubin_backend/internal/models"
)

// OwnerRepository defines storage operations for club-owner accounts.
type OwnerRepository interface {
	CreateOwner(owner *models.Owner, passwordHash string) (*models.Owner, error)
	GetOwnerByID(id int64) (*models.Owner, error)
	// GetOwnerByEmail returns the owner and the stored password hash.
	GetOwnerByEmail(email string) (*models.Owner, string, error)
}

type ownerRepository struct {
	store *MemoryStore
}

// NewOwnerRepository creates a new instance of OwnerRepository.
func NewOwnerRepository(store *MemoryStore) OwnerRepository {
	return &ownerRepository{store: store}
}

func (r *ownerRepository) CreateOwner(owner *models.Owner, passwordHash string) (*models.Owner, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(owner.Email)
	if _, exists := s.ownersByEmail[key]; exists {
		return nil, ErrDuplicateKey
	}

	s.nextOwnerID++

	stored := copyOwner(owner)
	stored.ID = s.nextOwnerID
	stored.PasswordHash = passwordHash
	stored.IsVerified = false
	stored.CreatedAt = time.Now()

	s.owners[stored.ID] = stored
	s.ownersByEmail[key] = stored.ID
	return copyOwner(stored), nil
}

func (r *ownerRepository) GetOwnerByID(id int64) (*models.Owner, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, ok := s.owners[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyOwner(owner), nil
}

func (r *ownerRepository) GetOwnerByEmail(email string) (*models.Owner, string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.ownersByEmail[normalizeEmail(email)]
	if !ok {
		return nil, "", ErrNotFound
	}
	owner := s.owners[id]
	return copyOwner(owner), owner.PasswordHash, nil
}
