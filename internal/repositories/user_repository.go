package repositories

import (
	"strings"
	"time"

	"clubin_backend/internal/models"
)

// UserRepository defines storage operations for customer accounts.
type UserRepository interface {
	CreateUser(user *models.User, passwordHash string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	// GetUserByEmail returns the user and the stored password hash.
	GetUserByEmail(email string) (*models.User, string, error)
	// UpdateProfile overwrites the profile fields only; loyalty state
	// (points, visit count, tier) is owned by the booking ledger.
	UpdateProfile(user *models.User) (*models.User, error)
	AddFavoriteClub(userID, clubID int64) (*models.User, error)
}

type userRepository struct {
	store *MemoryStore
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(store *MemoryStore) UserRepository {
	return &userRepository{store: store}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *userRepository) CreateUser(user *models.User, passwordHash string) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := s.usersByEmail[key]; exists {
		return nil, ErrDuplicateKey
	}

	s.nextUserID++
	now := time.Now()

	stored := copyUser(user)
	stored.ID = s.nextUserID
	stored.PasswordHash = passwordHash
	stored.Points = 0
	stored.VisitCount = 0
	stored.MembershipTier = models.TierForPoints(0)
	stored.FavoriteClubs = []int64{}
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.users[stored.ID] = stored
	s.usersByEmail[key] = stored.ID
	return copyUser(stored), nil
}

func (r *userRepository) GetUserByID(id int64) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[normalizeEmail(email)]
	if !ok {
		return nil, "", ErrNotFound
	}
	user := s.users[id]
	return copyUser(user), user.PasswordHash, nil
}

func (r *userRepository) UpdateProfile(user *models.User) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		return nil, ErrNotFound
	}

	if key := normalizeEmail(user.Email); key != normalizeEmail(stored.Email) {
		if _, exists := s.usersByEmail[key]; exists {
			return nil, ErrDuplicateKey
		}
		delete(s.usersByEmail, normalizeEmail(stored.Email))
		s.usersByEmail[key] = stored.ID
	}

	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.Email = user.Email
	stored.Phone = user.Phone
	stored.City = user.City
	stored.State = user.State
	stored.UpdatedAt = time.Now()
	return copyUser(stored), nil
}

func (r *userRepository) AddFavoriteClub(userID, clubID int64) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}

	already := false
	for _, id := range stored.FavoriteClubs {
		if id == clubID {
			already = true
			break
		}
	}
	if !already {
		stored.FavoriteClubs = append(stored.FavoriteClubs, clubID)
		stored.UpdatedAt = time.Now()
	}
	return copyUser(stored), nil
}
