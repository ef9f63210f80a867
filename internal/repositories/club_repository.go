package repositories

import (
	"clubin_backend/internal/models"
)

// ClubRepository defines storage operations for the club catalog.
type ClubRepository interface {
	CreateClub(club *models.Club) (*models.Club, error)
	GetClubs() ([]models.Club, error)
	GetClubByID(id int64) (*models.Club, error)
	GetClubByOwnerID(ownerID int64) (*models.Club, error)
	// UpdateClub overwrites the club's display attributes. The owner
	// reference is immutable and ignored on update.
	UpdateClub(club *models.Club) (*models.Club, error)
}

type clubRepository struct {
	store *MemoryStore
}

// NewClubRepository creates a new instance of ClubRepository.
func NewClubRepository(store *MemoryStore) ClubRepository {
	return &clubRepository{store: store}
}

func (r *clubRepository) CreateClub(club *models.Club) (*models.Club, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextClubID++
	stored := copyClub(club)
	stored.ID = s.nextClubID
	s.clubs = append(s.clubs, stored)
	return copyClub(stored), nil
}

func (r *clubRepository) GetClubs() ([]models.Club, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	clubs := make([]models.Club, 0, len(s.clubs))
	for _, club := range s.clubs {
		clubs = append(clubs, *copyClub(club))
	}
	return clubs, nil
}

func (r *clubRepository) GetClubByID(id int64) (*models.Club, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, club := range s.clubs {
		if club.ID == id {
			return copyClub(club), nil
		}
	}
	return nil, ErrNotFound
}

func (r *clubRepository) GetClubByOwnerID(ownerID int64) (*models.Club, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, club := range s.clubs {
		if club.OwnerID != nil && *club.OwnerID == ownerID {
			return copyClub(club), nil
		}
	}
	return nil, ErrNotFound
}

func (r *clubRepository) UpdateClub(club *models.Club) (*models.Club, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stored := range s.clubs {
		if stored.ID == club.ID {
			stored.Name = club.Name
			stored.Description = club.Description
			stored.Genre = club.Genre
			stored.Capacity = club.Capacity
			stored.EntryFee = club.EntryFee
			stored.RegularFee = club.RegularFee
			stored.Hours = club.Hours
			stored.WaitTime = club.WaitTime
			stored.Rating = club.Rating
			stored.MaxCapacity = club.MaxCapacity
			stored.Pricing = club.Pricing
			return copyClub(stored), nil
		}
	}
	return nil, ErrNotFound
}
