package services

import (
	"errors"
	"fmt"
	"time"

	"clubin_backend/internal/models"
	"clubin_backend/internal/repositories"
	"clubin_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrUnderage           = errors.New("you must be at least 21 years old")
	ErrInvalidDateOfBirth = errors.New("invalid date of birth, use YYYY-MM-DD")
	ErrTokenGeneration    = errors.New("failed to generate token")
	ErrClubNotFound       = errors.New("club not found")
)

// dateOfBirthLayout is the wire format for dates of birth.
const dateOfBirthLayout = "2006-01-02"

// --- Data Transfer Objects (DTOs) ---

// RegisterUserRequest DTO
type RegisterUserRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest DTO. Loyalty fields are not accepted here; points,
// visit count and tier are owned by the booking ledger.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// --- AuthService Interface ---
type AuthService interface {
	RegisterUser(req RegisterUserRequest) (*AuthResponse, error)
	LoginUser(req LoginRequest) (*AuthResponse, error)
	GetProfile(userID int64) (*models.User, error)
	UpdateProfile(userID int64, req UpdateProfileRequest) (*models.User, error)
	AddFavoriteClub(userID, clubID int64) (*models.User, error)
}

// --- authService Implementation ---
type authService struct {
	userRepo repositories.UserRepository
	clubRepo repositories.ClubRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo repositories.UserRepository, clubRepo repositories.ClubRepository) AuthService {
	return &authService{userRepo: userRepo, clubRepo: clubRepo}
}

// RegisterUser handles customer registration. The age gate runs before any
// persistence, so a rejected registration leaves no trace.
func (s *authService) RegisterUser(req RegisterUserRequest) (*AuthResponse, error) {
	dob, err := time.Parse(dateOfBirthLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateOfBirth, err)
	}
	if !IsOfLegalAge(dob, time.Now()) {
		return nil, ErrUnderage
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		City:        req.City,
		State:       req.State,
		DateOfBirth: req.DateOfBirth,
	}

	created, err := s.userRepo.CreateUser(user, string(hashedPasswordBytes))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := utils.GenerateSessionToken(created.ID, created.Email, utils.RoleUser, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &AuthResponse{User: created, Token: token}, nil
}

// LoginUser handles customer login and token generation.
func (s *authService) LoginUser(req LoginRequest) (*AuthResponse, error) {
	user, storedHash, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Email, utils.RoleUser, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &AuthResponse{User: user, Token: token}, nil
}

func (s *authService) GetProfile(userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID int64, req UpdateProfileRequest) (*models.User, error) {
	user := &models.User{
		ID:        userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
		State:     req.State,
	}
	updated, err := s.userRepo.UpdateProfile(user)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

func (s *authService) AddFavoriteClub(userID, clubID int64) (*models.User, error) {
	if _, err := s.clubRepo.GetClubByID(clubID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to validate club: %w", err)
	}

	user, err := s.userRepo.AddFavoriteClub(userID, clubID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to add favorite club: %w", err)
	}
	return user, nil
}
