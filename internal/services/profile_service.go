package services

import (
	"context"
	"errors"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/avolkov-dev/corptweet/backend/internal/repositories"
	"gorm.io/gorm"
)

// ProfileView serializes a user's identity plus both sides of their
// follow edges
type ProfileView struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Followers []models.UserRef `json:"followers"`
	Following []models.UserRef `json:"following"`
}

// ProfileService is a read-only projection over users and follow edges
type ProfileService interface {
	GetProfile(ctx context.Context, user *models.User) (*ProfileView, error)
	GetProfileByID(ctx context.Context, userID uint) (*ProfileView, error)
}

type profileService struct {
	userRepo   repositories.UserRepository
	followRepo repositories.FollowRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo repositories.UserRepository, followRepo repositories.FollowRepository) ProfileService {
	return &profileService{userRepo: userRepo, followRepo: followRepo}
}

// GetProfile builds the profile view for an already-resolved user
func (s *profileService) GetProfile(ctx context.Context, user *models.User) (*ProfileView, error) {
	followers, err := s.followRepo.GetFollowers(ctx, user.ID)
	if err != nil {
		return nil, wrapPersistence("get profile", err)
	}
	following, err := s.followRepo.GetFollowing(ctx, user.ID)
	if err != nil {
		return nil, wrapPersistence("get profile", err)
	}

	return &ProfileView{
		ID:        user.ID,
		Name:      user.Name,
		Followers: toRefs(followers),
		Following: toRefs(following),
	}, nil
}

// GetProfileByID resolves userID and builds its profile view
func (s *profileService) GetProfileByID(ctx context.Context, userID uint) (*ProfileView, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, wrapPersistence("get profile", err)
	}
	return s.GetProfile(ctx, user)
}

func toRefs(users []models.User) []models.UserRef {
	refs := make([]models.UserRef, len(users))
	for i := range users {
		refs[i] = users[i].ToRef()
	}
	return refs
}
