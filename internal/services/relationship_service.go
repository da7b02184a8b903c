package services

import (
	"context"
	"errors"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/avolkov-dev/corptweet/backend/internal/repositories"
	"gorm.io/gorm"
)

// RelationshipService maintains the follow graph. Follow and unfollow
// are idempotent: repeating either call converges on the same edge
// state and reports success.
type RelationshipService interface {
	FollowUser(ctx context.Context, user *models.User, targetID uint) error
	UnfollowUser(ctx context.Context, user *models.User, targetID uint) error
}

type relationshipService struct {
	db         *gorm.DB
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
}

// NewRelationshipService creates a new RelationshipService
func NewRelationshipService(db *gorm.DB, followRepo repositories.FollowRepository, userRepo repositories.UserRepository) RelationshipService {
	return &relationshipService{db: db, followRepo: followRepo, userRepo: userRepo}
}

// FollowUser adds the follow edge user → target. Following yourself is
// rejected; following someone you already follow is a no-op success.
func (s *relationshipService) FollowUser(ctx context.Context, user *models.User, targetID uint) error {
	if targetID == user.ID {
		return ErrSelfFollow
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		follows := s.followRepo.WithTx(tx)
		users := s.userRepo.WithTx(tx)

		if _, err := users.GetUserByID(ctx, targetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		following, err := follows.IsFollowing(ctx, user.ID, targetID)
		if err != nil {
			return err
		}
		if following {
			return nil
		}
		return follows.CreateFollow(ctx, &models.Follow{FollowerID: user.ID, FollowedID: targetID})
	})
	return wrapPersistence("follow user", err)
}

// UnfollowUser removes the follow edge user → target if present
func (s *relationshipService) UnfollowUser(ctx context.Context, user *models.User, targetID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		follows := s.followRepo.WithTx(tx)
		users := s.userRepo.WithTx(tx)

		if _, err := users.GetUserByID(ctx, targetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		following, err := follows.IsFollowing(ctx, user.ID, targetID)
		if err != nil {
			return err
		}
		if !following {
			return nil
		}
		return follows.DeleteFollow(ctx, user.ID, targetID)
	})
	return wrapPersistence("unfollow user", err)
}
