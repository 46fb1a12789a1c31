// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/geo"
	"hawker/internal/domain/repository"
	"hawker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new account.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := model.FromUserEntity(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves an account by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userM.ToEntity(), nil
}

// FindUserByEmail retrieves an account by its email.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return userM.ToEntity(), nil
}

// FindUsersByIDs retrieves the accounts matching the given IDs. Missing IDs are skipped.
func (repo *userRepository) FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	return toUserEntities(userModels), nil
}

// UpdateActiveRole switches the role the account currently acts under.
func (repo *userRepository) UpdateActiveRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("active_role", role.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update active role")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateLocation stores the user's latest reported position.
func (repo *userRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location *entity.UserLocation) error {
	updates := map[string]interface{}{
		"latitude":         location.Latitude,
		"longitude":        location.Longitude,
		"location_address": location.Address,
		"location_updated": location.RecordedAt,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePushSubscription stores the user's push provider registration.
// A nil subscription clears the registration.
func (repo *userRepository) UpdatePushSubscription(ctx context.Context, id uuid.UUID, sub *entity.PushSubscription) error {
	updates := map[string]interface{}{
		"subscriber_id": "",
		"push_enabled":  false,
		"push_updated":  time.Now(),
	}
	if sub != nil {
		updates["subscriber_id"] = sub.SubscriberID
		updates["push_enabled"] = sub.Enabled
		updates["push_updated"] = sub.UpdatedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update push subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindUsersWithinBounds retrieves users whose last reported position falls inside the box.
// The box comparison is a coarse index-friendly pre-filter; callers refine by exact distance.
func (repo *userRepository) FindUsersWithinBounds(ctx context.Context, box geo.BoundingBox) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users within bounds")
	}

	return toUserEntities(userModels), nil
}

// FindUsersLocatedSince retrieves in-bounds users whose position was reported
// at or after the cutoff.
func (repo *userRepository) FindUsersLocatedSince(ctx context.Context, box geo.BoundingBox, since time.Time) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Where("location_updated >= ?", since).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recently located users")
	}

	return toUserEntities(userModels), nil
}

// DeleteUser removes an account (soft delete via DeletedAt).
func (repo *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserEntities(userModels []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, userM.ToEntity())
	}

	return users
}
