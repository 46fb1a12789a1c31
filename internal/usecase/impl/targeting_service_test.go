package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hawker/config"
	"hawker/internal/domain/entity"
	"hawker/internal/domain/geo"
	mockRepo "hawker/internal/mocks/repository"
)

func locatedUser(lat, lng float64) *entity.User {
	return &entity.User{
		ID: uuid.New(),
		Location: &entity.UserLocation{
			Latitude:   lat,
			Longitude:  lng,
			RecordedAt: time.Now(),
		},
	}
}

func TestTargetingService_FindRecipientsWithin(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewTargetingService(TargetingServiceParams{UserRepo: mockUserRepo, Cfg: &config.Config{}})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}

	// Inside the radius and push-registered.
	subscribed := locatedUser(25.0350, 121.5660)
	subscribed.Subscription = &entity.PushSubscription{SubscriberID: "player-1", Enabled: true}
	// Inside the radius, never opted into push.
	silent := locatedUser(25.0310, 121.5640)
	// Inside the bounding box corner but beyond the exact distance.
	corner := locatedUser(25.0330+0.018, 121.5654+0.019)
	// No usable location.
	nowhere := &entity.User{ID: uuid.New()}

	mockUserRepo.EXPECT().
		FindUsersWithinBounds(ctx, mock.AnythingOfType("geo.BoundingBox")).
		Return([]*entity.User{subscribed, silent, corner, nowhere}, nil)

	recipients, err := service.FindRecipientsWithin(ctx, center, 2.0)
	require.NoError(t, err)
	require.Len(t, recipients, 2)

	assert.Equal(t, subscribed.ID, recipients[0].UserID)
	assert.Equal(t, "player-1", recipients[0].SubscriberID)
	assert.Equal(t, silent.ID, recipients[1].UserID)
	assert.Empty(t, recipients[1].SubscriberID)
	assert.LessOrEqual(t, recipients[0].DistanceKm, 2.0)
}

func TestTargetingService_FindRecipientsWithin_RepoError(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewTargetingService(TargetingServiceParams{UserRepo: mockUserRepo, Cfg: &config.Config{}})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}

	mockUserRepo.EXPECT().
		FindUsersWithinBounds(ctx, mock.AnythingOfType("geo.BoundingBox")).
		Return(nil, errors.New("db error"))

	recipients, err := service.FindRecipientsWithin(ctx, center, 2.0)
	assert.Error(t, err)
	assert.Nil(t, recipients)
	assert.Contains(t, err.Error(), "failed to find users within bounds")
}

func TestTargetingService_FindRecipientsWithin_DisabledPushStaysSilent(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewTargetingService(TargetingServiceParams{UserRepo: mockUserRepo, Cfg: &config.Config{}})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}

	optedOut := locatedUser(25.0335, 121.5650)
	optedOut.Subscription = &entity.PushSubscription{SubscriberID: "player-2", Enabled: false}

	mockUserRepo.EXPECT().
		FindUsersWithinBounds(ctx, mock.AnythingOfType("geo.BoundingBox")).
		Return([]*entity.User{optedOut}, nil)

	recipients, err := service.FindRecipientsWithin(ctx, center, 2.0)
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Empty(t, recipients[0].SubscriberID)
}

func TestTargetingService_FindRecipientsWithin_LocationMaxAgeCutoff(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	cfg := &config.Config{}
	cfg.Broadcast.LocationMaxAge = 24 * time.Hour
	service := NewTargetingService(TargetingServiceParams{UserRepo: mockUserRepo, Cfg: cfg})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	fresh := locatedUser(25.0340, 121.5650)

	before := time.Now()
	mockUserRepo.EXPECT().
		FindUsersLocatedSince(ctx, mock.AnythingOfType("geo.BoundingBox"), mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ geo.BoundingBox, since time.Time) {
			// The cutoff sits one max-age behind now.
			assert.WithinDuration(t, before.Add(-24*time.Hour), since, time.Minute)
		}).
		Return([]*entity.User{fresh}, nil)

	recipients, err := service.FindRecipientsWithin(ctx, center, 2.0)
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, fresh.ID, recipients[0].UserID)
}

func TestTargetingService_FindRecipientsWithin_JustBeyondRadiusExcluded(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewTargetingService(TargetingServiceParams{UserRepo: mockUserRepo, Cfg: &config.Config{}})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	user := locatedUser(25.0350, 121.5660)
	exact := geo.DistanceKm(center, user.Location.Coordinate())

	mockUserRepo.EXPECT().
		FindUsersWithinBounds(ctx, mock.AnythingOfType("geo.BoundingBox")).
		Return([]*entity.User{user}, nil).
		Twice()

	// At the exact distance the user is in; 10 meters short of it they are out.
	recipients, err := service.FindRecipientsWithin(ctx, center, exact)
	require.NoError(t, err)
	assert.Len(t, recipients, 1)

	recipients, err = service.FindRecipientsWithin(ctx, center, exact-0.01)
	require.NoError(t, err)
	assert.Empty(t, recipients)
}

func TestTargetingService_FindRecipientsAmong_EmptyIDs(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewTargetingService(TargetingServiceParams{UserRepo: mockUserRepo, Cfg: &config.Config{}})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}

	recipients, err := service.FindRecipientsAmong(ctx, center, 2.0, nil)
	require.NoError(t, err)
	assert.Nil(t, recipients)
}

func TestTargetingService_FindRecipientsAmong_RefreshesLocations(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewTargetingService(TargetingServiceParams{UserRepo: mockUserRepo, Cfg: &config.Config{}})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}

	stillNear := locatedUser(25.0340, 121.5650)
	// Moved out of range since the candidate list was built.
	movedAway := locatedUser(25.2000, 121.9000)
	ids := []uuid.UUID{stillNear.ID, movedAway.ID}

	mockUserRepo.EXPECT().
		FindUsersByIDs(ctx, ids).
		Return([]*entity.User{stillNear, movedAway}, nil)

	recipients, err := service.FindRecipientsAmong(ctx, center, 2.0, ids)
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, stillNear.ID, recipients[0].UserID)
}

func TestTargetingService_FindRecipientsAmong_RepoError(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewTargetingService(TargetingServiceParams{UserRepo: mockUserRepo, Cfg: &config.Config{}})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	ids := []uuid.UUID{uuid.New()}

	mockUserRepo.EXPECT().
		FindUsersByIDs(ctx, ids).
		Return(nil, errors.New("db error"))

	_, err := service.FindRecipientsAmong(ctx, center, 2.0, ids)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find users by ids")
}
