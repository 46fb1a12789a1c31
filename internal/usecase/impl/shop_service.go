package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/geo"
	"hawker/internal/domain/repository"
	"hawker/internal/domain/service"
	"hawker/internal/usecase"
)

type shopService struct {
	shopRepo    repository.ShopRepository
	userRepo    repository.UserRepository
	eligibility usecase.EligibilityUsecase
	qrcode      service.QRCodeService
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo    repository.ShopRepository
	UserRepo    repository.UserRepository
	Eligibility usecase.EligibilityUsecase
	QRCode      service.QRCodeService
}

// NewShopService creates a new shop service instance
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		shopRepo:    params.ShopRepo,
		userRepo:    params.UserRepo,
		eligibility: params.Eligibility,
		qrcode:      params.QRCode,
	}
}

// CreateShop registers a storefront for a shopkeeper account.
func (s *shopService) CreateShop(ctx context.Context, input *usecase.CreateShopInput) (*entity.Shop, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shop name is required")
	}

	owner, err := s.userRepo.FindUserByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find owner")
	}
	if !owner.Roles.Contains(entity.RoleShopkeeper) {
		return nil, domainerrors.ErrRoleNotHeld
	}

	location, err := shopLocationFromInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shop := &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     owner.ID,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Phone:       input.Phone,
		Location:    location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.shopRepo.CreateShop(ctx, shop); err != nil {
		if errors.Is(err, repository.ErrDuplicateShop) {
			return nil, domainerrors.ErrShopAlreadyExists
		}
		return nil, errors.Wrap(err, "failed to create shop")
	}

	return shop, nil
}

// GetShop retrieves a shop by ID.
func (s *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// GetShopForCustomer retrieves a shop together with the delivery eligibility
// verdict for the customer's last known location. The verdict shown while
// browsing is advisory; order creation re-evaluates it.
func (s *shopService) GetShopForCustomer(ctx context.Context, shopID, customerID uuid.UUID) (*usecase.ShopEligibilityView, error) {
	shop, err := s.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	customer, err := s.userRepo.FindUserByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find customer")
	}

	// No known customer location fails closed: availability is reported,
	// range is not assumed.
	verdict := usecase.Eligibility{DeliveryAvailable: shop.Delivery.Enabled}
	if customer.HasLocation() {
		verdict = s.eligibility.Evaluate(shop, customer.Location.Coordinate())
	}
	view := &usecase.ShopEligibilityView{
		Shop:              shop,
		DeliveryAvailable: verdict.DeliveryAvailable,
		InRange:           verdict.InRange,
	}
	if verdict.DistanceKm != nil {
		rounded := geo.RoundKm(*verdict.DistanceKm)
		view.DistanceKm = &rounded
	}

	return view, nil
}

// GetOwnShops retrieves every shop the account manages.
func (s *shopService) GetOwnShops(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	shops, err := s.shopRepo.FindShopsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own shops")
	}

	return shops, nil
}

// UpdateShopProfile updates storefront details on behalf of the owner.
func (s *shopService) UpdateShopProfile(ctx context.Context, shopID, ownerID uuid.UUID, input *usecase.CreateShopInput) (*entity.Shop, error) {
	shop, err := s.requireOwnedShop(ctx, shopID, ownerID)
	if err != nil {
		return nil, err
	}

	location, err := shopLocationFromInput(input)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		shop.Name = input.Name
	}
	if input.Category != "" {
		shop.Category = input.Category
	}
	if input.Description != "" {
		shop.Description = input.Description
	}
	if input.Phone != "" {
		shop.Phone = input.Phone
	}
	if location != nil {
		shop.Location = location
	}
	shop.UpdatedAt = time.Now()

	if err := s.shopRepo.UpdateShopProfile(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop profile")
	}

	return shop, nil
}

// SetOpenStatus flips the open flag with an optional estimate of the next flip.
func (s *shopService) SetOpenStatus(ctx context.Context, shopID, ownerID uuid.UUID, input *usecase.OpenStatusInput) (*entity.Shop, error) {
	shop, err := s.requireOwnedShop(ctx, shopID, ownerID)
	if err != nil {
		return nil, err
	}

	var estimate *entity.StatusEstimate
	if input.Direction != "" {
		if input.DurationMinutes < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("estimate duration cannot be negative")
		}
		switch input.Direction {
		case entity.EstimateOpensIn, entity.EstimateClosesIn:
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails("estimate direction must be opens_in or closes_in")
		}
		estimate = &entity.StatusEstimate{
			Direction:       input.Direction,
			DurationMinutes: input.DurationMinutes,
			UpdatedAt:       time.Now(),
		}
	}

	if err := s.shopRepo.UpdateOpenStatus(ctx, shop.ID, input.IsOpen, estimate); err != nil {
		return nil, errors.Wrap(err, "failed to update open status")
	}

	shop.IsOpen = input.IsOpen
	shop.StatusEstimate = estimate
	shop.UpdatedAt = time.Now()

	return shop, nil
}

// SetDeliveryConfig replaces the delivery availability settings.
func (s *shopService) SetDeliveryConfig(ctx context.Context, shopID, ownerID uuid.UUID, cfg entity.DeliveryConfig) (*entity.Shop, error) {
	shop, err := s.requireOwnedShop(ctx, shopID, ownerID)
	if err != nil {
		return nil, err
	}

	if cfg.Enabled && cfg.RadiusKm <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delivery radius must be positive when delivery is enabled")
	}

	if err := s.shopRepo.UpdateDeliveryConfig(ctx, shop.ID, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to update delivery config")
	}

	shop.Delivery = cfg
	shop.UpdatedAt = time.Now()

	return shop, nil
}

// GenerateShopQR renders a QR code deep-linking to the storefront.
func (s *shopService) GenerateShopQR(ctx context.Context, shopID, ownerID uuid.UUID) ([]byte, error) {
	shop, err := s.requireOwnedShop(ctx, shopID, ownerID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateShopQR(shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR")
	}

	return png, nil
}

func (s *shopService) requireOwnedShop(ctx context.Context, shopID, ownerID uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}
		return nil, errors.Wrap(err, "failed to find shop")
	}
	if shop.OwnerID != ownerID {
		return nil, domainerrors.ErrShopOwnershipViolation
	}

	return shop, nil
}

func shopLocationFromInput(input *usecase.CreateShopInput) (*entity.ShopLocation, error) {
	if input.Latitude == nil || input.Longitude == nil {
		return nil, nil
	}

	point := geo.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	if !point.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	return &entity.ShopLocation{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		Address:   input.Address,
	}, nil
}
