package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cache"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/google/uuid"
)

const allCategories = "all"

type ShopService interface {
	RegisterShop(ctx context.Context, ownerID uuid.UUID, req *models.CreateShopRequest) (*models.Shop, error)
	GetMyShop(ctx context.Context, ownerID uuid.UUID) (*models.Shop, error)
	GetShop(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	UpdateSettings(ctx context.Context, ownerID uuid.UUID, req *models.UpdateShopRequest) (*models.Shop, error)
	ToggleOpen(ctx context.Context, ownerID uuid.UUID, isOpen bool) (*models.Shop, error)
	ListShops(ctx context.Context, status models.ShopStatus) ([]models.Shop, error)
	ListActiveShops(ctx context.Context, category string) ([]models.Shop, error)
	Approve(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	Suspend(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	UpdateCommissionRate(ctx context.Context, id uuid.UUID, rate float64) (*models.Shop, error)
	DeleteShop(ctx context.Context, id uuid.UUID) error
}

type shopService struct {
	repo                  repository.ShopRepository
	cache                 cache.Cache
	ttl                   time.Duration
	defaultCommissionRate float64
}

func NewShopService(repo repository.ShopRepository, c cache.Cache, ttl time.Duration, defaultCommissionRate float64) ShopService {
	return &shopService{repo: repo, cache: c, ttl: ttl, defaultCommissionRate: defaultCommissionRate}
}

// RegisterShop creates the owner's single shop. It stays pending and closed until an admin approves it.
func (s *shopService) RegisterShop(ctx context.Context, ownerID uuid.UUID, req *models.CreateShopRequest) (*models.Shop, error) {

	existing, err := s.repo.GetShopByOwner(ctx, ownerID)
	if err != nil && !isNotFound(err) {
		return nil, errors.DatabaseError("Failed to check existing shop").WithError(err)
	}

	if existing != nil {
		return nil, errors.DuplicateEntryError("You already have a shop")
	}

	shop := &models.Shop{
		OwnerID:          ownerID,
		Name:             utils.Sanitize(req.Name),
		Description:      utils.Sanitize(req.Description),
		Category:         strings.ToLower(utils.Sanitize(req.Category)),
		Phone:            strings.TrimSpace(req.Phone),
		Address:          utils.Sanitize(req.Address),
		DeliveryCharge:   req.DeliveryCharge,
		DeliveryRadiusKm: req.DeliveryRadiusKm,
		BusinessHours:    req.BusinessHours,
		Status:           models.ShopStatusPending,
		IsOpen:           false,
		CommissionRate:   s.defaultCommissionRate,
	}

	if err := s.repo.CreateShop(ctx, shop); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("You already have a shop").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create shop").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Shop registered", slog.String("shopId", shop.ID.String()))

	return shop, nil
}

func (s *shopService) GetMyShop(ctx context.Context, ownerID uuid.UUID) (*models.Shop, error) {

	shop, err := s.repo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		return nil, shopLookupError(err)
	}

	return shop, nil
}

// GetShop is the public read. Only active shops are visible.
func (s *shopService) GetShop(ctx context.Context, id uuid.UUID) (*models.Shop, error) {

	shop, err := cache.Fetch(ctx, s.cache, cache.Key(cache.ShopKeyPrefix, id.String()), s.ttl,
		func(ctx context.Context) (models.Shop, error) {
			fetched, err := s.repo.GetShopByID(ctx, id)
			if err != nil {
				return models.Shop{}, err
			}
			return *fetched, nil
		})
	if err != nil {
		return nil, shopLookupError(err)
	}

	if shop.Status != models.ShopStatusActive {
		return nil, errors.NotFoundError("Shop not found")
	}

	return &shop, nil
}

func (s *shopService) UpdateSettings(ctx context.Context, ownerID uuid.UUID, req *models.UpdateShopRequest) (*models.Shop, error) {

	shop, err := s.repo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		return nil, shopLookupError(err)
	}

	oldCategory := shop.Category

	if req.Name != nil {
		shop.Name = utils.Sanitize(*req.Name)
	}
	if req.Description != nil {
		shop.Description = utils.Sanitize(*req.Description)
	}
	if req.Category != nil {
		shop.Category = strings.ToLower(utils.Sanitize(*req.Category))
	}
	if req.Phone != nil {
		shop.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		shop.Address = utils.Sanitize(*req.Address)
	}
	if req.DeliveryCharge != nil {
		shop.DeliveryCharge = *req.DeliveryCharge
	}
	if req.DeliveryRadiusKm != nil {
		shop.DeliveryRadiusKm = *req.DeliveryRadiusKm
	}
	if req.BusinessHours != nil {
		shop.BusinessHours = *req.BusinessHours
	}

	if err := s.repo.UpdateShopSettings(ctx, shop); err != nil {
		return nil, shopWriteError(err, "Failed to update shop")
	}

	s.invalidate(ctx, shop.ID, oldCategory, shop.Category)

	return shop, nil
}

// ToggleOpen lets an owner open or close for the day. Only approved shops may open.
func (s *shopService) ToggleOpen(ctx context.Context, ownerID uuid.UUID, isOpen bool) (*models.Shop, error) {

	shop, err := s.repo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		return nil, shopLookupError(err)
	}

	if isOpen && shop.Status != models.ShopStatusActive {
		return nil, errors.BadRequestError("Only approved shops can open")
	}

	return s.setStatus(ctx, shop, shop.Status, isOpen)
}

func (s *shopService) ListShops(ctx context.Context, status models.ShopStatus) ([]models.Shop, error) {

	shops, err := s.repo.ListShops(ctx, status)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch shops").WithError(err)
	}

	return shops, nil
}

func (s *shopService) ListActiveShops(ctx context.Context, category string) ([]models.Shop, error) {

	category = strings.ToLower(strings.TrimSpace(category))

	return cache.Fetch(ctx, s.cache, cache.Key(cache.ActiveShopsKeyPrefix, categoryKey(category)), s.ttl,
		func(ctx context.Context) ([]models.Shop, error) {
			shops, err := s.repo.ListActiveShops(ctx, category)
			if err != nil {
				return nil, errors.DatabaseError("Failed to fetch shops").WithError(err)
			}
			return shops, nil
		})
}

func (s *shopService) Approve(ctx context.Context, id uuid.UUID) (*models.Shop, error) {

	shop, err := s.repo.GetShopByID(ctx, id)
	if err != nil {
		return nil, shopLookupError(err)
	}

	if shop.Status != models.ShopStatusPending {
		return nil, errors.BadRequestError("Only pending shops can be approved")
	}

	return s.setStatus(ctx, shop, models.ShopStatusActive, shop.IsOpen)
}

// Suspend also closes the shop so it drops out of the catalog immediately.
func (s *shopService) Suspend(ctx context.Context, id uuid.UUID) (*models.Shop, error) {

	shop, err := s.repo.GetShopByID(ctx, id)
	if err != nil {
		return nil, shopLookupError(err)
	}

	if shop.Status == models.ShopStatusSuspended {
		return nil, errors.BadRequestError("Shop is already suspended")
	}

	return s.setStatus(ctx, shop, models.ShopStatusSuspended, false)
}

func (s *shopService) Reactivate(ctx context.Context, id uuid.UUID) (*models.Shop, error) {

	shop, err := s.repo.GetShopByID(ctx, id)
	if err != nil {
		return nil, shopLookupError(err)
	}

	if shop.Status != models.ShopStatusSuspended {
		return nil, errors.BadRequestError("Only suspended shops can be reactivated")
	}

	return s.setStatus(ctx, shop, models.ShopStatusActive, false)
}

// UpdateCommissionRate affects future orders only; placed orders keep their frozen rate.
func (s *shopService) UpdateCommissionRate(ctx context.Context, id uuid.UUID, rate float64) (*models.Shop, error) {

	if rate < 0 || rate > 100 {
		return nil, errors.ValidationError("Commission rate must be between 0 and 100")
	}

	shop, err := s.repo.GetShopByID(ctx, id)
	if err != nil {
		return nil, shopLookupError(err)
	}

	if err := s.repo.UpdateCommissionRate(ctx, id, rate); err != nil {
		return nil, shopWriteError(err, "Failed to update commission rate")
	}

	shop.CommissionRate = rate
	s.invalidate(ctx, shop.ID, shop.Category)

	return shop, nil
}

func (s *shopService) DeleteShop(ctx context.Context, id uuid.UUID) error {

	shop, err := s.repo.GetShopByID(ctx, id)
	if err != nil {
		return shopLookupError(err)
	}

	if err := s.repo.DeleteShop(ctx, id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return errors.ConflictError("Shop is still referenced and cannot be deleted").WithError(err)
		}
		return shopWriteError(err, "Failed to delete shop")
	}

	s.invalidate(ctx, shop.ID, shop.Category)

	middleware.LoggerFromContext(ctx).Info("Shop deleted", slog.String("shopId", id.String()))

	return nil
}

func (s *shopService) setStatus(ctx context.Context, shop *models.Shop, status models.ShopStatus, isOpen bool) (*models.Shop, error) {

	if err := s.repo.UpdateShopStatus(ctx, shop.ID, status, isOpen); err != nil {
		return nil, shopWriteError(err, "Failed to update shop status")
	}

	shop.Status = status
	shop.IsOpen = isOpen
	s.invalidate(ctx, shop.ID, shop.Category)

	return shop, nil
}

func (s *shopService) invalidate(ctx context.Context, id uuid.UUID, categories ...string) {

	keys := []string{
		cache.Key(cache.ShopKeyPrefix, id.String()),
		cache.Key(cache.ActiveShopsKeyPrefix, allCategories),
	}

	for _, category := range categories {
		if category != "" {
			keys = append(keys, cache.Key(cache.ActiveShopsKeyPrefix, category))
		}
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Shop cache invalidation failed", slog.String("error", err.Error()))
	}
}

func categoryKey(category string) string {
	if category == "" {
		return allCategories
	}
	return category
}

func shopLookupError(err error) error {
	if isNotFound(err) {
		return errors.NotFoundError("Shop not found").WithError(err)
	}
	return errors.DatabaseError("Failed to fetch shop").WithError(err)
}

func shopWriteError(err error, message string) error {
	if isNotFound(err) {
		return errors.NotFoundError("Shop not found").WithError(err)
	}
	return errors.DatabaseError(message).WithError(err)
}
