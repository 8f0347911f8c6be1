package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cache"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	appErrors "github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	repoMocks "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupShopServiceTest(t *testing.T) (service.ShopService, *repoMocks.ShopRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	shopCache := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: time.Minute})
	repo := repoMocks.NewShopRepository(t)

	return service.NewShopService(repo, shopCache, 10*time.Minute, 10), repo, mr
}

func TestShopService_RegisterShop(t *testing.T) {
	ownerID := uuid.New()
	req := &models.CreateShopRequest{
		Name:           "  Sharma Kirana ",
		Category:       "Grocery",
		Phone:          "9876543210",
		Address:        "Shop 4, Market Yard",
		DeliveryCharge: 20,
	}

	t.Run("Success - Pending and closed with default commission", func(t *testing.T) {
		svc, repo, _ := setupShopServiceTest(t)

		repo.On("GetShopByOwner", mock.Anything, ownerID).Return(nil, repository.ErrNotFound).Once()
		repo.On("CreateShop", mock.Anything, mock.AnythingOfType("*models.Shop")).Return(nil).Once()

		shop, err := svc.RegisterShop(context.Background(), ownerID, req)

		require.NoError(t, err)
		assert.Equal(t, "Sharma Kirana", shop.Name)
		assert.Equal(t, "grocery", shop.Category)
		assert.Equal(t, models.ShopStatusPending, shop.Status)
		assert.False(t, shop.IsOpen)
		assert.Equal(t, 10.0, shop.CommissionRate)
	})

	t.Run("Failure - Owner already has a shop", func(t *testing.T) {
		svc, repo, _ := setupShopServiceTest(t)

		repo.On("GetShopByOwner", mock.Anything, ownerID).Return(activeShop("Existing"), nil).Once()

		_, err := svc.RegisterShop(context.Background(), ownerID, req)

		assertAppError(t, err, appErrors.ErrCodeDuplicateEntry)
	})
}

func TestShopService_GetShop(t *testing.T) {
	t.Run("Success - Second read is served from cache", func(t *testing.T) {
		svc, repo, mr := setupShopServiceTest(t)
		shop := activeShop("Sharma Kirana")

		repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()

		first, err := svc.GetShop(context.Background(), shop.ID)
		require.NoError(t, err)
		second, err := svc.GetShop(context.Background(), shop.ID)
		require.NoError(t, err)

		assert.Equal(t, first.Name, second.Name)
		assert.True(t, mr.Exists(cache.Key(cache.ShopKeyPrefix, shop.ID.String())))
		repo.AssertNumberOfCalls(t, "GetShopByID", 1)
	})

	t.Run("Failure - Pending shops are hidden", func(t *testing.T) {
		svc, repo, _ := setupShopServiceTest(t)
		shop := activeShop("Sharma Kirana")
		shop.Status = models.ShopStatusPending

		repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()

		_, err := svc.GetShop(context.Background(), shop.ID)

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestShopService_ListActiveShops(t *testing.T) {
	svc, repo, mr := setupShopServiceTest(t)
	shops := []models.Shop{*activeShop("Sharma Kirana")}

	repo.On("ListActiveShops", mock.Anything, "grocery").Return(shops, nil).Once()

	first, err := svc.ListActiveShops(context.Background(), " Grocery ")
	require.NoError(t, err)
	second, err := svc.ListActiveShops(context.Background(), "grocery")
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	assert.True(t, mr.Exists("shops:active:grocery"))
	repo.AssertNumberOfCalls(t, "ListActiveShops", 1)
}

func TestShopService_ToggleOpen(t *testing.T) {
	t.Run("Success - Active shop opens and cache is dropped", func(t *testing.T) {
		svc, repo, mr := setupShopServiceTest(t)
		shop := activeShop("Sharma Kirana")
		shop.IsOpen = false
		shop.Category = "grocery"

		require.NoError(t, mr.Set("shops:active:all", "[]"))
		require.NoError(t, mr.Set("shops:active:grocery", "[]"))

		repo.On("GetShopByOwner", mock.Anything, shop.OwnerID).Return(shop, nil).Once()
		repo.On("UpdateShopStatus", mock.Anything, shop.ID, models.ShopStatusActive, true).Return(nil).Once()

		updated, err := svc.ToggleOpen(context.Background(), shop.OwnerID, true)

		require.NoError(t, err)
		assert.True(t, updated.IsOpen)
		assert.False(t, mr.Exists("shops:active:all"))
		assert.False(t, mr.Exists("shops:active:grocery"))
	})

	t.Run("Failure - Pending shop cannot open", func(t *testing.T) {
		svc, repo, _ := setupShopServiceTest(t)
		shop := activeShop("Sharma Kirana")
		shop.Status = models.ShopStatusPending

		repo.On("GetShopByOwner", mock.Anything, shop.OwnerID).Return(shop, nil).Once()

		_, err := svc.ToggleOpen(context.Background(), shop.OwnerID, true)

		assertAppError(t, err, appErrors.ErrCodeBadRequest)
	})
}

func TestShopService_StatusChanges(t *testing.T) {
	tests := []struct {
		name       string
		from       models.ShopStatus
		act        func(service.ShopService, uuid.UUID) (*models.Shop, error)
		wantStatus models.ShopStatus
		wantErr    bool
	}{
		{
			name:       "Approve pending",
			from:       models.ShopStatusPending,
			act:        func(s service.ShopService, id uuid.UUID) (*models.Shop, error) { return s.Approve(context.Background(), id) },
			wantStatus: models.ShopStatusActive,
		},
		{
			name:    "Approve active",
			from:    models.ShopStatusActive,
			act:     func(s service.ShopService, id uuid.UUID) (*models.Shop, error) { return s.Approve(context.Background(), id) },
			wantErr: true,
		},
		{
			name:       "Suspend active",
			from:       models.ShopStatusActive,
			act:        func(s service.ShopService, id uuid.UUID) (*models.Shop, error) { return s.Suspend(context.Background(), id) },
			wantStatus: models.ShopStatusSuspended,
		},
		{
			name:    "Suspend suspended",
			from:    models.ShopStatusSuspended,
			act:     func(s service.ShopService, id uuid.UUID) (*models.Shop, error) { return s.Suspend(context.Background(), id) },
			wantErr: true,
		},
		{
			name:       "Reactivate suspended",
			from:       models.ShopStatusSuspended,
			act:        func(s service.ShopService, id uuid.UUID) (*models.Shop, error) { return s.Reactivate(context.Background(), id) },
			wantStatus: models.ShopStatusActive,
		},
		{
			name:    "Reactivate pending",
			from:    models.ShopStatusPending,
			act:     func(s service.ShopService, id uuid.UUID) (*models.Shop, error) { return s.Reactivate(context.Background(), id) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := setupShopServiceTest(t)
			shop := activeShop("Sharma Kirana")
			shop.Status = tt.from

			repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
			if !tt.wantErr {
				repo.On("UpdateShopStatus", mock.Anything, shop.ID, tt.wantStatus, mock.AnythingOfType("bool")).Return(nil).Once()
			}

			updated, err := tt.act(svc, shop.ID)

			if tt.wantErr {
				assertAppError(t, err, appErrors.ErrCodeBadRequest)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, updated.Status)
			if tt.wantStatus == models.ShopStatusSuspended || tt.from == models.ShopStatusSuspended {
				assert.False(t, updated.IsOpen)
			}
		})
	}
}

func TestShopService_UpdateCommissionRate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := setupShopServiceTest(t)
		shop := activeShop("Sharma Kirana")

		repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		repo.On("UpdateCommissionRate", mock.Anything, shop.ID, 12.5).Return(nil).Once()

		updated, err := svc.UpdateCommissionRate(context.Background(), shop.ID, 12.5)

		require.NoError(t, err)
		assert.Equal(t, 12.5, updated.CommissionRate)
	})

	t.Run("Failure - Out of range", func(t *testing.T) {
		svc, _, _ := setupShopServiceTest(t)

		_, err := svc.UpdateCommissionRate(context.Background(), uuid.New(), 101)

		assertAppError(t, err, appErrors.ErrCodeValidation)
	})
}

func TestShopService_UpdateSettings(t *testing.T) {
	svc, repo, mr := setupShopServiceTest(t)
	shop := activeShop("Sharma Kirana")
	shop.Category = "grocery"
	category := "Dairy"
	charge := 0.0

	require.NoError(t, mr.Set("shops:active:grocery", "[]"))

	repo.On("GetShopByOwner", mock.Anything, shop.OwnerID).Return(shop, nil).Once()
	repo.On("UpdateShopSettings", mock.Anything, shop).Return(nil).Once()

	updated, err := svc.UpdateSettings(context.Background(), shop.OwnerID, &models.UpdateShopRequest{
		Category:       &category,
		DeliveryCharge: &charge,
	})

	require.NoError(t, err)
	assert.Equal(t, "dairy", updated.Category)
	assert.Zero(t, updated.DeliveryCharge)
	assert.Equal(t, "Sharma Kirana", updated.Name)
	assert.False(t, mr.Exists("shops:active:grocery"))
}

func TestShopService_DeleteShop(t *testing.T) {
	t.Run("Success - Cached reads are dropped", func(t *testing.T) {
		svc, repo, mr := setupShopServiceTest(t)
		shop := activeShop("Sharma Kirana")
		shop.Category = "grocery"

		require.NoError(t, mr.Set(cache.Key(cache.ShopKeyPrefix, shop.ID.String()), "{}"))

		repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		repo.On("DeleteShop", mock.Anything, shop.ID).Return(nil).Once()

		require.NoError(t, svc.DeleteShop(context.Background(), shop.ID))
		assert.False(t, mr.Exists(cache.Key(cache.ShopKeyPrefix, shop.ID.String())))
	})

	t.Run("Failure - Still referenced rows give a conflict", func(t *testing.T) {
		svc, repo, _ := setupShopServiceTest(t)
		shop := activeShop("Sharma Kirana")
		referenced := fmt.Errorf("failed to delete shop: %w", &pq.Error{Code: "23503"})

		repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		repo.On("DeleteShop", mock.Anything, shop.ID).Return(referenced).Once()

		err := svc.DeleteShop(context.Background(), shop.ID)

		appErr := assertAppError(t, err, appErrors.ErrCodeConflict)
		assert.Equal(t, 409, appErr.StatusCode)
	})

	t.Run("Failure - Unknown shop", func(t *testing.T) {
		svc, repo, _ := setupShopServiceTest(t)
		id := uuid.New()

		repo.On("GetShopByID", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

		assertAppError(t, svc.DeleteShop(context.Background(), id), appErrors.ErrCodeNotFound)
		repo.AssertNotCalled(t, "DeleteShop", mock.Anything, mock.Anything)
	})
}
