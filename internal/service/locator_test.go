package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/internal/service/mocks"
	"github.com/shenikar/snaktox/pkg/e"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var nairobi = models.Coordinate{Longitude: 36.82, Latitude: -1.29}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func eligibleHospital(name string, lon, lat float64) *models.Hospital {
	return &models.Hospital{
		ID:             uuid.New(),
		Name:           name,
		Location:       models.HospitalLocation{Coordinates: models.Coordinate{Longitude: lon, Latitude: lat}},
		VerifiedStatus: models.VerifiedStatusVerified,
		ContactInfo:    models.ContactInfo{Emergency: "+254700000999"},
		AntivenomStock: models.AntivenomStock{Polyvalent: 10},
		IsActive:       true,
	}
}

func newTestLocator(t *testing.T, maxLimit int) (*HospitalLocator, *mocks.MockHospitalRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHospitalRepository(ctrl)
	return NewHospitalLocator(repoMock, newTestLogger(), maxLimit), repoMock
}

func TestFindNearby_FiltersIneligibleAndSorts(t *testing.T) {
	locator, repoMock := newTestLocator(t, 50)
	ctx := context.Background()

	far := eligibleHospital("Far", 36.82, -1.10)
	near := eligibleHospital("Near", 36.8219, -1.2921)
	middle := eligibleHospital("Middle", 36.90, -1.29)

	inactive := eligibleHospital("Inactive", 36.82, -1.29)
	inactive.IsActive = false
	pending := eligibleHospital("Pending", 36.82, -1.29)
	pending.VerifiedStatus = models.VerifiedStatusPending
	noStock := eligibleHospital("No stock", 36.82, -1.29)
	noStock.AntivenomStock = models.AntivenomStock{}
	outside := eligibleHospital("Mombasa", 39.67, -4.04)

	repoMock.EXPECT().
		FindNearby(ctx, nairobi, 50000.0, 5).
		Return([]*models.Hospital{far, inactive, near, pending, nil, noStock, outside, middle}, nil).
		Times(1)

	result, err := locator.FindNearby(ctx, nairobi, 50000, 5)
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, near.ID, result[0].Hospital.ID)
	assert.Equal(t, middle.ID, result[1].Hospital.ID)
	assert.Equal(t, far.ID, result[2].Hospital.ID)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].DistanceMeters, result[i].DistanceMeters)
	}
	for _, n := range result {
		assert.True(t, n.Hospital.Eligible())
		assert.LessOrEqual(t, n.DistanceMeters, 50000.0)
	}
}

func TestFindNearby_TruncatesToLimit(t *testing.T) {
	locator, repoMock := newTestLocator(t, 50)
	ctx := context.Background()

	hospitals := []*models.Hospital{
		eligibleHospital("A", 36.83, -1.29),
		eligibleHospital("B", 36.84, -1.29),
		eligibleHospital("C", 36.85, -1.29),
	}
	repoMock.EXPECT().FindNearby(ctx, nairobi, 50000.0, 2).Return(hospitals, nil).Times(1)

	result, err := locator.FindNearby(ctx, nairobi, 50000, 2)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "A", result[0].Hospital.Name)
	assert.Equal(t, "B", result[1].Hospital.Name)
}

func TestFindNearby_DefaultsAndCap(t *testing.T) {
	locator, repoMock := newTestLocator(t, 20)
	ctx := context.Background()

	repoMock.EXPECT().FindNearby(ctx, nairobi, DefaultDispatchRadiusMeters, DefaultSearchLimit).Return(nil, nil).Times(1)
	repoMock.EXPECT().FindNearby(ctx, nairobi, 1000.0, 20).Return(nil, nil).Times(1)

	result, err := locator.FindNearby(ctx, nairobi, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, result)

	_, err = locator.FindNearby(ctx, nairobi, 1000, 500)
	require.NoError(t, err)
}

func TestFindNearby_EmptyIsNotAnError(t *testing.T) {
	locator, repoMock := newTestLocator(t, 50)
	repoMock.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*models.Hospital{}, nil)

	result, err := locator.FindNearby(context.Background(), nairobi, 50000, 5)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFindNearby_InvalidOrigin(t *testing.T) {
	locator, repoMock := newTestLocator(t, 50)
	repoMock.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := locator.FindNearby(context.Background(), models.Coordinate{Longitude: 200, Latitude: 0}, 50000, 5)
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestFindNearby_StoreError(t *testing.T) {
	locator, repoMock := newTestLocator(t, 50)
	dbErr := errors.New("connection refused")
	repoMock.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := locator.FindNearby(context.Background(), nairobi, 50000, 5)
	assert.ErrorIs(t, err, dbErr)
}

func TestFindNearby_Deterministic(t *testing.T) {
	locator, repoMock := newTestLocator(t, 50)
	ctx := context.Background()

	// одинаковый вход и неизменное хранилище дают одинаковый порядок
	east := eligibleHospital("East", 36.83, -1.29)
	west := eligibleHospital("West", 36.81, -1.29)
	repoMock.EXPECT().FindNearby(ctx, nairobi, 50000.0, 5).Return([]*models.Hospital{east, west}, nil).Times(2)

	first, err := locator.FindNearby(ctx, nairobi, 50000, 5)
	require.NoError(t, err)
	second, err := locator.FindNearby(ctx, nairobi, 50000, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
