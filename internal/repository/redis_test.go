package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestIdentificationHistory_PushAndList(t *testing.T) {
	_, client := newTestRedis(t)
	history := NewIdentificationHistory(client)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, history.Push(ctx, &models.Identification{
			ID:     fmt.Sprintf("id-%d", i),
			UserID: userID,
			Method: models.MethodCharacteristics,
		}))
	}
	require.NoError(t, history.Push(ctx, &models.Identification{ID: "other", UserID: uuid.New()}))

	records, err := history.List(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "id-2", records[0].ID) // новые первыми
	assert.Equal(t, "id-0", records[2].ID)
}

func TestIdentificationHistory_TrimsToMaxEntries(t *testing.T) {
	mr, client := newTestRedis(t)
	history := NewIdentificationHistory(client)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < historyMaxEntries+5; i++ {
		require.NoError(t, history.Push(ctx, &models.Identification{ID: fmt.Sprintf("id-%d", i), UserID: userID}))
	}

	records, err := history.List(ctx, userID, 0)
	require.NoError(t, err)
	assert.Len(t, records, historyMaxEntries)
	assert.Equal(t, fmt.Sprintf("id-%d", historyMaxEntries+4), records[0].ID)
	assert.Greater(t, mr.TTL(historyKey(userID)), time.Duration(0))
}

func TestIdentificationHistory_SkipsCorruptEntries(t *testing.T) {
	mr, client := newTestRedis(t)
	history := NewIdentificationHistory(client)
	userID := uuid.New()

	_, err := mr.Lpush(historyKey(userID), "not-json")
	require.NoError(t, err)
	require.NoError(t, history.Push(context.Background(), &models.Identification{ID: "ok", UserID: userID}))

	records, err := history.List(context.Background(), userID, 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ok", records[0].ID)
}

func TestEmergencyCache_RoundTripAndInvalidate(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewEmergencyRepository(nil, client, time.Minute)
	ctx := context.Background()

	emergency := &models.Emergency{
		ID:     uuid.New(),
		Status: models.StatusPending,
		Location: models.EmergencyLocation{
			Coordinates: models.Coordinate{Longitude: 36.82, Latitude: -1.29},
		},
	}

	cached, err := repo.GetEmergencyFromCache(ctx, emergency.ID)
	require.NoError(t, err)
	assert.Nil(t, cached)

	require.NoError(t, repo.SetEmergencyCache(ctx, emergency))
	assert.Equal(t, time.Minute, mr.TTL(emergencyCacheKey(emergency.ID)))

	cached, err = repo.GetEmergencyFromCache(ctx, emergency.ID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, emergency.ID, cached.ID)
	assert.Equal(t, emergency.Location.Coordinates, cached.Location.Coordinates)

	require.NoError(t, repo.InvalidateEmergencyCache(ctx, emergency.ID))
	assert.False(t, mr.Exists(emergencyCacheKey(emergency.ID)))
}

func TestEmergencyCache_CorruptValue(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewEmergencyRepository(nil, client, time.Minute)
	id := uuid.New()

	require.NoError(t, mr.Set(emergencyCacheKey(id), "{broken"))

	_, err := repo.GetEmergencyFromCache(context.Background(), id)
	assert.Error(t, err)
}

func TestJSONArray_NilBecomesEmptyArray(t *testing.T) {
	raw, err := jsonArray[models.AlertOutcome](nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
