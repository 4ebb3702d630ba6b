package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func species(common, region, description string) *models.Species {
	return &models.Species{
		ID:             uuid.New(),
		ScientificName: "Species " + common,
		CommonName:     common,
		Region:         region,
		Description:    description,
		VenomType:      models.VenomNeurotoxic,
		RiskLevel:      models.RiskHigh,
		IsActive:       true,
	}
}

func newTestMatcher(t *testing.T) (*SpeciesMatcher, *mocks.MockSpeciesRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSpeciesRepository(ctrl)
	return NewSpeciesMatcher(repoMock), repoMock
}

var testImage = models.ImageMetadata{Width: 1024, Height: 768, Format: "jpeg", Size: 204800}

func TestMatchByImage_ConfidenceDecaysByPoolIndex(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)
	ctx := context.Background()

	pool := []*models.Species{
		species("Black Mamba", "East Africa", ""),
		species("Puff Adder", "East Africa", ""),
		species("Boomslang", "East Africa", ""),
	}
	repoMock.EXPECT().
		FindCandidates(ctx, models.SpeciesFilter{Region: "East Africa", Limit: 10}).
		Return(pool, nil).
		Times(1)

	matches, err := matcher.MatchByImage(ctx, testImage, "East Africa")
	require.NoError(t, err)
	require.Len(t, matches, 3)

	want := []float64{0.75, 0.67, 0.59}
	for i, m := range matches {
		assert.Equal(t, pool[i].ID, m.Species.ID)
		assert.InDelta(t, want[i], m.Confidence, 1e-9)
		assert.Equal(t, []string{"Regional distribution match", "Image-based pattern analysis", "Morphological characteristics"}, m.MatchingFeatures)
		require.NotNil(t, m.ImageAnalysis)
		assert.Equal(t, "1024x768", m.ImageAnalysis.Dimensions)
	}
	assert.Equal(t, models.CertaintyHigh, matches[0].Certainty)
	assert.Equal(t, models.CertaintyMedium, matches[1].Certainty)
	assert.Equal(t, models.CertaintyMedium, matches[2].Certainty)
}

func TestMatchByImage_ClampsAndCapsPool(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)

	pool := make([]*models.Species, 12)
	for i := range pool {
		pool[i] = species(fmt.Sprintf("Snake %d", i), "East Africa", "")
	}
	repoMock.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).Return(pool, nil)

	matches, err := matcher.MatchByImage(context.Background(), testImage, "")
	require.NoError(t, err)
	require.Len(t, matches, 10)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Confidence, matches[i].Confidence)
	}
	// индексы 7..9 упираются в нижнюю границу 0.2
	assert.InDelta(t, 0.2, matches[9].Confidence, 1e-9)
	assert.InDelta(t, 0.2, matches[8].Confidence, 1e-9)
	assert.Equal(t, pool[9].ID, matches[9].Species.ID) // равные значения не меняют порядок
	assert.Equal(t, models.CertaintyLow, matches[9].Certainty)
}

func TestMatchByImage_DefaultRegionAndInactiveSkipped(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)

	inactive := species("Retired", "East Africa", "")
	inactive.IsActive = false
	active := species("Active", "East Africa", "")

	repoMock.EXPECT().
		FindCandidates(gomock.Any(), models.SpeciesFilter{Region: DefaultRegion, Limit: 10}).
		Return([]*models.Species{inactive, active}, nil)

	matches, err := matcher.MatchByImage(context.Background(), testImage, "  ")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, active.ID, matches[0].Species.ID)
	assert.InDelta(t, 0.75, matches[0].Confidence, 1e-9)
}

func TestMatchByImage_StoreError(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)
	dbErr := errors.New("db down")
	repoMock.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := matcher.MatchByImage(context.Background(), testImage, "East Africa")
	assert.ErrorIs(t, err, dbErr)
}

func TestMatchByCharacteristics_ColorBonus(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)
	ctx := context.Background()

	mamba := species("Black Mamba", "East Africa", "Long, fast, grey-black snake")
	repoMock.EXPECT().
		FindCandidates(ctx, models.SpeciesFilter{Color: "black", Limit: 8}).
		Return([]*models.Species{mamba}, nil)

	matches, err := matcher.MatchByCharacteristics(ctx, models.Characteristics{Color: "black"}, "")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.InDelta(t, 0.7, matches[0].Confidence, 1e-9)
	assert.GreaterOrEqual(t, matches[0].Confidence, 0.5+0.2-1e-9)
	assert.Equal(t, []string{"Color: black"}, matches[0].MatchingFeatures)
	assert.Equal(t, models.CertaintyMedium, matches[0].Certainty)
}

func TestMatchByCharacteristics_AllBonusesClamped(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)

	s := species("Black Mamba", "East Africa", "grey-black with faint bands")
	s.Behavior = "Aggressive when cornered, raises head"
	s.Habitat = "Savanna and rocky hills"
	repoMock.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).Return([]*models.Species{s}, nil)

	matches, err := matcher.MatchByCharacteristics(context.Background(), models.Characteristics{
		Color:    "BLACK",
		Pattern:  "bands",
		Behavior: "aggressive",
	}, "east africa")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	// 0.5 + 0.2 + 0.15 + 0.1 + 0.1 + 0.05 = 1.1 -> 0.95
	assert.InDelta(t, 0.95, matches[0].Confidence, 1e-9)
	assert.Equal(t, models.CertaintyHigh, matches[0].Certainty)
	assert.Equal(t, []string{
		"Color: BLACK",
		"Pattern: bands",
		"Region: East Africa",
		"Behavior: aggressive",
		"Habitat match",
	}, matches[0].MatchingFeatures)
}

func TestMatchByCharacteristics_FallbackFeatures(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)

	plain := species("Mole Snake", "Southern Africa", "Stout brown snake")
	repoMock.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).Return([]*models.Species{plain}, nil)

	matches, err := matcher.MatchByCharacteristics(context.Background(), models.Characteristics{Length: "1m"}, "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.InDelta(t, 0.5, matches[0].Confidence, 1e-9)
	assert.Equal(t, []string{"Regional distribution", "General characteristics"}, matches[0].MatchingFeatures)
	assert.Equal(t, models.CertaintyLow, matches[0].Certainty)
}

func TestMatchByCharacteristics_RegionBonusDirection(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)

	s := species("Puff Adder", "East Africa", "")
	repoMock.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).Return([]*models.Species{s}, nil).Times(2)

	// регион инцидента - подстрока региона вида: бонус
	matches, err := matcher.MatchByCharacteristics(context.Background(), models.Characteristics{Length: "1m"}, "Africa")
	require.NoError(t, err)
	assert.InDelta(t, 0.6, matches[0].Confidence, 1e-9)

	// регион вида - подстрока региона инцидента: бонуса нет
	matches, err = matcher.MatchByCharacteristics(context.Background(), models.Characteristics{Length: "1m"}, "Rural East Africa")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, matches[0].Confidence, 1e-9)
}

func TestMatchByCharacteristics_OrdersByConfidenceStable(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)

	first := species("Brown House Snake", "Africa", "brown")
	second := species("Black Mamba", "Africa", "black")
	third := species("Night Adder", "Africa", "brown")
	local := species("Green Mamba", "Africa", "green")
	local.LocalNames = []string{"Kijani black-tail"}

	repoMock.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).
		Return([]*models.Species{first, second, third, local}, nil)

	matches, err := matcher.MatchByCharacteristics(context.Background(), models.Characteristics{Color: "black"}, "")
	require.NoError(t, err)
	require.Len(t, matches, 4)

	assert.Equal(t, second.ID, matches[0].Species.ID)
	assert.Equal(t, local.ID, matches[1].Species.ID) // совпадение по местному названию
	assert.Equal(t, first.ID, matches[2].Species.ID)
	assert.Equal(t, third.ID, matches[3].Species.ID)
}

func TestMatchByCharacteristics_CapsPoolAtEight(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)

	pool := make([]*models.Species, 11)
	for i := range pool {
		pool[i] = species(fmt.Sprintf("Snake %d", i), "Africa", "")
	}
	repoMock.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).Return(pool, nil)

	matches, err := matcher.MatchByCharacteristics(context.Background(), models.Characteristics{Behavior: "shy"}, "")
	require.NoError(t, err)
	assert.Len(t, matches, 8)
}

func TestMatchers_DoNotMutateSpecies(t *testing.T) {
	matcher, repoMock := newTestMatcher(t)

	s := species("Black Mamba", "East Africa", "grey-black")
	s.Habitat = "savanna"
	snapshot := *s
	repoMock.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).Return([]*models.Species{s}, nil).Times(4)

	ctx := context.Background()
	first, err := matcher.MatchByCharacteristics(ctx, models.Characteristics{Color: "black"}, "East")
	require.NoError(t, err)
	second, err := matcher.MatchByCharacteristics(ctx, models.Characteristics{Color: "black"}, "East")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	img1, err := matcher.MatchByImage(ctx, testImage, "East")
	require.NoError(t, err)
	img2, err := matcher.MatchByImage(ctx, testImage, "East")
	require.NoError(t, err)
	assert.Equal(t, img1, img2)

	assert.Equal(t, snapshot, *s)
}
