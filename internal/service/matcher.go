package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shenikar/snaktox/internal/models"
)

const (
	DefaultRegion                 = "East Africa"
	imageCandidateLimit           = 10
	characteristicsCandidateLimit = 8

	imageBaseConfidence = 0.6
	imageIndexDecay     = 0.08
	imagePresenceBonus  = 0.15
	imageMinConfidence  = 0.2
	imageMaxConfidence  = 0.9

	traitBaseConfidence = 0.5
	colorBonus          = 0.2
	patternBonus        = 0.15
	regionBonus         = 0.1
	behaviorBonus       = 0.1
	habitatBonus        = 0.05
	traitMinConfidence  = 0.1
	traitMaxConfidence  = 0.95
)

var imageFeatures = []string{
	"Regional distribution match",
	"Image-based pattern analysis",
	"Morphological characteristics",
}

// SpeciesMatcher - эвристический подбор видов змей, не ML.
// Визуальные признаки изображения не анализируются: уверенность зависит
// от позиции кандидата в выборке хранилища (порядок вставки).
type SpeciesMatcher struct {
	repo SpeciesRepository
}

func NewSpeciesMatcher(repo SpeciesRepository) *SpeciesMatcher {
	return &SpeciesMatcher{repo: repo}
}

// MatchByImage ранжирует виды региона по наличию изображения.
// Кандидат с индексом i получает clamp(0.6 - 0.08*i + 0.15, 0.2, 0.9).
func (m *SpeciesMatcher) MatchByImage(ctx context.Context, meta models.ImageMetadata, region string) ([]models.MatchResult, error) {
	if strings.TrimSpace(region) == "" {
		region = DefaultRegion
	}

	pool, err := m.repo.FindCandidates(ctx, models.SpeciesFilter{
		Region: region,
		Limit:  imageCandidateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not load regional species: %w", err)
	}

	analysis := &models.ImageAnalysis{
		Processed:  true,
		Dimensions: fmt.Sprintf("%dx%d", meta.Width, meta.Height),
		Format:     meta.Format,
	}

	matches := make([]models.MatchResult, 0, len(pool))
	for _, s := range activeOnly(pool, imageCandidateLimit) {
		i := len(matches)
		confidence := clamp(imageBaseConfidence-imageIndexDecay*float64(i)+imagePresenceBonus, imageMinConfidence, imageMaxConfidence)
		matches = append(matches, models.MatchResult{
			Species:          s.Summary(),
			Confidence:       confidence,
			MatchingFeatures: append([]string(nil), imageFeatures...),
			Certainty:        models.CertaintyFor(confidence),
			ImageAnalysis:    analysis,
		})
	}

	sortByConfidence(matches)
	return matches, nil
}

// MatchByCharacteristics ранжирует виды по совпадению описания со словами пострадавшего
func (m *SpeciesMatcher) MatchByCharacteristics(ctx context.Context, c models.Characteristics, region string) ([]models.MatchResult, error) {
	color := strings.TrimSpace(c.Color)
	pattern := strings.TrimSpace(c.Pattern)
	behavior := strings.TrimSpace(c.Behavior)
	region = strings.TrimSpace(region)

	pool, err := m.repo.FindCandidates(ctx, models.SpeciesFilter{
		Region:  region,
		Color:   color,
		Pattern: pattern,
		Limit:   characteristicsCandidateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not load candidate species: %w", err)
	}

	matches := make([]models.MatchResult, 0, len(pool))
	for _, s := range activeOnly(pool, characteristicsCandidateLimit) {
		confidence := traitBaseConfidence
		var features []string

		if color != "" && speciesTextContains(s, color) {
			confidence += colorBonus
			features = append(features, "Color: "+color)
		}
		if pattern != "" && speciesTextContains(s, pattern) {
			confidence += patternBonus
			features = append(features, "Pattern: "+pattern)
		}
		// регион инцидента должен быть подстрокой региона вида, как и в фильтре выборки
		if region != "" && containsFold(s.Region, region) {
			confidence += regionBonus
			features = append(features, "Region: "+s.Region)
		}
		if behavior != "" && s.Behavior != "" && containsFold(s.Behavior, behavior) {
			confidence += behaviorBonus
			features = append(features, "Behavior: "+behavior)
		}
		if strings.TrimSpace(s.Habitat) != "" {
			confidence += habitatBonus
			features = append(features, "Habitat match")
		}

		confidence = clamp(confidence, traitMinConfidence, traitMaxConfidence)
		if len(features) == 0 {
			features = []string{"Regional distribution", "General characteristics"}
		}

		matches = append(matches, models.MatchResult{
			Species:          s.Summary(),
			Confidence:       confidence,
			MatchingFeatures: features,
			Certainty:        models.CertaintyFor(confidence),
		})
	}

	sortByConfidence(matches)
	return matches, nil
}

func activeOnly(pool []*models.Species, limit int) []*models.Species {
	out := make([]*models.Species, 0, len(pool))
	for _, s := range pool {
		if s == nil || !s.IsActive {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

func speciesTextContains(s *models.Species, text string) bool {
	if containsFold(s.Description, text) || containsFold(s.CommonName, text) || containsFold(s.ScientificName, text) {
		return true
	}
	for _, name := range s.LocalNames {
		if containsFold(name, text) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// sortByConfidence - по убыванию, при равенстве сохраняется порядок выборки
func sortByConfidence(matches []models.MatchResult) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
}
