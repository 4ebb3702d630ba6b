package models

import (
	"time"

	"github.com/google/uuid"
)

type Certainty string

const (
	CertaintyHigh   Certainty = "HIGH"
	CertaintyMedium Certainty = "MEDIUM"
	CertaintyLow    Certainty = "LOW"
)

// CertaintyFor переводит непрерывную уверенность в категорию
func CertaintyFor(confidence float64) Certainty {
	switch {
	case confidence > 0.7:
		return CertaintyHigh
	case confidence > 0.5:
		return CertaintyMedium
	default:
		return CertaintyLow
	}
}

// Characteristics - описание змеи со слов пострадавшего
type Characteristics struct {
	Color     string `json:"color,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Length    string `json:"length,omitempty"`
	HeadShape string `json:"head_shape,omitempty"`
	Behavior  string `json:"behavior,omitempty"`
}

// ImageMetadata - то, что удалось извлечь из загруженного изображения
type ImageMetadata struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

type ImageAnalysis struct {
	Processed  bool   `json:"processed"`
	Dimensions string `json:"dimensions"`
	Format     string `json:"format"`
}

type MatchResult struct {
	Species          SpeciesSummary `json:"snake"`
	Confidence       float64        `json:"confidence"`
	MatchingFeatures []string       `json:"matching_features"`
	Certainty        Certainty      `json:"certainty"`
	ImageAnalysis    *ImageAnalysis `json:"image_analysis,omitempty"`
}

type IdentificationMethod string

const (
	MethodImage           IdentificationMethod = "image_enhanced_analysis"
	MethodCharacteristics IdentificationMethod = "characteristics_based_matching"
)

type TopMatch struct {
	Snake      string    `json:"snake"`
	Confidence int       `json:"confidence"`
	Certainty  Certainty `json:"certainty"`
}

// Identification - результат одного запроса идентификации, он же запись истории
type Identification struct {
	ID            string               `json:"identification_id"`
	UserID        uuid.UUID            `json:"user_id"`
	Method        IdentificationMethod `json:"method"`
	Matches       []MatchResult        `json:"matches"`
	MatchesCount  int                  `json:"matches_count"`
	TopMatch      *TopMatch            `json:"top_match"`
	ImageAnalysis *ImageAnalysis       `json:"image_analysis,omitempty"`
	ProcessedAt   time.Time            `json:"processed_at"`
}

// IdentifyRequest - ровно одно из Image или Characteristics должно быть задано
type IdentifyRequest struct {
	Image           *ImageMetadata
	Characteristics *Characteristics
	Region          string
}
