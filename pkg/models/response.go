package models

const (
	Version1 = "1.0"
	Version2 = "2.0"
)

// VersionedResponse is implemented by every analysis response shape. The
// version field on the wire names which shape a client received.
type VersionedResponse interface {
	ResponseVersion() string
}

// AnalysisResponseV1 carries only the legacy fields.
type AnalysisResponseV1 struct {
	Version         string          `json:"version"`
	Success         bool            `json:"success"`
	Message         string          `json:"message"`
	SkinAnalysis    LegacyAnalysis  `json:"skinAnalysis"`
	Recommendations Recommendations `json:"recommendations"`
	AnalysisDetails DetailsV1       `json:"analysisDetails"`
}

type DetailsV1 struct {
	ProcessingTime     string `json:"processingTime"`
	SkinPixelsDetected int    `json:"skinPixelsDetected"`
	Confidence         string `json:"confidence"`
}

func (AnalysisResponseV1) ResponseVersion() string { return Version1 }

// AnalysisResponseV2 keeps every V1 field in place and adds the extended
// classification and seasonal blocks as siblings.
type AnalysisResponseV2 struct {
	ID              string            `json:"id"`
	Version         string            `json:"version"`
	Success         bool              `json:"success"`
	Message         string            `json:"message"`
	SkinAnalysis    SkinAnalysisV2    `json:"skinAnalysis"`
	Recommendations RecommendationsV2 `json:"recommendations"`
	AnalysisDetails DetailsV2         `json:"analysisDetails"`
	Warnings        []string          `json:"warnings,omitempty"`
}

type SkinAnalysisV2 struct {
	LegacyAnalysis
	ExtendedClassification ExtendedClassification `json:"extendedClassification"`
}

type RecommendationsV2 struct {
	Recommendations
	SeasonalRecommendations SeasonalRecommendations `json:"seasonalRecommendations"`
}

type DetailsV2 struct {
	ProcessingTime          string    `json:"processingTime"`
	SkinPixelsDetected      int       `json:"skinPixelsDetected"`
	SamplesAnalyzed         int       `json:"samplesAnalyzed"`
	HueDistribution         []float64 `json:"hueDistribution"`
	HueStdDev               float64   `json:"hueStdDev"`
	SaturationLevel         float64   `json:"saturationLevel"`
	BrightnessLevel         float64   `json:"brightnessLevel"`
	ConfidenceScore         float64   `json:"confidenceScore"`
	RecommendedRetryIfBelow float64   `json:"recommendedRetryIfBelow"`
	RetrySuggested          bool      `json:"retrySuggested"`
}

func (AnalysisResponseV2) ResponseVersion() string { return Version2 }
