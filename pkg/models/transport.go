package models

// AnalysisRequest is the body of POST /api/v1/analyze.
type AnalysisRequest struct {
	PixelSample
	Version string `json:"version,omitempty"`
}

// BatchAnalysisRequest analyzes several samples with one response version.
type BatchAnalysisRequest struct {
	Samples []PixelSample `json:"samples"`
	Version string        `json:"version,omitempty"`
}

// BatchItem holds either a response or the error for one sample, by index.
type BatchItem struct {
	Index    int               `json:"index"`
	Response VersionedResponse `json:"response,omitempty"`
	Error    *ErrorResponse    `json:"error,omitempty"`
}

type BatchAnalysisResponse struct {
	Version   string      `json:"version"`
	Total     int         `json:"total"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Results   []BatchItem `json:"results"`
}

// CategoryInfo describes one extended category and its legacy cell.
type CategoryInfo struct {
	Key             string `json:"key"`
	Depth           string `json:"depth"`
	DepthLevel      int    `json:"depthLevel"`
	DepthPercentile string `json:"depthPercentile"`
	Undertone       string `json:"undertone"`
	HueRange        [2]int `json:"hueRange"`
	LegacyCategory  string `json:"legacyCategory"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
}
