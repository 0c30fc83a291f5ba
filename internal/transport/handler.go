package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/anime-shed/glowmatch-go/internal/config"
	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/internal/logger"
	"github.com/anime-shed/glowmatch-go/internal/observer"
	"github.com/anime-shed/glowmatch-go/internal/service"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

const serviceVersion = "2.0.0"

// NewHandler builds the HTTP surface. metrics may be nil, in which case
// /metrics reports an empty snapshot.
func NewHandler(svc service.AnalysisService, metrics *observer.MetricsObserver, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	r.GET("/health", healthCheck)
	r.GET("/metrics", metricsSnapshot(metrics))

	api := r.Group("/api/v1")
	api.POST("/analyze", analyzeSample(svc, cfg))
	api.POST("/analyze/batch", analyzeBatch(svc, cfg))
	api.GET("/categories", listCategories(svc))
	api.GET("/palettes/:category", getPalette(svc))

	return r
}

func analyzeSample(svc service.AnalysisService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logRequest(c, "Processing skin tone analysis request")

		var req models.AnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		// query parameter takes precedence over the body
		if v := c.Query("version"); v != "" {
			req.Version = v
		}

		resp, err := svc.Analyze(ctx, req)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "skin tone analysis failed", err)
			return
		}

		fields := completionFields(resp)
		fields["processing_time_ms"] = time.Since(startTime).Milliseconds()
		fields["sample_size"] = req.SampleSize
		logger.WithFields(fields).Info("Skin tone analysis completed successfully")

		c.JSON(http.StatusOK, resp)
	}
}

func analyzeBatch(svc service.AnalysisService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logRequest(c, "Processing batch analysis request")

		var req models.BatchAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		if v := c.Query("version"); v != "" {
			req.Version = v
		}

		resp, err := svc.AnalyzeBatch(ctx, req)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "batch analysis failed", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"total":              resp.Total,
			"succeeded":          resp.Succeeded,
			"failed":             resp.Failed,
			"version":            resp.Version,
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		}).Info("Batch analysis completed")

		c.JSON(http.StatusOK, resp)
	}
}

func listCategories(svc service.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := svc.Categories()
		c.JSON(http.StatusOK, gin.H{
			"count":      len(categories),
			"categories": categories,
		})
	}
}

func getPalette(svc service.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Palette(c.Param("category"))
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "palette lookup failed", err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func metricsSnapshot(metrics *observer.MetricsObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.JSON(http.StatusOK, observer.MetricsSnapshot{CategoryCounts: map[string]int64{}})
			return
		}
		c.JSON(http.StatusOK, metrics.GetMetrics())
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": serviceVersion,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func logRequest(c *gin.Context, msg string) {
	logger.WithFields(logrus.Fields{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"user_agent": c.Request.UserAgent(),
		"ip":         c.ClientIP(),
	}).Info(msg)
}

func completionFields(resp models.VersionedResponse) logrus.Fields {
	fields := logrus.Fields{"version": resp.ResponseVersion()}
	switch r := resp.(type) {
	case models.AnalysisResponseV1:
		fields["depth"] = r.SkinAnalysis.Depth
		fields["undertone"] = r.SkinAnalysis.Undertone
		fields["confidence"] = r.AnalysisDetails.Confidence
	case models.AnalysisResponseV2:
		fields["analysis_id"] = r.ID
		fields["depth"] = r.SkinAnalysis.ExtendedClassification.ExtendedDepth
		fields["undertone"] = r.SkinAnalysis.ExtendedClassification.ExtendedUndertone
		fields["confidence"] = r.AnalysisDetails.ConfidenceScore
		fields["retry_suggested"] = r.AnalysisDetails.RetrySuggested
	}
	return fields
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(c, http.StatusRequestEntityTooLarge, "request body too large",
			apperrors.NewValidationError("request body exceeds the configured limit", err))
		return
	}
	respondError(c, http.StatusBadRequest, "invalid request format",
		apperrors.NewValidationError("request body is not a valid pixel sample", err))
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	body := service.NewErrorResponse(err)
	body.Error = http.StatusText(code)
	c.AbortWithStatusJSON(code, body)
}
