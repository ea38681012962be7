package vision

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces"
	"github.com/go-resty/resty/v2"
)

var ErrMissingDetectorURL = errors.New("missing DETECTOR_URL")

// DetectorGateway calls the external object-detection service that maps an
// uploaded image to a list of detected defects. The detector itself (and its
// training) lives outside this service; only the detections contract matters
// here.
//
// Env:
//   - DETECTOR_URL     base URL of the detector service
//   - DETECTOR_MOCK    truthy value enables mock mode (no external calls)

type DetectorGateway struct {
	client   *resty.Client
	mockMode bool
}

var _ interfaces.IConditionClassifier = (*DetectorGateway)(nil)

func NewDetectorGateway(baseURL string) (*DetectorGateway, error) {
	if isDetectorMockEnabled() {
		log.Printf("[vision][gateway] mock mode enabled")
		return &DetectorGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(baseURL) == "" {
		log.Printf("[vision][gateway] missing DETECTOR_URL")
		return nil, ErrMissingDetectorURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)

	log.Printf("[vision][gateway] detector client initialized url=%s", baseURL)
	return &DetectorGateway{client: client}, nil
}

type analyzeRequest struct {
	ImageRef string `json:"image_ref"`
}

type analyzeResponse struct {
	Detections []entities.Detection `json:"detections"`
}

func (g *DetectorGateway) AnalyzeImage(ctx context.Context, imageRef string) ([]entities.Detection, error) {
	if g != nil && g.mockMode {
		log.Printf("[vision][gateway] mock analyze image_ref=%s", imageRef)
		return []entities.Detection{
			{Label: "device_intact", Confidence: 0.91},
		}, nil
	}
	if g == nil || g.client == nil {
		return nil, errors.New("detector gateway not configured")
	}

	log.Printf("[vision][gateway] analyze start image_ref=%s", imageRef)

	var result analyzeResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(analyzeRequest{ImageRef: imageRef}).
		SetResult(&result).
		Post("/analyze")
	if err != nil {
		log.Printf("[vision][gateway] analyze failed image_ref=%s err=%v", imageRef, err)
		return nil, err
	}
	if resp.IsError() {
		log.Printf("[vision][gateway] analyze rejected image_ref=%s status=%d", imageRef, resp.StatusCode())
		return nil, fmt.Errorf("detector returned status %d", resp.StatusCode())
	}

	log.Printf("[vision][gateway] analyze success image_ref=%s detections=%d", imageRef, len(result.Detections))
	return result.Detections, nil
}

func isDetectorMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("DETECTOR_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
