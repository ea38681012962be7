package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces"
	"github.com/shopspring/decimal"
)

const (
	defaultModelPath  = "ml_models/ewaste_price_model.json"
	defaultScalerPath = "ml_models/ewaste_price_scaler.json"

	featureCount = 6
	minimumPrice = 100
)

var (
	// ErrArtifactsUnavailable means the model/scaler artifacts are missing or
	// corrupt. The learned path cannot operate without them.
	ErrArtifactsUnavailable = errors.New("predictor artifacts unavailable")

	// ErrNoPrediction is the soft failure for inputs the predictor could not
	// encode or scale; callers fall back to the rule-based estimator.
	ErrNoPrediction = errors.New("no prediction available")
)

// modelParams are the pre-fitted linear regression parameters.
type modelParams struct {
	Version      string    `json:"version"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// scalerParams are the pre-fitted mean/variance normalization parameters.
type scalerParams struct {
	Version string    `json:"version"`
	Mean    []float64 `json:"mean"`
	Scale   []float64 `json:"scale"`
}

// Vocabulary tables for categorical features. Every table is total: unknown
// values fall back to a fixed default code (device type 0, condition 1,
// component statuses 1).
var deviceTypeCodes = map[string]float64{
	"phone": 0, "laptop": 1, "tablet": 2, "desktop": 3, "tv": 4, "console": 5,
}

var conditionCodes = map[entities.FunctionalStatus]float64{
	entities.FunctionalStatusWorking:          2,
	entities.FunctionalStatusPartiallyWorking: 1,
	entities.FunctionalStatusNotWorking:       0,
}

var statusCodes = map[entities.ComponentStatus]float64{
	entities.ComponentStatusGood: 2,
	entities.ComponentStatusFair: 1,
	entities.ComponentStatusPoor: 0,
	entities.ComponentStatusNA:   1,
}

// PricePredictor is the learned pricing path: a pre-fitted standard scaler
// plus linear regression, loaded once from persisted artifacts.
//
// Thread safety: parameters are immutable after construction; PredictPrice is
// safe for concurrent use.

type PricePredictor struct {
	model  modelParams
	scaler scalerParams
}

var _ interfaces.IPricePredictor = (*PricePredictor)(nil)

var (
	defaultPredictor     *PricePredictor
	defaultPredictorErr  error
	defaultPredictorOnce sync.Once
)

// Default returns the process-wide predictor, initialized once from the
// artifact paths in ML_MODEL_PATH / ML_SCALER_PATH. Teardown is process-exit
// only.
func Default() (*PricePredictor, error) {
	defaultPredictorOnce.Do(func() {
		defaultPredictor, defaultPredictorErr = NewPricePredictor(
			getenvDefault("ML_MODEL_PATH", defaultModelPath),
			getenvDefault("ML_SCALER_PATH", defaultScalerPath),
		)
	})
	return defaultPredictor, defaultPredictorErr
}

func NewPricePredictor(modelPath, scalerPath string) (*PricePredictor, error) {
	var model modelParams
	if err := loadArtifact(modelPath, &model); err != nil {
		return nil, err
	}
	var scaler scalerParams
	if err := loadArtifact(scalerPath, &scaler); err != nil {
		return nil, err
	}

	if len(model.Coefficients) != featureCount || len(scaler.Mean) != featureCount || len(scaler.Scale) != featureCount {
		return nil, fmt.Errorf("%w: expected %d features, model=%d mean=%d scale=%d",
			ErrArtifactsUnavailable, featureCount, len(model.Coefficients), len(scaler.Mean), len(scaler.Scale))
	}
	if model.Version != scaler.Version {
		return nil, fmt.Errorf("%w: model version %q does not match scaler version %q",
			ErrArtifactsUnavailable, model.Version, scaler.Version)
	}

	log.Printf("[predictor][ml] artifacts loaded version=%s model=%s scaler=%s", model.Version, modelPath, scalerPath)
	return &PricePredictor{model: model, scaler: scaler}, nil
}

func loadArtifact(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactsUnavailable, path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactsUnavailable, path, err)
	}
	return nil
}

// PredictPrice encodes the input into the fixed-order feature vector
// [device_type, age, condition, battery, screen, motherboard], standardizes
// it and applies the regression. The result is rounded to 2 decimal places
// and floored at 100 INR.
func (p *PricePredictor) PredictPrice(input entities.EstimateInput) (decimal.Decimal, error) {
	features, err := p.encode(input)
	if err != nil {
		return decimal.Decimal{}, err
	}

	prediction := p.model.Intercept
	for i, x := range features {
		scale := p.scaler.Scale[i]
		if scale == 0 {
			return decimal.Decimal{}, fmt.Errorf("%w: zero scale for feature %d", ErrNoPrediction, i)
		}
		prediction += p.model.Coefficients[i] * ((x - p.scaler.Mean[i]) / scale)
	}
	if math.IsNaN(prediction) || math.IsInf(prediction, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: non-finite prediction", ErrNoPrediction)
	}

	price := decimal.NewFromFloat(prediction).Round(2)
	floor := decimal.NewFromInt(minimumPrice)
	if price.LessThan(floor) {
		price = floor
	}
	return price, nil
}

func (p *PricePredictor) encode(input entities.EstimateInput) ([featureCount]float64, error) {
	var features [featureCount]float64

	age := input.AgeYears.InexactFloat64()
	if math.IsNaN(age) || math.IsInf(age, 0) || age < 0 {
		return features, fmt.Errorf("%w: invalid age", ErrNoPrediction)
	}

	deviceType, ok := deviceTypeCodes[strings.ToLower(strings.TrimSpace(input.ItemType))]
	if !ok {
		deviceType = 0
	}
	condition, ok := conditionCodes[input.FunctionalStatus]
	if !ok {
		condition = 1
	}

	features[0] = deviceType
	features[1] = age
	features[2] = condition
	features[3] = statusCode(input.BatteryStatus)
	features[4] = statusCode(input.ScreenCondition)
	features[5] = statusCode(input.MotherboardStatus)
	return features, nil
}

func statusCode(s entities.ComponentStatus) float64 {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return 1
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
