package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces"
	"github.com/google/uuid"
)

var (
	ErrMissingItemType     = errors.New("item type is required")
	ErrMissingImage        = errors.New("image reference is required")
	ErrInvalidSubmissionID = errors.New("invalid submission id")
	ErrSubmissionNotFound  = errors.New("submission not found")
)

// SubmissionCommand carries one e-waste submission: self-reported metadata
// plus a reference to the uploaded image.
type SubmissionCommand struct {
	UserID   string
	Input    entities.EstimateInput
	ImageRef string
	Basis    entities.EstimateBasis
}

// ISubmissionUseCase runs the end-to-end submission flow: classifier
// refinement, estimation, persistence. GetSubmission reads a persisted
// item back by id.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, cmd SubmissionCommand) (entities.EWasteItem, entities.PriceEstimate, error)
	GetSubmission(ctx context.Context, id string) (entities.EWasteItem, error)
}

type SubmissionUseCase struct {
	items      interfaces.IEWasteItemRepository
	classifier interfaces.IConditionClassifier
	pricing    IPricingUseCase
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(items interfaces.IEWasteItemRepository, classifier interfaces.IConditionClassifier, pricing IPricingUseCase) *SubmissionUseCase {
	return &SubmissionUseCase{items: items, classifier: classifier, pricing: pricing}
}

// Submit validates the command, lets the image classifier refine component
// statuses, prices the device on the selected basis and persists the item.
//
// A failing classifier degrades the flow to the self-reported statuses; a
// soft-failing learned predictor falls back to the rule-based path. Neither
// blocks the submission.
func (u *SubmissionUseCase) Submit(ctx context.Context, cmd SubmissionCommand) (entities.EWasteItem, entities.PriceEstimate, error) {
	log.Printf("[submission][usecase] submit start user_id=%s item_type=%s basis=%s", cmd.UserID, cmd.Input.ItemType, cmd.Basis)

	if strings.TrimSpace(cmd.Input.ItemType) == "" {
		return entities.EWasteItem{}, entities.PriceEstimate{}, ErrMissingItemType
	}
	if strings.TrimSpace(cmd.ImageRef) == "" {
		return entities.EWasteItem{}, entities.PriceEstimate{}, ErrMissingImage
	}
	if cmd.Input.AgeYears.IsNegative() {
		return entities.EWasteItem{}, entities.PriceEstimate{}, ErrNegativeAge
	}

	input := cmd.Input
	var analysis json.RawMessage
	if u.classifier != nil {
		detections, err := u.classifier.AnalyzeImage(ctx, cmd.ImageRef)
		if err != nil {
			log.Printf("[submission][usecase] image analysis failed, keeping self-reported statuses user_id=%s err=%v", cmd.UserID, err)
		} else {
			input = refineFromDetections(input, detections)
			if b, err := json.Marshal(detections); err == nil {
				analysis = b
			}
		}
	}

	estimate, err := u.estimate(cmd.Basis, input)
	if err != nil {
		return entities.EWasteItem{}, entities.PriceEstimate{}, err
	}

	now := time.Now().UTC()
	item := entities.EWasteItem{
		ID:                uuid.NewString(),
		UserID:            strings.TrimSpace(cmd.UserID),
		ItemType:          strings.ToLower(strings.TrimSpace(input.ItemType)),
		Brand:             strings.TrimSpace(input.Brand),
		Model:             strings.TrimSpace(input.Model),
		AgeYears:          input.AgeYears,
		FunctionalStatus:  input.FunctionalStatus,
		BatteryStatus:     input.BatteryStatus,
		ScreenCondition:   input.ScreenCondition,
		MotherboardStatus: input.MotherboardStatus,
		ImageRef:          strings.TrimSpace(cmd.ImageRef),
		AnalysisResults:   analysis,
		PriceEstimation:   estimate.Amount,
		EstimateBasis:     estimate.Basis,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.items.Create(ctx, item)
	if err != nil {
		log.Printf("[submission][usecase] persist failed user_id=%s err=%v", cmd.UserID, err)
		return entities.EWasteItem{}, entities.PriceEstimate{}, err
	}
	log.Printf("[submission][usecase] submit success item_id=%s amount=%s basis=%s", created.ID, estimate.Amount.StringFixed(2), estimate.Basis)

	return created, estimate, nil
}

// GetSubmission resolves one persisted submission. Zero-value items from the
// repository mean the id is unknown.
func (u *SubmissionUseCase) GetSubmission(ctx context.Context, id string) (entities.EWasteItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EWasteItem{}, ErrInvalidSubmissionID
	}

	item, err := u.items.GetByID(ctx, id)
	if err != nil {
		return entities.EWasteItem{}, err
	}
	if item.ID == "" {
		return entities.EWasteItem{}, ErrSubmissionNotFound
	}
	return item, nil
}

func (u *SubmissionUseCase) estimate(basis entities.EstimateBasis, input entities.EstimateInput) (entities.PriceEstimate, error) {
	if basis == entities.EstimateBasisLearnedModel {
		estimate, err := u.pricing.PredictPrice(input)
		if err == nil {
			return estimate, nil
		}
		if errors.Is(err, ErrNegativeAge) {
			return entities.PriceEstimate{}, err
		}
		log.Printf("[submission][usecase] learned path unavailable, falling back to rules err=%v", err)
	}
	return u.pricing.EstimatePrice(input)
}

// detectionRefinements maps classifier labels to the component status they
// imply. A detection only ever downgrades a status.
var detectionRefinements = map[string]struct {
	component string
	status    entities.ComponentStatus
}{
	"cracked_screen":   {"screen", entities.ComponentStatusPoor},
	"shattered_screen": {"screen", entities.ComponentStatusPoor},
	"screen_scratches": {"screen", entities.ComponentStatusFair},
	"swollen_battery":  {"battery", entities.ComponentStatusPoor},
	"battery_bulge":    {"battery", entities.ComponentStatusPoor},
	"corrosion":        {"motherboard", entities.ComponentStatusPoor},
	"water_damage":     {"motherboard", entities.ComponentStatusPoor},
	"burn_marks":       {"motherboard", entities.ComponentStatusPoor},
}

const minDetectionConfidence = 0.5

func refineFromDetections(input entities.EstimateInput, detections []entities.Detection) entities.EstimateInput {
	for _, d := range detections {
		if d.Confidence < minDetectionConfidence {
			continue
		}
		ref, ok := detectionRefinements[strings.ToLower(d.Label)]
		if !ok {
			continue
		}
		switch ref.component {
		case "screen":
			input.ScreenCondition = downgrade(input.ScreenCondition, ref.status)
		case "battery":
			input.BatteryStatus = downgrade(input.BatteryStatus, ref.status)
		case "motherboard":
			input.MotherboardStatus = downgrade(input.MotherboardStatus, ref.status)
		}
	}
	return input
}

var statusRank = map[entities.ComponentStatus]int{
	entities.ComponentStatusGood: 3,
	entities.ComponentStatusFair: 2,
	entities.ComponentStatusNA:   2,
	entities.ComponentStatusPoor: 1,
}

func downgrade(current, detected entities.ComponentStatus) entities.ComponentStatus {
	if current == "" {
		return detected
	}
	if statusRank[detected] < statusRank[current] {
		return detected
	}
	return current
}
