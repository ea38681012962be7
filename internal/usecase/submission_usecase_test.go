package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	mock_interfaces "github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func workingPhoneCommand() SubmissionCommand {
	return SubmissionCommand{
		UserID: "user-1",
		Input: entities.EstimateInput{
			ItemType:          "mobile",
			AgeYears:          decimal.Zero,
			FunctionalStatus:  entities.FunctionalStatusWorking,
			BatteryStatus:     entities.ComponentStatusGood,
			ScreenCondition:   entities.ComponentStatusGood,
			MotherboardStatus: entities.ComponentStatusGood,
		},
		ImageRef: "uploads/phone.jpg",
		Basis:    entities.EstimateBasisRuleBased,
	}
}

func TestSubmissionUseCase_Submit(t *testing.T) {
	t.Run("missing item type", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		cmd := workingPhoneCommand()
		cmd.Input.ItemType = "  "
		_, _, err := uc.Submit(context.Background(), cmd)
		if !errors.Is(err, ErrMissingItemType) {
			t.Fatalf("expected ErrMissingItemType, got %v", err)
		}
	})

	t.Run("missing image", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		cmd := workingPhoneCommand()
		cmd.ImageRef = ""
		_, _, err := uc.Submit(context.Background(), cmd)
		if !errors.Is(err, ErrMissingImage) {
			t.Fatalf("expected ErrMissingImage, got %v", err)
		}
	})

	t.Run("negative age", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		cmd := workingPhoneCommand()
		cmd.Input.AgeYears = dec("-1")
		_, _, err := uc.Submit(context.Background(), cmd)
		if !errors.Is(err, ErrNegativeAge) {
			t.Fatalf("expected ErrNegativeAge, got %v", err)
		}
	})

	t.Run("classifier failure keeps self-reported statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		classifier := mock_interfaces.NewMockIConditionClassifier(ctrl)
		uc := NewSubmissionUseCase(items, classifier, NewPricingUseCase(nil, nil, nil))

		classifier.EXPECT().AnalyzeImage(gomock.Any(), "uploads/phone.jpg").Return(nil, errors.New("detector down"))
		items.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EWasteItem{})).DoAndReturn(
			func(_ context.Context, item entities.EWasteItem) (entities.EWasteItem, error) {
				if item.ScreenCondition != entities.ComponentStatusGood {
					t.Fatalf("expected self-reported screen status, got %s", item.ScreenCondition)
				}
				if item.AnalysisResults != nil {
					t.Fatalf("expected no analysis results on classifier failure")
				}
				return item, nil
			},
		)

		_, estimate, err := uc.Submit(context.Background(), workingPhoneCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := estimate.Amount.StringFixed(2); got != "1600.00" {
			t.Fatalf("expected 1600.00, got %s", got)
		}
	})

	t.Run("detections downgrade component statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		classifier := mock_interfaces.NewMockIConditionClassifier(ctrl)
		uc := NewSubmissionUseCase(items, classifier, NewPricingUseCase(nil, nil, nil))

		classifier.EXPECT().AnalyzeImage(gomock.Any(), "uploads/phone.jpg").Return([]entities.Detection{
			{Label: "cracked_screen", Confidence: 0.92},
			{Label: "swollen_battery", Confidence: 0.2}, // below threshold, ignored
		}, nil)
		items.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EWasteItem{})).DoAndReturn(
			func(_ context.Context, item entities.EWasteItem) (entities.EWasteItem, error) {
				if item.ScreenCondition != entities.ComponentStatusPoor {
					t.Fatalf("expected downgraded screen status, got %s", item.ScreenCondition)
				}
				if item.BatteryStatus != entities.ComponentStatusGood {
					t.Fatalf("low-confidence detection must not downgrade, got %s", item.BatteryStatus)
				}
				if len(item.AnalysisResults) == 0 {
					t.Fatalf("expected persisted analysis results")
				}
				return item, nil
			},
		)

		_, estimate, err := uc.Submit(context.Background(), workingPhoneCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 2000 * 0.8 * ((1.0+0.5+1.0)/3)
		if got := estimate.Amount.StringFixed(2); got != "1333.33" {
			t.Fatalf("expected 1333.33, got %s", got)
		}
	})

	t.Run("detections never upgrade a status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		classifier := mock_interfaces.NewMockIConditionClassifier(ctrl)
		uc := NewSubmissionUseCase(items, classifier, NewPricingUseCase(nil, nil, nil))

		cmd := workingPhoneCommand()
		cmd.Input.ScreenCondition = entities.ComponentStatusPoor

		classifier.EXPECT().AnalyzeImage(gomock.Any(), "uploads/phone.jpg").Return([]entities.Detection{
			{Label: "screen_scratches", Confidence: 0.88},
		}, nil)
		items.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EWasteItem{})).DoAndReturn(
			func(_ context.Context, item entities.EWasteItem) (entities.EWasteItem, error) {
				if item.ScreenCondition != entities.ComponentStatusPoor {
					t.Fatalf("expected poor to stay poor, got %s", item.ScreenCondition)
				}
				return item, nil
			},
		)

		if _, _, err := uc.Submit(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("learned basis falls back to rules on predictor failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		predictor := mock_interfaces.NewMockIPricePredictor(ctrl)
		uc := NewSubmissionUseCase(items, nil, NewPricingUseCase(nil, nil, predictor))

		predictor.EXPECT().PredictPrice(gomock.Any()).Return(decimal.Decimal{}, errors.New("no artifacts"))
		items.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EWasteItem{})).DoAndReturn(
			func(_ context.Context, item entities.EWasteItem) (entities.EWasteItem, error) { return item, nil },
		)

		cmd := workingPhoneCommand()
		cmd.Basis = entities.EstimateBasisLearnedModel

		_, estimate, err := uc.Submit(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if estimate.Basis != entities.EstimateBasisRuleBased {
			t.Fatalf("expected fallback to rule-based, got %s", estimate.Basis)
		}
		if got := estimate.Amount.StringFixed(2); got != "1600.00" {
			t.Fatalf("expected 1600.00, got %s", got)
		}
	})

	t.Run("learned basis success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		predictor := mock_interfaces.NewMockIPricePredictor(ctrl)
		uc := NewSubmissionUseCase(items, nil, NewPricingUseCase(nil, nil, predictor))

		predictor.EXPECT().PredictPrice(gomock.Any()).Return(dec("1950.75"), nil)
		items.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EWasteItem{})).DoAndReturn(
			func(_ context.Context, item entities.EWasteItem) (entities.EWasteItem, error) {
				if item.EstimateBasis != entities.EstimateBasisLearnedModel {
					t.Fatalf("expected learned basis on the item, got %s", item.EstimateBasis)
				}
				return item, nil
			},
		)

		cmd := workingPhoneCommand()
		cmd.Basis = entities.EstimateBasisLearnedModel

		_, estimate, err := uc.Submit(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := estimate.Amount.StringFixed(2); got != "1950.75" {
			t.Fatalf("expected 1950.75, got %s", got)
		}
		if estimate.Basis != entities.EstimateBasisLearnedModel {
			t.Fatalf("expected learned-model basis, got %s", estimate.Basis)
		}
	})

	t.Run("persist failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		uc := NewSubmissionUseCase(items, nil, NewPricingUseCase(nil, nil, nil))

		items.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.EWasteItem{}, errors.New("db"))

		_, _, err := uc.Submit(context.Background(), workingPhoneCommand())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("item fields are normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		uc := NewSubmissionUseCase(items, nil, NewPricingUseCase(nil, nil, nil))

		cmd := workingPhoneCommand()
		cmd.UserID = " user-1 "
		cmd.Input.ItemType = " Mobile "
		cmd.Input.Brand = " Apple "

		items.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EWasteItem{})).DoAndReturn(
			func(_ context.Context, item entities.EWasteItem) (entities.EWasteItem, error) {
				if item.ID == "" {
					t.Fatalf("expected a generated id")
				}
				if item.UserID != "user-1" || item.ItemType != "mobile" || item.Brand != "Apple" {
					t.Fatalf("unexpected normalization: %+v", item)
				}
				if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return item, nil
			},
		)

		if _, _, err := uc.Submit(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSubmissionUseCase_GetSubmission(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		_, err := uc.GetSubmission(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSubmissionID) {
			t.Fatalf("expected ErrInvalidSubmissionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		uc := NewSubmissionUseCase(items, nil, nil)

		items.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.EWasteItem{}, nil)

		_, err := uc.GetSubmission(context.Background(), "missing")
		if !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		uc := NewSubmissionUseCase(items, nil, nil)

		items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.EWasteItem{}, errors.New("db"))

		_, err := uc.GetSubmission(context.Background(), "item-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIEWasteItemRepository(ctrl)
		uc := NewSubmissionUseCase(items, nil, nil)

		items.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.EWasteItem{
			ID:              "item-1",
			ItemType:        "mobile",
			PriceEstimation: dec("1600.00"),
			EstimateBasis:   entities.EstimateBasisRuleBased,
		}, nil)

		item, err := uc.GetSubmission(context.Background(), " item-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ItemType != "mobile" || item.EstimateBasis != entities.EstimateBasisRuleBased {
			t.Fatalf("unexpected item: %+v", item)
		}
	})
}
