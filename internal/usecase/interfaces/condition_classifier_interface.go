package interfaces

import (
	"context"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
)

// IConditionClassifier abstracts the external image-analysis collaborator.
//
// The classifier maps an uploaded image to a list of detected defects; the
// submission flow uses the detections to refine self-reported component
// statuses before pricing. A failing classifier degrades the flow to the
// self-reported values, it never blocks an estimate.

type IConditionClassifier interface {
	AnalyzeImage(ctx context.Context, imageRef string) ([]entities.Detection, error)
}
