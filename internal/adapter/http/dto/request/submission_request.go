package request

import (
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase"
)

// SubmissionRequest carries a full e-waste submission: the self-reported
// estimate fields plus the uploaded image reference.
type SubmissionRequest struct {
	EstimateRequest
	UserID   string `json:"user_id"`
	ImageRef string `json:"image_ref" binding:"required"`
}

func (r SubmissionRequest) ToCommand() (usecase.SubmissionCommand, error) {
	input, err := r.ToEstimateInput()
	if err != nil {
		return usecase.SubmissionCommand{}, err
	}
	return usecase.SubmissionCommand{
		UserID:   r.UserID,
		Input:    input,
		ImageRef: r.ImageRef,
		Basis:    r.ResolveBasis(),
	}, nil
}
