package entities

// SubmissionStatus is the outcome of a submit action.
//
// A submit never fails after the document was built: when the backend cannot
// deliver it, the caller still receives the document to save locally.

type SubmissionStatus string

const (
	SubmissionStatusSent      SubmissionStatus = "sent"
	SubmissionStatusLocalOnly SubmissionStatus = "local_only"
)

// SubmissionRequest is the JSON payload posted to the submission endpoint.
type SubmissionRequest struct {
	Salesperson    string `json:"salesperson"`
	OrderCode      string `json:"orderCode"`
	DocumentBase64 string `json:"documentBase64"`
	FileName       string `json:"fileName"`
}

type SubmissionResult struct {
	Status        SubmissionStatus
	Title         string
	Message       string
	FailureReason string
	Artifact      Artifact
}

func (r SubmissionResult) Delivered() bool {
	return r.Status == SubmissionStatusSent
}
