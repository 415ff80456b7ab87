package response

import (
	"encoding/base64"
	"pedido_venda/internal/domain/entities"
)

// SubmissionResponse tells the client whether the document reached the
// finance mailbox. With status local_only the client is expected to save
// document_base64 as file_name.
type SubmissionResponse struct {
	Status         string `json:"status"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	FailureReason  string `json:"failure_reason,omitempty"`
	FileName       string `json:"file_name"`
	DocumentBase64 string `json:"document_base64"`
}

func FromSubmission(r entities.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		Status:         string(r.Status),
		Title:          r.Title,
		Message:        r.Message,
		FailureReason:  r.FailureReason,
		FileName:       r.Artifact.FileName,
		DocumentBase64: base64.StdEncoding.EncodeToString(r.Artifact.Data),
	}
}
