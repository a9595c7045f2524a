package adapter

import (
	"context"

	"github.com/vaantra/vaantra-server/models"
)

// AnswerProvider is the outbound contract for the adaptive-answer service.
// Implementations choose the endpoint variant based solely on the presence
// of doc and return the two answer strings on success.
type AnswerProvider interface {
	// Answer sends question (and, when doc is non-nil, the stored PDF) to
	// the answer service. Transport failures after the bounded retry are
	// reported as [ErrAnswerServiceUnreachable]; non-2xx responses as
	// [*UpstreamError] carrying the remote detail message.
	Answer(ctx context.Context, question string, doc *models.UploadedFile) (models.Answer, error)
}
