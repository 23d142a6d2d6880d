package llm

import (
	"context"

	"github.com/hsuanlin/overtime-tracker/internal/entity"
	"github.com/hsuanlin/overtime-tracker/internal/imaging"
)

// UsageMetrics reports the token accounting of one extraction call.
// TotalTokens is always PromptTokens + CompletionTokens.
type UsageMetrics struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ExtractionResult is the typed outcome of one batched recognition call.
type ExtractionResult struct {
	Document entity.OvertimeDocument
	Usage    UsageMetrics
	Model    string
	CostUSD  float64
}

// DocumentExtractor is the interface the pipeline depends on. One call carries
// all images of a form batch; the response must conform exactly to the
// OvertimeDocument schema.
type DocumentExtractor interface {
	RecognizeBatch(ctx context.Context, images []imaging.EncodedImage) (*ExtractionResult, error)
}
