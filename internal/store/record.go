package store

import (
	"path/filepath"
	"time"

	"github.com/hsuanlin/overtime-tracker/internal/entity"
	"github.com/hsuanlin/overtime-tracker/internal/llm"
)

// Metadata describes the extraction call a session file originates from.
type Metadata struct {
	Timestamp  string   `json:"timestamp"`
	Model      string   `json:"model"`
	ImagePaths []string `json:"image_paths"`
	ImageCount int      `json:"image_count"`
}

// SessionRecord is the persisted output of one extraction session. The store
// owns the on-disk representation exclusively; TotalEntries is recomputed on
// every write so it always equals len(RecognitionResults).
type SessionRecord struct {
	Metadata           Metadata               `json:"metadata"`
	RecognitionResults []entity.OvertimeEntry `json:"recognition_results"`
	TotalEntries       int                    `json:"total_entries"`
	TokenUsage         llm.UsageMetrics       `json:"token_usage"`
	CostUSD            float64                `json:"cost_usd"`
}

// NewSessionRecord builds a record from one successful extraction.
func NewSessionRecord(res *llm.ExtractionResult, imagePaths []string, at time.Time) *SessionRecord {
	entries := res.Document.Entries
	if entries == nil {
		entries = []entity.OvertimeEntry{}
	}
	return &SessionRecord{
		Metadata: Metadata{
			Timestamp:  at.Format("2006-01-02 15:04:05"),
			Model:      res.Model,
			ImagePaths: imagePaths,
			ImageCount: len(imagePaths),
		},
		RecognitionResults: entries,
		TotalEntries:       len(entries),
		TokenUsage:         res.Usage,
		CostUSD:            res.CostUSD,
	}
}

// SessionFilePath derives a collision-free file name from the wall clock,
// e.g. <dir>/result_20251122_183045.json.
func SessionFilePath(outputDir string, at time.Time) string {
	return filepath.Join(outputDir, "result_"+at.Format("20060102_150405")+".json")
}
