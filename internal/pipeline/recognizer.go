// Package pipeline coordinates encoding, batched recognition, and persistence
// for one extraction session.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/hsuanlin/overtime-tracker/internal/imaging"
	"github.com/hsuanlin/overtime-tracker/internal/llm"
	"github.com/hsuanlin/overtime-tracker/internal/session"
	"github.com/hsuanlin/overtime-tracker/internal/store"
)

// DefaultAllowedExtensions are the upload formats accepted for recognition.
var DefaultAllowedExtensions = []string{"png", "jpg", "jpeg"}

// Recognizer runs the extraction pipeline: encode all images, one batched
// recognition call, persist the result.
type Recognizer struct {
	log         *slog.Logger
	extractor   llm.DocumentExtractor
	store       *store.Store
	outputDir   string
	allowedExts []string
	now         func() time.Time
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithClock injects the wall clock used for timestamps and file names.
func WithClock(now func() time.Time) Option {
	return func(r *Recognizer) { r.now = now }
}

// WithAllowedExtensions overrides the accepted image formats.
func WithAllowedExtensions(exts []string) Option {
	return func(r *Recognizer) { r.allowedExts = exts }
}

func NewRecognizer(extractor llm.DocumentExtractor, st *store.Store, outputDir string, logger *slog.Logger, opts ...Option) *Recognizer {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recognizer{
		log:         logger,
		extractor:   extractor,
		store:       st,
		outputDir:   outputDir,
		allowedExts: DefaultAllowedExtensions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is the successful outcome of one pipeline run.
type Result struct {
	Record *store.SessionRecord
	Path   string
}

// Outcome is the single result-or-error handoff of an async run.
type Outcome struct {
	Result *Result
	Err    error
}

// ProcessImages encodes the given image files, performs one batched
// recognition call, and persists the session record under the output
// directory. Nothing is written when any stage fails.
func (r *Recognizer) ProcessImages(ctx context.Context, paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no image paths supplied")
	}

	start := r.now()
	r.log.Info("pipeline.start", "images", len(paths))

	images := make([]imaging.EncodedImage, 0, len(paths))
	for _, p := range paths {
		if err := r.checkExtension(p); err != nil {
			return nil, err
		}
		img, err := imaging.Encode(p)
		if err != nil {
			r.log.Error("pipeline.encode.failed", "path", p, "error", err)
			return nil, err
		}
		images = append(images, img)
	}

	res, err := r.extractor.RecognizeBatch(ctx, images)
	if err != nil {
		r.log.Error("pipeline.recognize.failed", "error", err)
		return nil, err
	}

	rec := store.NewSessionRecord(res, paths, start)
	path := store.SessionFilePath(r.outputDir, start)
	if err := r.store.Save(path, rec); err != nil {
		r.log.Error("pipeline.save.failed", "path", path, "error", err)
		return nil, err
	}

	r.log.Info("pipeline.ok",
		"path", path,
		"entries", rec.TotalEntries,
		"total_tokens", rec.TokenUsage.TotalTokens,
		"cost_usd", rec.CostUSD,
	)
	return &Result{Record: rec, Path: path}, nil
}

// ProcessAsync runs ProcessImages on a background goroutine so the blocking
// network call and file I/O stay off the interactive context. The returned
// channel carries exactly one Outcome; there are no partial results and an
// in-flight call cannot be cancelled, only awaited.
func (r *Recognizer) ProcessAsync(ctx context.Context, paths []string) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		res, err := r.ProcessImages(ctx, paths)
		out <- Outcome{Result: res, Err: err}
		close(out)
	}()
	return out
}

// OpenSession binds an edit session to a previously persisted result.
func (r *Recognizer) OpenSession(result *Result, opts ...session.Option) *session.EditSession {
	return session.New(r.store, result.Path, result.Record.RecognitionResults, r.log, opts...)
}

func (r *Recognizer) checkExtension(path string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, allowed := range r.allowedExts {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("unsupported image format %q (allowed: %s): %s",
		ext, strings.Join(r.allowedExts, ", "), path)
}
