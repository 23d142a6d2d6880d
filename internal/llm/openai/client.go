package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hsuanlin/overtime-tracker/internal/entity"
	"github.com/hsuanlin/overtime-tracker/internal/imaging"
	"github.com/hsuanlin/overtime-tracker/internal/llm"
	"github.com/hsuanlin/overtime-tracker/internal/pricing"
)

// RecognizeBatch implements llm.DocumentExtractor using chat/completions with
// image_url content parts and a strict json_schema response format. All images
// travel in a single request so the model can use cross-image context and the
// fixed request overhead is paid once.
func (c *Client) RecognizeBatch(ctx context.Context, images []imaging.EncodedImage) (*llm.ExtractionResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("vision.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"images", len(images),
	)

	content := []map[string]any{
		{"type": "text", "text": llm.RecognitionPrompt()},
	}
	for _, img := range images {
		content = append(content, map[string]any{
			"type": "image_url",
			"image_url": map[string]any{
				"url":    img.DataURL(),
				"detail": "high",
			},
		})
	}

	schema := llm.BuildOvertimeJSONSchema()
	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{"role": "user", "content": content},
		},
		"response_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "overtime_document",
				"strict": true,
				"schema": schema,
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("vision.extract.request_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("vision.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: decode response: %v", llm.ErrExtraction, err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("vision.extract.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: no choices in response", llm.ErrExtraction)
	}

	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.log.Error("vision.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(rawContent),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: %v", llm.ErrExtraction, err)
	}

	var doc entity.OvertimeDocument
	if err := json.Unmarshal(rawContent, &doc); err != nil {
		c.log.Error("vision.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: unmarshal document: %v", llm.ErrExtraction, err)
	}

	usage := llm.UsageMetrics{
		PromptTokens:     cc.Usage.PromptTokens,
		CompletionTokens: cc.Usage.CompletionTokens,
		TotalTokens:      cc.Usage.PromptTokens + cc.Usage.CompletionTokens,
	}
	cost := pricing.Estimate(usage.PromptTokens, usage.CompletionTokens,
		c.cfg.InputRatePerMillion, c.cfg.OutputRatePerMillion)

	c.log.Info("vision.extract.ok",
		"req_id", rid,
		"entries", len(doc.Entries),
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"cost_usd", cost,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return &llm.ExtractionResult{
		Document: doc,
		Usage:    usage,
		Model:    c.cfg.Model,
		CostUSD:  cost,
	}, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", llm.ErrExtraction, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", llm.ErrExtraction, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrConnection, err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("vision.response_body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: status %d: %s", llm.ErrAuthentication, resp.StatusCode, raw)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d: %s", llm.ErrRateLimited, resp.StatusCode, raw)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: status %d: %s", llm.ErrExtraction, resp.StatusCode, raw)
	}
	return raw, nil
}
