package openai

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quotecraft/rfq-analyzer/constants"
	"github.com/quotecraft/rfq-analyzer/internal/common"
	"github.com/quotecraft/rfq-analyzer/internal/llm"
)

func (c *Client) Provider() constants.Provider { return constants.ProviderOpenAI }

func (c *Client) Configured() bool { return common.HasKey(c.cfg.APIKey) }

// Invoke implements llm.Invoker over chat/completions. A JSONObject request
// sets response_format json_object; an attached image becomes a content-part
// payload with an inline data URL.
func (c *Client) Invoke(ctx context.Context, req llm.Request) (llm.RawResult, error) {
	if !c.Configured() {
		return llm.RawResult{}, common.NewError(common.ErrMissingCredential,
			"OPENAI_API_KEY is not configured", nil)
	}

	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)
	}
	start := time.Now()

	c.logger.Info("openai.invoke.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"json_object", req.JSONObject,
		"has_image", req.Image != nil,
		"user_len", len(req.User),
	)

	var userContent any = req.User
	if req.Image != nil {
		userContent = []map[string]any{
			{"type": "text", "text": req.User},
			{"type": "image_url", "image_url": map[string]any{
				"url": "data:" + req.Image.MediaType + ";base64," + req.Image.Base64,
			}},
		}
	}

	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{"role": "system", "content": req.System},
			{"role": "user", "content": userContent},
		},
	}
	if req.JSONObject {
		body["response_format"] = map[string]any{"type": "json_object"}
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("openai.invoke.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawResult{}, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return llm.RawResult{}, common.NewError(common.ErrResponseFormat, "decode chat completion", err)
	}
	if len(cc.Choices) == 0 {
		return llm.RawResult{}, common.NewError(common.ErrResponseFormat, "no choices in completion", nil)
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	if content == "" {
		return llm.RawResult{}, common.NewError(common.ErrResponseFormat, "empty completion", nil)
	}
	if req.JSONObject && !json.Valid([]byte(content)) {
		return llm.RawResult{}, common.NewError(common.ErrResponseFormat,
			"completion is not valid JSON", nil)
	}

	c.logger.Info("openai.invoke.ok",
		"req_id", rid,
		"chars", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.RawResult{
		Provider: constants.ProviderOpenAI,
		Model:    c.cfg.Model,
		Text:     content,
	}, nil
}
