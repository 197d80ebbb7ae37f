package anthropic

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

const apiVersion = "2023-06-01"

func (c *Client) Provider() constants.Provider { return constants.ProviderAnthropic }

func (c *Client) Configured() bool { return common.HasKey(c.cfg.APIKey) }

// Invoke implements llm.Invoker over the messages API. Replies are always
// free text; the JSONObject flag is not supported by this provider and is
// ignored. A missing credential fails before any network I/O.
func (c *Client) Invoke(ctx context.Context, req llm.Request) (llm.RawResult, error) {
	if !c.Configured() {
		return llm.RawResult{}, common.NewError(common.ErrMissingCredential,
			"ANTHROPIC_API_KEY is not configured", nil)
	}

	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)
	}
	start := time.Now()

	c.logger.Info("anthropic.invoke.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"has_image", req.Image != nil,
		"user_len", len(req.User),
	)

	content := []map[string]any{
		{"type": "text", "text": req.User},
	}
	if req.Image != nil {
		content = append(content, map[string]any{
			"type": "image",
			"source": map[string]any{
				"type":       "base64",
				"media_type": req.Image.MediaType,
				"data":       req.Image.Base64,
			},
		})
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}

	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": maxTokens,
		"system":     req.System,
		"messages": []map[string]any{
			{"role": "user", "content": content},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/messages"
	headers := map[string]string{
		"x-api-key":         c.cfg.APIKey,
		"anthropic-version": apiVersion,
	}

	raw, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("anthropic.invoke.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.RawResult{}, err
	}

	var msg struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return llm.RawResult{}, common.NewError(common.ErrResponseFormat, "decode message", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = strings.TrimSpace(block.Text)
			break
		}
	}
	if text == "" {
		return llm.RawResult{}, common.NewError(common.ErrResponseFormat, "no text block in message", nil)
	}

	c.logger.Info("anthropic.invoke.ok",
		"req_id", rid,
		"chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.RawResult{
		Provider: constants.ProviderAnthropic,
		Model:    c.cfg.Model,
		Text:     text,
	}, nil
}
