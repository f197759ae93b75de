package genai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// preCallDelay spaces out upstream calls to stay under the provider's
// per-minute request limits. Fixed by design, not configurable per call.
const preCallDelay = time.Second

const maxOutputTokens = 1024

const defaultModel = anthropic.ModelClaude3_5Haiku20241022

// ClientConfig configures the Anthropic-backed generator.
type ClientConfig struct {
	// APIKey authenticates against the Anthropic API. Ignored when
	// UseAWSBedrock is set.
	APIKey string
	// Model overrides the default fast model.
	Model string
	// UseAWSBedrock routes requests through AWS Bedrock using the
	// ambient AWS credential chain instead of an API key.
	UseAWSBedrock bool
	AWSRegion     string
	AWSProfile    string
}

// Client calls the Anthropic Messages API and parses the response into
// task titles. It holds no state beyond the SDK client.
type Client struct {
	inner anthropic.Client
	model anthropic.Model
}

func NewClient(cfg ClientConfig) (*Client, error) {
	var opts []option.RequestOption

	if cfg.UseAWSBedrock {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.AWSRegion != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.AWSRegion))
		}
		if cfg.AWSProfile != "" {
			loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.AWSProfile))
		}
		opts = append(opts, bedrock.WithLoadDefaultConfig(context.Background(), loadOpts...))
	} else {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key is not configured")
		}
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	return &Client{
		inner: anthropic.NewClient(opts...),
		model: model,
	}, nil
}

// GenerateTasks issues one Messages request for the topic and returns
// between 1 and 5 parsed task titles.
func (c *Client) GenerateTasks(ctx context.Context, topic string) ([]string, error) {
	select {
	case <-time.After(preCallDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	resp, err := c.inner.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxOutputTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(topic))),
		},
	})
	if err != nil {
		return nil, classifyAPIError(err)
	}

	if resp.StopReason == anthropic.StopReasonRefusal {
		return nil, &Error{Kind: KindContentFiltered, Message: "content blocked by safety filters, try a different topic"}
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(tb.Text)
		}
	}

	titles := ParseTaskLines(text.String())
	if len(titles) == 0 {
		return nil, &Error{Kind: KindEmptyResult, Message: "model produced no usable tasks, please try again"}
	}

	return titles, nil
}
