package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"minutes-backend/internal/config"
)

// ErrorPrefix marks a draft result that is a placeholder rather than
// generated content. The save path stays fully usable either way: the
// user can overwrite the placeholder with manually typed content.
const ErrorPrefix = "AI 생성 오류"

const systemInstruction = "너는 대학 행정 회의록 전문 서기야."

// Composer drafts narrative meeting minutes from a topic and free-text
// keywords through a single generative call.
type Composer struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewComposer creates the draft composer. A missing API key is not an
// error: Draft degrades to a placeholder string.
func NewComposer(ctx context.Context, cfg config.AIConfig) (*Composer, error) {
	c := &Composer{
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}

	if cfg.APIKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	c.client = client

	return c, nil
}

// BuildPrompt assembles the fixed drafting prompt. The constraints
// mirror the working group's house style: hyphen bullets, nominal
// clause endings, no date/place/attendee lines, about ten lines.
func BuildPrompt(topic, keywords string) string {
	return fmt.Sprintf(`작성 요청: 아래 주제와 키워드를 바탕으로 핵심 회의 내용을 정리해줘.
[입력 데이터] 주제: %s, 키워드: %s
[제약사항] 번호 없이 하이픈(-) 사용. '~함', '~음' 등 명사형 개조식. 일시/장소/참석자 제외. 10줄 내외.`, topic, keywords)
}

// Draft returns drafted minutes text, or an inline placeholder string
// starting with ErrorPrefix. It never returns an error to the caller:
// drafting failures must not block manual entry.
func (c *Composer) Draft(ctx context.Context, topic, keywords string) string {
	if c.client == nil {
		return fmt.Sprintf("%s: API Key 설정 필요", ErrorPrefix)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(BuildPrompt(topic, keywords), genai.RoleUser),
	}

	temperature := c.temperature
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature: &temperature,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	})
	if err != nil {
		return fmt.Sprintf("%s: %v", ErrorPrefix, err)
	}

	text := result.Text()
	if text == "" {
		return fmt.Sprintf("%s: 응답이 비어 있습니다", ErrorPrefix)
	}

	return PostProcess(text)
}

// PostProcess strips bold markup and surrounding whitespace from the
// generated text.
func PostProcess(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "**", ""))
}

// IsPlaceholder reports whether a draft result is an inline error
// string rather than generated content.
func IsPlaceholder(text string) bool {
	return strings.HasPrefix(text, ErrorPrefix)
}
