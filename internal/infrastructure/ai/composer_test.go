package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minutes-backend/internal/config"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("교수법 세미나", "플립러닝, 사례")

	assert.Contains(t, prompt, "주제: 교수법 세미나")
	assert.Contains(t, prompt, "키워드: 플립러닝, 사례")
	assert.Contains(t, prompt, "하이픈(-)")
	assert.Contains(t, prompt, "10줄 내외")
}

func TestPostProcess(t *testing.T) {
	assert.Equal(t, "- 핵심 논의 정리함",
		PostProcess("  - **핵심 논의** 정리함\n"))
}

func TestDraftWithoutCredentialReturnsPlaceholder(t *testing.T) {
	composer, err := NewComposer(context.Background(), config.AIConfig{
		Model:       "gemini-2.0-flash",
		Temperature: 0.3,
	})
	require.NoError(t, err)

	draft := composer.Draft(context.Background(), "교수법", "사례")

	assert.True(t, IsPlaceholder(draft))
	assert.Contains(t, draft, ErrorPrefix)
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder("AI 생성 오류: quota"))
	assert.False(t, IsPlaceholder("- 정상 초안임"))
}
