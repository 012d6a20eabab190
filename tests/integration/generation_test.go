//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTweetFlow(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "tweet-flow@example.com", "password123")
	token := LoginUser(t, env, "tweet-flow@example.com", "password123")

	env.Completer.Set("a hot take about testing", nil)

	resp := DoRequest(t, env, "POST", "/api/v1/generate/tweet",
		map[string]string{"prompt": "why integration tests matter", "tone": "casual"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := ParseResponse(t, resp)
	data := result["data"].(map[string]any)
	assert.Equal(t, "a hot take about testing", data["tweet"])
	assert.Equal(t, float64(FreeDailyLimit-1), data["remaining"])

	// The generation shows up in history.
	histResp := DoRequest(t, env, "GET", "/api/v1/history", nil, token)
	require.Equal(t, http.StatusOK, histResp.StatusCode)
	hist := ParseResponse(t, histResp)
	items := hist["data"].([]any)
	require.Len(t, items, 1)
	first := items[0].(map[string]any)
	assert.Equal(t, "tweet", first["type"])
	assert.Equal(t, "why integration tests matter", first["prompt"])
}

func TestGenerateThreadFlow(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "thread-flow@example.com", "password123")
	token := LoginUser(t, env, "thread-flow@example.com", "password123")

	env.Completer.Set("hook tweet\n\nmiddle tweet\n\nclosing tweet", nil)

	resp := DoRequest(t, env, "POST", "/api/v1/generate/thread",
		map[string]any{"prompt": "startup lessons", "length": 3}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := ParseResponse(t, resp)
	data := result["data"].(map[string]any)
	tweets := data["tweets"].([]any)
	require.Len(t, tweets, 3)
	firstTweet := tweets[0].(map[string]any)
	assert.Equal(t, float64(0), firstTweet["index"])
	assert.Equal(t, "hook tweet", firstTweet["text"])
}

func TestGenerateThreadWrongSegmentCount(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "thread-bad@example.com", "password123")
	token := LoginUser(t, env, "thread-bad@example.com", "password123")

	env.Completer.Set("only one paragraph", nil)

	resp := DoRequest(t, env, "POST", "/api/v1/generate/thread",
		map[string]any{"prompt": "topic", "length": 5}, token)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()

	// A discarded thread is not charged.
	usageResp := DoRequest(t, env, "GET", "/api/v1/usage", nil, token)
	usage := ParseResponse(t, usageResp)
	data := usage["data"].(map[string]any)
	assert.Equal(t, float64(FreeDailyLimit), data["remaining"])
}

func TestGenerateBioRequiresWritingStyle(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "bio-gate@example.com", "password123")
	token := LoginUser(t, env, "bio-gate@example.com", "password123")

	resp := DoRequest(t, env, "POST", "/api/v1/generate/bio",
		map[string]string{"keywords": "golang, coffee"}, token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateBioFlow(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "bio-flow@example.com", "password123")
	token := LoginUser(t, env, "bio-flow@example.com", "password123")
	SetWritingStyle(t, env, token, "short punchy sentences")

	env.Completer.Set("builds things, writes about breaking them", nil)

	resp := DoRequest(t, env, "POST", "/api/v1/generate/bio",
		map[string]string{"keywords": "golang, coffee", "tone": "humorous"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := ParseResponse(t, resp)
	data := result["data"].(map[string]any)
	assert.Equal(t, "builds things, writes about breaking them", data["bio"])
}

func TestGenerateIdeasFlow(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "ideas-flow@example.com", "password123")
	token := LoginUser(t, env, "ideas-flow@example.com", "password123")
	SetWritingStyle(t, env, token, "direct and practical")

	env.Completer.Set("idea one\n\nidea two\n\nidea three", nil)

	resp := DoRequest(t, env, "POST", "/api/v1/generate/ideas",
		map[string]string{"niche": "tech", "topics": "Go, databases"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := ParseResponse(t, resp)
	data := result["data"].(map[string]any)
	ideas := data["ideas"].([]any)
	require.Len(t, ideas, 3)

	var ideaID string
	first := ideas[0].(map[string]any)
	assert.Equal(t, "new", first["status"])
	ideaID = first["id"].(string)

	// The niche is remembered on the profile.
	profResp := DoRequest(t, env, "GET", "/api/v1/profile", nil, token)
	prof := ParseResponse(t, profResp)
	profData := prof["data"].(map[string]any)
	assert.Equal(t, "tech", profData["niche"])

	t.Run("mark idea used", func(t *testing.T) {
		resp := DoRequest(t, env, "PATCH", "/api/v1/ideas/"+ideaID,
			map[string]string{"status": "used"}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		result := ParseResponse(t, resp)
		data := result["data"].(map[string]any)
		assert.Equal(t, "used", data["status"])
	})

	t.Run("other user cannot touch idea", func(t *testing.T) {
		RegisterUser(t, env, "ideas-other@example.com", "password123")
		otherToken := LoginUser(t, env, "ideas-other@example.com", "password123")

		resp := DoRequest(t, env, "PATCH", "/api/v1/ideas/"+ideaID,
			map[string]string{"status": "archived"}, otherToken)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGenerateIdeasUnknownNiche(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "ideas-niche@example.com", "password123")
	token := LoginUser(t, env, "ideas-niche@example.com", "password123")
	SetWritingStyle(t, env, token, "style")

	resp := DoRequest(t, env, "POST", "/api/v1/generate/ideas",
		map[string]string{"niche": "no-such-niche"}, token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistoryIsolatedBetweenUsers(t *testing.T) {
	env := SetupTestEnv(t)

	RegisterUser(t, env, "hist-a@example.com", "password123")
	tokenA := LoginUser(t, env, "hist-a@example.com", "password123")
	RegisterUser(t, env, "hist-b@example.com", "password123")
	tokenB := LoginUser(t, env, "hist-b@example.com", "password123")

	env.Completer.Set("content for a", nil)
	resp := DoRequest(t, env, "POST", "/api/v1/generate/tweet",
		map[string]string{"prompt": "user a prompt"}, tokenA)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	histResp := DoRequest(t, env, "GET", "/api/v1/history", nil, tokenB)
	hist := ParseResponse(t, histResp)
	items, _ := hist["data"].([]any)
	assert.Empty(t, items)
}

func TestPresetsArePublic(t *testing.T) {
	env := SetupTestEnv(t)

	for _, path := range []string{"/api/v1/presets/tones", "/api/v1/presets/niches"} {
		resp := DoRequest(t, env, "GET", path, nil, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, fmt.Sprintf("GET %s", path))
		resp.Body.Close()
	}
}
