package gemini

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meme-localizer/pkg/types"
)

const candidateJSON = `{"candidates":[{"content":{"role":"model","parts":[{"text":%q}]}}]}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewGeminiClient(context.Background(), types.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/",
	})
	require.NoError(t, err)
	return client
}

func TestCompleteReturnsText(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, candidateJSON, "## Direct Translation\nOrder now")
	})

	text, err := client.Complete(context.Background(), []types.Part{types.TextPart("prompt")})
	require.NoError(t, err)
	assert.Equal(t, "## Direct Translation\nOrder now", text)
	assert.True(t, strings.HasSuffix(gotPath, types.DefaultGeminiModel+":generateContent"), gotPath)
}

func TestCompleteEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[]}`)
	})

	_, err := client.Complete(context.Background(), []types.Part{types.TextPart("prompt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestCompleteWrapsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	})

	_, err := client.Complete(context.Background(), []types.Part{types.TextPart("prompt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate content")
}

func TestCompleteBadInlineDataSkipsRequest(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := client.Complete(context.Background(), []types.Part{types.InlineDataPart("image/png", "%%%")})
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestStreamCompletionForwardsChunks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range []string{"## Direct", "", " Translation"} {
			fmt.Fprintf(w, "data: "+candidateJSON+"\n\n", chunk)
		}
	})

	var got []string
	err := client.StreamCompletion(context.Background(), []types.Part{types.TextPart("prompt")}, func(chunk string) error {
		got = append(got, chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"## Direct", " Translation"}, got)
}

func TestStreamCompletionWrapsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"bad request","status":"INVALID_ARGUMENT"}}`)
	})

	err := client.StreamCompletion(context.Background(), []types.Part{types.TextPart("prompt")}, func(string) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream content")
}
