package localizer_openai

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

const responseJSON = `{"id":"resp_1","object":"response","created_at":0,"model":"gpt-4o-mini","status":"completed",` +
	`"output":[{"type":"message","id":"msg_1","role":"assistant","status":"completed",` +
	`"content":[{"type":"output_text","text":%q,"annotations":[]}]}]}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewOpenAIClient(types.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: srv.URL + "/",
	})
}

func TestCompleteReturnsOutputText(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, responseJSON, "## Direct Translation\nOrder now")
	})

	text, err := client.Complete(context.Background(), []types.Part{types.TextPart("prompt")})
	require.NoError(t, err)
	assert.Equal(t, "## Direct Translation\nOrder now", text)
	assert.True(t, strings.HasSuffix(gotPath, "/responses"), gotPath)
}

func TestCompleteEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"resp_1","object":"response","status":"completed","output":[]}`)
	})

	_, err := client.Complete(context.Background(), []types.Part{types.TextPart("prompt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestCompleteWrapsAPIErrorWithoutRetry(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"server exploded","type":"server_error"}}`)
	})

	_, err := client.Complete(context.Background(), []types.Part{types.TextPart("prompt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do request")
	assert.Equal(t, 1, calls)
}

func writeEvent(w http.ResponseWriter, eventType, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, data)
}

func TestStreamCompletionForwardsOnlyFinishedText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		writeEvent(w, "response.output_text.delta",
			`{"type":"response.output_text.delta","item_id":"msg_1","output_index":0,"content_index":0,"delta":"## Direct","sequence_number":1}`)
		writeEvent(w, "response.output_text.delta",
			`{"type":"response.output_text.delta","item_id":"msg_1","output_index":0,"content_index":0,"delta":" Translation","sequence_number":2}`)
		writeEvent(w, "response.output_text.done",
			`{"type":"response.output_text.done","item_id":"msg_1","output_index":0,"content_index":0,"text":"## Direct Translation","sequence_number":3}`)
	})

	var got []string
	err := client.StreamCompletion(context.Background(), []types.Part{types.TextPart("prompt")}, func(chunk string) error {
		got = append(got, chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"## Direct Translation"}, got)
}

func TestStreamCompletionWrapsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"bad input","type":"invalid_request_error"}}`)
	})

	err := client.StreamCompletion(context.Background(), []types.Part{types.TextPart("prompt")}, func(string) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream response")
}
