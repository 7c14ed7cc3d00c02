package rewrite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/softpen/tonerelay/internal/apperrors"
)

func TestNewOpenAIRewriter_MissingKeyIsConfigError(t *testing.T) {
	_, err := NewOpenAIRewriter("")
	if apperrors.KindOf(err) != apperrors.KindConfig {
		t.Fatalf("expected config error for missing key, got %v", err)
	}
	_, err = NewOpenAIRewriter("   ")
	if apperrors.KindOf(err) != apperrors.KindConfig {
		t.Fatalf("expected config error for blank key, got %v", err)
	}
}

func newTestRewriter(t *testing.T, handler http.HandlerFunc) *OpenAIRewriter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	r, err := NewOpenAIRewriter("sk-test",
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	if err != nil {
		t.Fatalf("new rewriter: %v", err)
	}
	return r
}

func TestRewrite_ExtractsFirstChoice(t *testing.T) {
	r := newTestRewriter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "Good afternoon, team."},
				"finish_reason": "stop"
			}]
		}`))
	})

	got, err := r.Rewrite(context.Background(), "instruction", "hey team")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Good afternoon, team." {
		t.Fatalf("unexpected rewrite: %q", got)
	}
}

func TestRewrite_EmptyCompletionIsUpstreamError(t *testing.T) {
	r := newTestRewriter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-2",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "   "},
				"finish_reason": "stop"
			}]
		}`))
	})

	_, err := r.Rewrite(context.Background(), "instruction", "hey team")
	if apperrors.KindOf(err) != apperrors.KindUpstream {
		t.Fatalf("expected upstream error for empty completion, got %v", err)
	}
}

func TestRewrite_ProviderFailureIsUpstreamError(t *testing.T) {
	r := newTestRewriter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "internal provider detail", "type": "server_error"}}`))
	})

	_, err := r.Rewrite(context.Background(), "instruction", "hey team")
	if apperrors.KindOf(err) != apperrors.KindUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
	// The classified message shown to clients must stay generic.
	if got := apperrors.PublicMessage(err); got != "External API error" {
		t.Fatalf("expected generic public message, got %q", got)
	}
}
