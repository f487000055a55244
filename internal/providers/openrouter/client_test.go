package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/teron131/Visual-Prompting/internal/domain"
)

const imageArgs = `{"subject":"a vintage red bicycle with a wicker basket","scene_description":"leaning against a weathered brick wall at dawn","photography_type":"street","aspect_ratio":"3:2"}`

const videoArgs = `{"subject":"a paper boat","context":"drifting down a rain-filled gutter","action":"floats past fallen autumn leaves","style":"macro documentary style","camera_movement":"tracking"}`

func toolCallBody(toolName, args string) string {
	payload := map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{{
			"index": 0,
			"message": map[string]any{
				"role": "assistant",
				"tool_calls": []map[string]any{{
					"id":   "call-1",
					"type": "function",
					"function": map[string]any{
						"name":      toolName,
						"arguments": args,
					},
				}},
			},
			"finish_reason": "tool_calls",
		}},
	}
	b, _ := json.Marshal(payload)
	return string(b)
}

func contentBody(content string) string {
	payload := map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	}
	b, _ := json.Marshal(payload)
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	client, err := NewClient(Options{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()
	if _, err := NewClient(Options{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()
	client, err := NewClient(Options{APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if client.Model() != DefaultModel {
		t.Fatalf("model = %q, want %q", client.Model(), DefaultModel)
	}
}

func TestGenerateBatchCount(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, toolCallBody(imageToolName, imageArgs))
	})

	for _, count := range []int{1, 2, 3, 4} {
		calls.Store(0)
		prompts, err := client.Generate(context.Background(), GenerateRequest{
			Mode:     domain.ModeImage,
			UserText: "A red bicycle",
			Count:    count,
		})
		if err != nil {
			t.Fatalf("Generate(count=%d) returned error: %v", count, err)
		}
		if len(prompts) != count {
			t.Fatalf("got %d prompts, want %d", len(prompts), count)
		}
		if got := calls.Load(); got != int64(count) {
			t.Fatalf("upstream called %d times, want %d", got, count)
		}
		for _, p := range prompts {
			if !strings.Contains(p, "a vintage red bicycle") {
				t.Fatalf("prompt missing subject: %q", p)
			}
		}
	}
}

func TestGenerateVideoPrompt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, toolCallBody(videoToolName, videoArgs))
	})

	prompts, err := client.Generate(context.Background(), GenerateRequest{
		Mode:     domain.ModeVideo,
		UserText: "A paper boat in the rain",
		Count:    1,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(prompts) != 1 {
		t.Fatalf("got %d prompts, want 1", len(prompts))
	}
	if !strings.Contains(prompts[0], "tracking camera movement") {
		t.Fatalf("rendered prompt missing camera movement: %q", prompts[0])
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), GenerateRequest{Mode: domain.ModeImage, UserText: "x", Count: 2})
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("err = %v, want ErrProviderFailure", err)
	}
}

func TestGenerateContentFallback(t *testing.T) {
	fenced := "```json\n" + imageArgs + "\n```"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, contentBody(fenced))
	})

	prompts, err := client.Generate(context.Background(), GenerateRequest{Mode: domain.ModeImage, UserText: "x", Count: 1})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.Contains(prompts[0], "street photography") {
		t.Fatalf("fallback parse lost fields: %q", prompts[0])
	}
}

func TestGenerateRejectsInvalidStructuredPrompt(t *testing.T) {
	badArgs := `{"subject":"a vintage red bicycle","scene_description":"against a brick wall at dawn","lens_type":"anamorphic"}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, toolCallBody(imageToolName, badArgs))
	})

	_, err := client.Generate(context.Background(), GenerateRequest{Mode: domain.ModeImage, UserText: "x", Count: 1})
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("err = %v, want ErrProviderFailure", err)
	}
}

func TestGenerateRejectsInvalidMode(t *testing.T) {
	t.Parallel()
	client, err := NewClient(Options{APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := client.Generate(context.Background(), GenerateRequest{Mode: "audio", Count: 1}); !errors.Is(err, domain.ErrInvalidMode) {
		t.Fatalf("err = %v, want ErrInvalidMode", err)
	}
}

func TestGenerateInlinesReferenceImage(t *testing.T) {
	pngHeader := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	var body atomic.Value
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body.Store(string(raw))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, toolCallBody(imageToolName, imageArgs))
	})

	if _, err := client.Generate(context.Background(), GenerateRequest{
		Mode:     domain.ModeImage,
		UserText: "Describe this product",
		Image:    pngHeader,
		Count:    1,
	}); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	raw, _ := body.Load().(string)
	if !strings.Contains(raw, "data:image/png;base64,") {
		t.Fatalf("request body missing inlined image: %s", raw)
	}
	if !strings.Contains(raw, "Describe this product") {
		t.Fatal("request body missing user text")
	}
	if !strings.Contains(raw, fmt.Sprintf("%q", imageToolName)) {
		t.Fatal("request body missing forced tool name")
	}
}
