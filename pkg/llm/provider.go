package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// DocumentRef points at a document previously registered with a provider so
// an invocation can attach it without re-uploading.
type DocumentRef struct {
	URI      string
	MimeType string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
	System      string
	Attachment  *DocumentRef
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithSystem(system string) Option {
	return func(o *Options) {
		o.System = system
	}
}

func WithAttachment(ref *DocumentRef) Option {
	return func(o *Options) {
		o.Attachment = ref
	}
}

// Provider defines the contract for any LLM backend
type Provider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// DocumentUploader is implemented by providers that can hold uploaded files
// server-side (e.g. the Gemini file API). Providers without the capability
// don't implement it and callers degrade to text-only prompts.
type DocumentUploader interface {
	UploadDocument(ctx context.Context, data []byte, mimeType string) (*DocumentRef, error)
}
