package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"viralpost-be/internal/dto"
	"viralpost-be/internal/entity"
	"viralpost-be/internal/pkg/serverutils"
	"viralpost-be/internal/repository/contract"
	"viralpost-be/internal/repository/specification"
	"viralpost-be/internal/repository/unitofwork"
	"viralpost-be/pkg/extract"
	"viralpost-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Test doubles ----

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakeProvider routes each call through a caller-supplied function that sees
// the resolved options (system prompt, attachment).
type fakeProvider struct {
	generate func(prompt string, opts llm.Options) (string, error)
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	last := ""
	if len(history) > 0 {
		last = history[len(history)-1].Content
	}
	return p.Generate(ctx, last, options...)
}

func (p *fakeProvider) Generate(_ context.Context, prompt string, options ...llm.Option) (string, error) {
	var opts llm.Options
	for _, o := range options {
		o(&opts)
	}
	return p.generate(prompt, opts)
}

type fakeGenerationRepo struct {
	created      []*entity.Generation
	findAllSpecs []specification.Specification
	findAllOut   []*entity.Generation
}

func (r *fakeGenerationRepo) Create(_ context.Context, g *entity.Generation) error {
	r.created = append(r.created, g)
	return nil
}

func (r *fakeGenerationRepo) FindOne(context.Context, ...specification.Specification) (*entity.Generation, error) {
	return nil, nil
}

func (r *fakeGenerationRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Generation, error) {
	r.findAllSpecs = specs
	return r.findAllOut, nil
}

type fakePostRepo struct {
	created  []*entity.GeneratedPost
	failWhen func(*entity.GeneratedPost) bool
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.GeneratedPost) error {
	if r.failWhen != nil && r.failWhen(p) {
		return errors.New("insert failed")
	}
	r.created = append(r.created, p)
	return nil
}

func (r *fakePostRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.GeneratedPost, error) {
	return nil, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (fakeUserRepo) FindOne(context.Context, ...specification.Specification) (*entity.User, error) {
	return nil, nil
}

type fakeUow struct {
	users       contract.UserRepository
	generations *fakeGenerationRepo
	posts       *fakePostRepo
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }
func (u *fakeUow) UserRepository() contract.UserRepository {
	if u.users == nil {
		return fakeUserRepo{}
	}
	return u.users
}
func (u *fakeUow) GenerationRepository() contract.GenerationRepository {
	return u.generations
}
func (u *fakeUow) GeneratedPostRepository() contract.GeneratedPostRepository {
	return u.posts
}

type fakeFactory struct{ uow *fakeUow }

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func newTestService(provider llm.Provider) (IGenerationService, *fakeUow) {
	uow := &fakeUow{
		generations: &fakeGenerationRepo{},
		posts:       &fakePostRepo{},
	}
	svc := NewGenerationService(
		&fakeFactory{uow: uow},
		provider,
		extract.NewExtractor(),
		nil,
		nopLogger{},
		5*time.Second,
	)
	return svc, uow
}

// modelResponse builds a well-formed three-post answer for the platform/tone
// the system prompt asked for.
func modelResponse(platform, tone string) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 1; i <= 3; i++ {
		if i > 1 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf(
			`{"content":"Model post %d for %s","platform":%q,"tone":%q,"hashtags":["Viral","Growth"]}`,
			i, platform, platform, tone,
		))
	}
	sb.WriteString("]")
	return sb.String()
}

// platformFromSystem recovers which platform a call targets from its prompt.
func platformFromSystem(system string) string {
	for _, p := range []string{"twitter", "linkedin", "reddit"} {
		if strings.Contains(system, fmt.Sprintf("%q platform", p)) {
			return p
		}
	}
	return ""
}

// ---- Tests ----

func TestGenerateValidationErrors(t *testing.T) {
	svc, _ := newTestService(&fakeProvider{
		generate: func(string, llm.Options) (string, error) { return "[]", nil },
	})
	userId := uuid.New()

	tests := []struct {
		name string
		req  *dto.GenerateRequest
	}{
		{
			name: "no content and no attachment",
			req: &dto.GenerateRequest{
				Platforms: []string{"twitter"},
				Tones:     map[string]string{"twitter": "casual"},
			},
		},
		{
			name: "empty platform list",
			req: &dto.GenerateRequest{
				Content: "something",
				Tones:   map[string]string{},
			},
		},
		{
			name: "unknown platform",
			req: &dto.GenerateRequest{
				Content:   "something",
				Platforms: []string{"myspace"},
				Tones:     map[string]string{"myspace": "casual"},
			},
		},
		{
			name: "missing tone for platform",
			req: &dto.GenerateRequest{
				Content:   "something",
				Platforms: []string{"twitter"},
				Tones:     map[string]string{},
			},
		},
		{
			name: "unknown tone",
			req: &dto.GenerateRequest{
				Content:   "something",
				Platforms: []string{"twitter"},
				Tones:     map[string]string{"twitter": "sarcastic"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), userId, tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, serverutils.ErrInvalidRequest), "want ErrInvalidRequest, got %v", err)
		})
	}
}

func TestGenerateTwoPlatformsHappyPath(t *testing.T) {
	provider := &fakeProvider{
		generate: func(_ string, opts llm.Options) (string, error) {
			p := platformFromSystem(opts.System)
			tone := "casual"
			if p == "linkedin" {
				tone = "professional"
			}
			return modelResponse(p, tone), nil
		},
	}
	svc, uow := newTestService(provider)
	userId := uuid.New()

	resp, err := svc.Generate(context.Background(), userId, &dto.GenerateRequest{
		Content:   "How we scaled our API to 1M requests per day",
		Platforms: []string{"twitter", "linkedin"},
		Tones:     map[string]string{"twitter": "casual", "linkedin": "professional"},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Posts, 6)

	require.Len(t, uow.generations.created, 1)
	gen := uow.generations.created[0]
	assert.Equal(t, userId, gen.UserId)
	assert.Equal(t, "text", gen.ContentType)
	assert.Equal(t, []string{"twitter", "linkedin"}, gen.Platforms)

	byPlatform := map[string]int{}
	for _, post := range resp.Posts {
		byPlatform[post.Platform]++
		assert.Equal(t, gen.Id, post.GenerationId)
		assert.NotEmpty(t, post.Content)
		assert.NotContains(t, post.Content, "#", "body must not carry inline hashtags")
		assert.NotEmpty(t, post.Hashtags)
	}
	assert.Equal(t, 3, byPlatform["twitter"])
	assert.Equal(t, 3, byPlatform["linkedin"])
}

func TestGenerateOnePlatformFailureIsIsolated(t *testing.T) {
	provider := &fakeProvider{
		generate: func(_ string, opts llm.Options) (string, error) {
			if platformFromSystem(opts.System) == "twitter" {
				return "", errors.New("model unavailable")
			}
			return modelResponse("linkedin", "professional"), nil
		},
	}
	svc, _ := newTestService(provider)

	resp, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateRequest{
		Content:   "Resilience testing in production",
		Platforms: []string{"twitter", "linkedin"},
		Tones:     map[string]string{"twitter": "casual", "linkedin": "professional"},
	})
	require.NoError(t, err)

	// The failed platform is covered by deterministic fallback posts; the
	// healthy one still returns model output.
	assert.Len(t, resp.Posts, 6)

	var twitterPosts, linkedinPosts []dto.GeneratedPostResponse
	for _, post := range resp.Posts {
		switch post.Platform {
		case "twitter":
			twitterPosts = append(twitterPosts, post)
		case "linkedin":
			linkedinPosts = append(linkedinPosts, post)
		}
	}

	require.Len(t, twitterPosts, 3)
	require.Len(t, linkedinPosts, 3)

	assert.Contains(t, twitterPosts[0].Content, "Check this out!")
	assert.Contains(t, linkedinPosts[0].Content, "Model post 1 for linkedin")
}

func TestGenerateProviderPanicIsIsolated(t *testing.T) {
	provider := &fakeProvider{
		generate: func(_ string, opts llm.Options) (string, error) {
			panic("provider bug")
		},
	}
	svc, _ := newTestService(provider)

	resp, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateRequest{
		Content:   "Panic recovery",
		Platforms: []string{"reddit"},
		Tones:     map[string]string{"reddit": "educational"},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Posts, 3)
	for _, post := range resp.Posts {
		assert.Equal(t, "reddit", post.Platform)
		assert.Equal(t, "educational", post.Tone)
		assert.NotEmpty(t, post.Content)
	}
}

func TestGenerateCapsPostsPerPlatform(t *testing.T) {
	provider := &fakeProvider{
		generate: func(string, llm.Options) (string, error) {
			// Five valid posts; only the first three may survive.
			var parts []string
			for i := 1; i <= 5; i++ {
				parts = append(parts, fmt.Sprintf(`{"content":"Post %d","hashtags":["T"]}`, i))
			}
			return "[" + strings.Join(parts, ",") + "]", nil
		},
	}
	svc, _ := newTestService(provider)

	resp, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateRequest{
		Content:   "content",
		Platforms: []string{"twitter"},
		Tones:     map[string]string{"twitter": "casual"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 3)
	assert.Equal(t, "Post 1", resp.Posts[0].Content)
	assert.Equal(t, "Post 3", resp.Posts[2].Content)
}

func TestGenerateDuplicatePlatformsCollapse(t *testing.T) {
	provider := &fakeProvider{
		generate: func(string, llm.Options) (string, error) {
			return modelResponse("twitter", "casual"), nil
		},
	}
	svc, _ := newTestService(provider)

	resp, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateRequest{
		Content:   "content",
		Platforms: []string{"twitter", "Twitter", "TWITTER"},
		Tones:     map[string]string{"twitter": "casual", "Twitter": "casual", "TWITTER": "casual"},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Posts, 3)
}

func TestGenerateSanitizesModelOutput(t *testing.T) {
	provider := &fakeProvider{
		generate: func(string, llm.Options) (string, error) {
			return `[{"content":"Great tip #AI #productivity","hashtags":["AI","Tech"]}]`, nil
		},
	}
	svc, _ := newTestService(provider)

	resp, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateRequest{
		Content:   "content",
		Platforms: []string{"twitter"},
		Tones:     map[string]string{"twitter": "casual"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)

	post := resp.Posts[0]
	assert.Equal(t, "Great tip", post.Content)
	assert.Equal(t, []string{"Ai", "Productivity", "Tech"}, post.Hashtags)
	assert.Equal(t, 9, post.CharacterCount)
}

func TestGenerateFromAttachment(t *testing.T) {
	var seenPrompt string
	provider := &fakeProvider{
		generate: func(prompt string, _ llm.Options) (string, error) {
			seenPrompt = prompt
			return modelResponse("twitter", "casual"), nil
		},
	}
	svc, uow := newTestService(provider)

	resp, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateRequest{
		Platforms: []string{"twitter"},
		Tones:     map[string]string{"twitter": "casual"},
		Attachment: &dto.AttachmentPayload{
			FileName: "notes.txt",
			MimeType: "text/plain",
			FileType: "txt",
			Data:     []byte("  Document body used as source  "),
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Posts, 3)

	assert.Equal(t, "Document body used as source", seenPrompt)

	require.Len(t, uow.generations.created, 1)
	gen := uow.generations.created[0]
	assert.Equal(t, "txt", gen.ContentType)
	require.NotNil(t, gen.FileName)
	assert.Equal(t, "notes.txt", *gen.FileName)
}

func TestGeneratePersistFailureDropsOnlyThatPost(t *testing.T) {
	provider := &fakeProvider{
		generate: func(string, llm.Options) (string, error) {
			return modelResponse("twitter", "casual"), nil
		},
	}
	svc, uow := newTestService(provider)
	uow.posts.failWhen = func(p *entity.GeneratedPost) bool {
		return strings.Contains(p.Content, "Model post 2")
	}

	resp, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateRequest{
		Content:   "content",
		Platforms: []string{"twitter"},
		Tones:     map[string]string{"twitter": "casual"},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Posts, 2)
	for _, post := range resp.Posts {
		assert.NotContains(t, post.Content, "Model post 2")
	}
}

func TestHistory(t *testing.T) {
	svc, uow := newTestService(&fakeProvider{
		generate: func(string, llm.Options) (string, error) { return "[]", nil },
	})

	userId := uuid.New()
	genId := uuid.New()
	fileName := "report.pdf"
	uow.generations.findAllOut = []*entity.Generation{
		{
			Id:              genId,
			UserId:          userId,
			OriginalContent: "source",
			ContentType:     "pdf",
			FileName:        &fileName,
			Platforms:       []string{"reddit"},
			CreatedAt:       time.Now(),
			Posts: []*entity.GeneratedPost{
				{
					Id:             uuid.New(),
					GenerationId:   genId,
					Platform:       "reddit",
					Tone:           "educational",
					Content:        "body",
					Hashtags:       nil, // legacy rows may have no tags
					CharacterCount: 4,
				},
			},
		},
	}

	items, err := svc.History(context.Background(), userId, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, genId, item.Id)
	require.Len(t, item.GeneratedPosts, 1)
	assert.NotNil(t, item.GeneratedPosts[0].Hashtags, "hashtags must serialize as [] not null")

	// limit 0 is clamped to the 50-row cap.
	var limitSpec *specification.Limit
	for _, s := range uow.generations.findAllSpecs {
		if l, ok := s.(specification.Limit); ok {
			limitSpec = &l
		}
	}
	require.NotNil(t, limitSpec, "history query must be bounded")
	assert.Equal(t, 50, limitSpec.N)
}
