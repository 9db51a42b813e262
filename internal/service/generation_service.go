package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"viralpost-be/internal/dto"
	"viralpost-be/internal/entity"
	"viralpost-be/internal/pkg/logger"
	"viralpost-be/internal/pkg/serverutils"
	"viralpost-be/internal/repository/specification"
	"viralpost-be/internal/repository/unitofwork"
	"viralpost-be/pkg/events"
	"viralpost-be/pkg/extract"
	"viralpost-be/pkg/llm"
	"viralpost-be/pkg/viral/catalog"
	"viralpost-be/pkg/viral/fallback"
	"viralpost-be/pkg/viral/parser"
	"viralpost-be/pkg/viral/prompt"
	"viralpost-be/pkg/viral/sanitizer"

	"github.com/google/uuid"
)

const postsPerPlatform = 3

type IGenerationService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.GenerationHistoryItem, error)
}

type generationService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.Provider
	extractor  *extract.Extractor
	bus        *events.Bus
	logger     logger.ILogger
	llmTimeout time.Duration
}

func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.Provider,
	extractor *extract.Extractor,
	bus *events.Bus,
	log logger.ILogger,
	llmTimeout time.Duration,
) IGenerationService {
	if llmTimeout <= 0 {
		llmTimeout = 60 * time.Second
	}
	return &generationService{
		uowFactory: uowFactory,
		provider:   provider,
		extractor:  extractor,
		bus:        bus,
		logger:     log,
		llmTimeout: llmTimeout,
	}
}

// platformJob pairs one requested platform with its chosen tone.
type platformJob struct {
	platform catalog.PlatformInfo
	tone     catalog.ToneInfo
}

// sanitizedPost is a finished post before persistence.
type sanitizedPost struct {
	platform catalog.Platform
	tone     catalog.Tone
	content  string
	hashtags []string
}

func (s *generationService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	content, contentType, err := s.resolveContent(req)
	if err != nil {
		return nil, err
	}

	jobs, err := resolveJobs(req.Platforms, req.Tones)
	if err != nil {
		return nil, err
	}

	// The Generation row is written before any model call so a record
	// survives even total downstream failure. It is never rolled back.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	generation := &entity.Generation{
		Id:              uuid.New(),
		UserId:          userId,
		OriginalContent: content,
		ContentType:     contentType,
		Platforms:       req.Platforms,
		CreatedAt:       time.Now(),
	}
	if req.Attachment != nil {
		name := req.Attachment.FileName
		generation.FileName = &name
	}
	if err := uow.GenerationRepository().Create(ctx, generation); err != nil {
		return nil, fmt.Errorf("create generation: %w", err)
	}

	attachment := s.uploadAttachment(ctx, req.Attachment)

	// Fan-out: one goroutine per platform. Sub-pipelines share only
	// read-only inputs; a failure in one never touches the others.
	results := make([][]sanitizedPost, len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job platformJob) {
			defer wg.Done()
			results[i] = s.runPlatform(ctx, content, job, attachment)
		}(i, job)
	}
	wg.Wait()

	// Fan-in: persist each post individually. One post failing to write
	// is logged and dropped; the rest still go through.
	persisted := make([]dto.GeneratedPostResponse, 0, len(jobs)*postsPerPlatform)
	for _, platformPosts := range results {
		for _, post := range platformPosts {
			row := &entity.GeneratedPost{
				Id:             uuid.New(),
				GenerationId:   generation.Id,
				Platform:       string(post.platform),
				Tone:           string(post.tone),
				Content:        post.content,
				Hashtags:       post.hashtags,
				CharacterCount: utf8.RuneCountInString(post.content),
				CreatedAt:      time.Now(),
			}
			if err := uow.GeneratedPostRepository().Create(ctx, row); err != nil {
				s.logger.Error("GenerationService", "Failed to persist post", map[string]interface{}{
					"generation_id": generation.Id.String(),
					"platform":      post.platform,
					"error":         err.Error(),
				})
				continue
			}
			persisted = append(persisted, toPostResponse(row))
		}
	}

	if s.bus != nil {
		evt := events.BaseEvent{
			Type: events.TypeGenerationCompleted,
			Data: map[string]interface{}{
				"user_id":       userId.String(),
				"generation_id": generation.Id.String(),
				"post_count":    len(persisted),
			},
			OccurredAt: time.Now(),
		}
		if pubErr := s.bus.Publish(ctx, evt); pubErr != nil {
			s.logger.Warn("GenerationService", "Failed to publish GENERATION_COMPLETED event", map[string]interface{}{
				"error": pubErr.Error(),
			})
		}
	}

	return &dto.GenerateResponse{
		GenerationId: generation.Id,
		Posts:        persisted,
	}, nil
}

// resolveContent picks the source text: pasted content wins, otherwise the
// attachment is extracted to plain text.
func (s *generationService) resolveContent(req *dto.GenerateRequest) (string, string, error) {
	content := strings.TrimSpace(req.Content)
	if content != "" {
		return content, "text", nil
	}

	if req.Attachment == nil {
		return "", "", fmt.Errorf("%w: content is required", serverutils.ErrInvalidRequest)
	}

	extracted, err := s.extractor.ExtractText(req.Attachment.Data, req.Attachment.FileType)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", serverutils.ErrInvalidRequest, err)
	}
	extracted = strings.TrimSpace(extracted)
	if extracted == "" {
		return "", "", fmt.Errorf("%w: document contains no extractable text", serverutils.ErrInvalidRequest)
	}
	return extracted, req.Attachment.FileType, nil
}

// resolveJobs validates the platform list and tone mapping up front so the
// pipeline never sees an unsupported value.
func resolveJobs(platforms []string, tones map[string]string) ([]platformJob, error) {
	if len(platforms) == 0 {
		return nil, fmt.Errorf("%w: platforms is required", serverutils.ErrInvalidRequest)
	}

	jobs := make([]platformJob, 0, len(platforms))
	seen := make(map[catalog.Platform]struct{})
	for _, p := range platforms {
		platformInfo, ok := catalog.LookupPlatform(p)
		if !ok {
			return nil, fmt.Errorf("%w: unknown platform %q", serverutils.ErrInvalidRequest, p)
		}
		if _, dup := seen[platformInfo.Value]; dup {
			continue
		}
		seen[platformInfo.Value] = struct{}{}

		toneValue, ok := tones[p]
		if !ok {
			return nil, fmt.Errorf("%w: missing tone for platform %q", serverutils.ErrInvalidRequest, p)
		}
		toneInfo, ok := catalog.LookupTone(toneValue)
		if !ok {
			return nil, fmt.Errorf("%w: unknown tone %q", serverutils.ErrInvalidRequest, toneValue)
		}

		jobs = append(jobs, platformJob{platform: platformInfo, tone: toneInfo})
	}
	return jobs, nil
}

// uploadAttachment registers the document with the provider once so every
// platform invocation reuses the same reference. No retry: on failure the
// pipelines run text-only.
func (s *generationService) uploadAttachment(ctx context.Context, att *dto.AttachmentPayload) *llm.DocumentRef {
	if att == nil {
		return nil
	}
	uploader, ok := s.provider.(llm.DocumentUploader)
	if !ok {
		s.logger.Warn("GenerationService", "Provider does not support document upload, using text only", nil)
		return nil
	}
	ref, err := uploader.UploadDocument(ctx, att.Data, att.MimeType)
	if err != nil {
		s.logger.Warn("GenerationService", "Attachment upload failed, using text only", map[string]interface{}{
			"file_name": att.FileName,
			"error":     err.Error(),
		})
		return nil
	}
	return ref
}

// runPlatform executes one platform's sub-pipeline: prompt → LLM → parse →
// sanitize, with the fallback generator covering every failure mode. It
// never lets an error or panic escape to the orchestrator.
func (s *generationService) runPlatform(ctx context.Context, content string, job platformJob, attachment *llm.DocumentRef) (posts []sanitizedPost) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("GenerationService", "Panic in platform pipeline", map[string]interface{}{
				"platform": job.platform.Value,
				"panic":    fmt.Sprint(r),
			})
			posts = sanitizeCandidates(fallback.Generate(content, job.platform, job.tone), job)
		}
	}()

	candidates := s.invokeModel(ctx, content, job, attachment)
	if len(candidates) == 0 {
		s.logger.Warn("GenerationService", "No valid posts from model, using fallback", map[string]interface{}{
			"platform": job.platform.Value,
			"tone":     job.tone.Value,
		})
		candidates = fallback.Generate(content, job.platform, job.tone)
	}
	if len(candidates) > postsPerPlatform {
		candidates = candidates[:postsPerPlatform]
	}

	return sanitizeCandidates(candidates, job)
}

// invokeModel runs one bounded LLM call and parses its output. Any provider
// error is logged and reported as "no usable output".
func (s *generationService) invokeModel(ctx context.Context, content string, job platformJob, attachment *llm.DocumentRef) []parser.Candidate {
	spec := prompt.Build(content, job.platform, job.tone)

	callCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	opts := []llm.Option{
		llm.WithSystem(spec.System),
		llm.WithTemperature(0.7),
	}
	if attachment != nil {
		opts = append(opts, llm.WithAttachment(attachment))
	}

	raw, err := s.provider.Generate(callCtx, spec.User, opts...)
	if err != nil {
		s.logger.Warn("GenerationService", "LLM invocation failed", map[string]interface{}{
			"platform": job.platform.Value,
			"error":    err.Error(),
		})
		return nil
	}

	return parser.ParseValid(raw)
}

func sanitizeCandidates(candidates []parser.Candidate, job platformJob) []sanitizedPost {
	posts := make([]sanitizedPost, 0, len(candidates))
	for _, c := range candidates {
		cleaned := sanitizer.Sanitize(c.Content, c.Hashtags)
		posts = append(posts, sanitizedPost{
			platform: job.platform.Value,
			tone:     job.tone.Value,
			content:  cleaned.Content,
			hashtags: cleaned.Hashtags,
		})
	}
	return posts
}

func (s *generationService) History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.GenerationHistoryItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	generations, err := uow.GenerationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.WithPosts{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.GenerationHistoryItem, 0, len(generations))
	for _, g := range generations {
		item := &dto.GenerationHistoryItem{
			Id:              g.Id,
			UserId:          g.UserId,
			OriginalContent: g.OriginalContent,
			ContentType:     g.ContentType,
			FileURL:         g.FileURL,
			FileName:        g.FileName,
			Platforms:       g.Platforms,
			CreatedAt:       g.CreatedAt,
			GeneratedPosts:  make([]dto.GeneratedPostResponse, 0, len(g.Posts)),
		}
		for _, p := range g.Posts {
			item.GeneratedPosts = append(item.GeneratedPosts, toPostResponse(p))
		}
		items = append(items, item)
	}
	return items, nil
}

func toPostResponse(p *entity.GeneratedPost) dto.GeneratedPostResponse {
	hashtags := p.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return dto.GeneratedPostResponse{
		Id:             p.Id,
		GenerationId:   p.GenerationId,
		Platform:       p.Platform,
		Tone:           p.Tone,
		Content:        p.Content,
		Hashtags:       hashtags,
		CharacterCount: p.CharacterCount,
		CreatedAt:      p.CreatedAt,
	}
}
