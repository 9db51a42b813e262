package controller

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"viralpost-be/internal/dto"
	"viralpost-be/internal/pkg/serverutils"
	"viralpost-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type generationController struct {
	generationService service.IGenerationService
}

func NewGenerationController(generationService service.IGenerationService) IGenerationController {
	return &generationController{
		generationService: generationService,
	}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/generate/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Generate)
	h.Get("history", c.History)
}

func (c *generationController) Generate(ctx *fiber.Ctx) error {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return fiber.ErrUnauthorized
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	req, err := parseGenerateRequest(ctx)
	if err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.generationService.Generate(ctx.Context(), userId, req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate posts", res))
}

func (c *generationController) History(ctx *fiber.Ctx) error {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return fiber.ErrUnauthorized
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	limit := ctx.QueryInt("limit", 50)

	res, err := c.generationService.History(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list generations", res))
}

// parseGenerateRequest accepts either a JSON body or a multipart form. The
// multipart form carries platforms/tones as JSON-encoded fields plus an
// optional file part.
func parseGenerateRequest(ctx *fiber.Ctx) (*dto.GenerateRequest, error) {
	contentType := ctx.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		var req dto.GenerateRequest
		if err := ctx.BodyParser(&req); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		return &req, nil
	}

	req := &dto.GenerateRequest{
		Content: ctx.FormValue("content"),
		Tones:   map[string]string{},
	}

	if platformsRaw := ctx.FormValue("platforms"); platformsRaw != "" {
		if err := json.Unmarshal([]byte(platformsRaw), &req.Platforms); err != nil {
			// Also accept a plain comma-separated list.
			req.Platforms = strings.Split(platformsRaw, ",")
			for i := range req.Platforms {
				req.Platforms[i] = strings.TrimSpace(req.Platforms[i])
			}
		}
	}

	if tonesRaw := ctx.FormValue("tones"); tonesRaw != "" {
		if err := json.Unmarshal([]byte(tonesRaw), &req.Tones); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid tones mapping")
		}
	}

	fileHeader, err := ctx.FormFile("file")
	if err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Unable to read uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Unable to read uploaded file")
		}

		req.Attachment = &dto.AttachmentPayload{
			FileName: fileHeader.Filename,
			MimeType: fileHeader.Header.Get("Content-Type"),
			FileType: strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."),
			Data:     data,
		}
	}

	return req, nil
}
