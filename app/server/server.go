// Package server exposes the conversation core over HTTP and MCP.
package server

import (
	"context"
	"fmt"
	"log/slog"

	_ "embed"

	"schuldenkompass/app/config"
	"schuldenkompass/app/service/chat"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/samber/do"
)

const apologyText = "Es ist ein Fehler aufgetreten. Bitte versuche es später noch einmal."

//go:embed index.html
var indexPage []byte

type Service struct {
	cfg     *config.Config
	chatSvc *chat.Service
	app     *fiber.App
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:     do.MustInvoke[*config.Config](di),
		chatSvc: do.MustInvoke[*chat.Service](di),
	}

	app := fiber.New(fiber.Config{
		AppName:               "schuldenkompass",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))

	app.Get("/", s.handleIndex)
	app.Post("/api/chat", s.handleChat)

	s.app = app

	return s, nil
}

// Run serves HTTP until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)

	go func() {
		<-ctx.Done()

		if err := s.app.Shutdown(); err != nil {
			slog.Warn("HTTP shutdown failed", "error", err)
		}
	}()

	slog.Info("HTTP server listening", "addr", addr)

	if err := s.app.Listen(addr); err != nil {
		return fmt.Errorf("http listen: %w", err)
	}

	return nil
}

func (s *Service) handleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return c.Send(indexPage)
}

func (s *Service) handleChat(c *fiber.Ctx) error {
	var req chat.Request
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("parse chat request: %w", err)
	}

	return c.JSON(s.chatSvc.Process(c.Context(), req))
}

// handleError surfaces any unexpected failure as a generic German apology,
// preserving the conversation id so the client can retry.
func (s *Service) handleError(c *fiber.Ctx, err error) error {
	slog.Error("Request failed",
		"path", c.Path(),
		"error", err,
		"telegram", true)

	var req chat.Request
	_ = c.BodyParser(&req)

	return c.Status(fiber.StatusInternalServerError).JSON(chat.Response{
		Response:       apologyText,
		ConversationID: req.ConversationID,
		Status:         "error",
	})
}
