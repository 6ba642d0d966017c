// Package chat orchestrates one inbound message: it resolves the
// conversation, runs the state machine and stamps activity. Transport
// adapters (HTTP, MCP) stay thin on top of it.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"schuldenkompass/app/config"
	"schuldenkompass/app/service/interview"
	"schuldenkompass/app/service/store"

	"github.com/google/uuid"
	"github.com/samber/do"
)

type Request struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

type Response struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
	Status         string `json:"status"`
}

type Service struct {
	cfg          *config.Config
	storeSvc     *store.Service
	interviewSvc *interview.Service
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:          do.MustInvoke[*config.Config](di),
		storeSvc:     do.MustInvoke[*store.Service](di),
		interviewSvc: do.MustInvoke[*interview.Service](di),
	}, nil
}

// Process handles one user message synchronously. The conversation entry is
// locked for the duration, serializing concurrent messages on the same id.
func (s *Service) Process(_ context.Context, req Request) Response {
	start := time.Now()

	message := strings.TrimSpace(req.Message)

	id := strings.TrimSpace(req.ConversationID)
	if id == "" {
		id = newConversationID()
	}

	entry, created := s.storeSvc.GetOrCreate(id)
	if created {
		slog.Info("Started conversation", "conversation_id", id)
	}

	entry.Mu.Lock()
	defer entry.Mu.Unlock()

	response := s.interviewSvc.Respond(entry.State, message)
	entry.State.LastActivityAt = time.Now()

	slog.Info("Processed message",
		"conversation_id", id,
		"step", entry.State.StepIndex,
		"duration", time.Since(start))

	return Response{
		Response:       response,
		ConversationID: id,
		Status:         "success",
	}
}

func newConversationID() string {
	return "conv_" + time.Now().Format("20060102150405") + "_" + uuid.NewString()[:8]
}
