package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"schuldenkompass/app/config"
	"schuldenkompass/app/service/chat"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/samber/do"
)

const mcpShutdownTimeout = 5 * time.Second

// MCPServer exposes the interview as a single MCP tool so agents can drive
// the same conversation core the HTTP endpoint uses.
type MCPServer struct {
	cfg     *config.Config
	chatSvc *chat.Service
	srv     *mcpserver.MCPServer
}

func NewMCP(di *do.Injector) (*MCPServer, error) {
	s := &MCPServer{
		cfg:     do.MustInvoke[*config.Config](di),
		chatSvc: do.MustInvoke[*chat.Service](di),
		srv:     mcpserver.NewMCPServer("schuldenkompass", "1.0.0"),
	}

	s.srv.AddTool(mcp.NewTool("chat",
		mcp.WithDescription("Send one message to the SchuldenKompass debt counseling interview and receive the bot reply."),
		mcp.WithString("message", mcp.Required(), mcp.Description("User message text")),
		mcp.WithString("conversation_id", mcp.Description("Conversation id from a previous reply; omit to start a new conversation")),
	), s.handleChatTool)

	return s, nil
}

func (s *MCPServer) handleChatTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	message, _ := args["message"].(string)
	conversationID, _ := args["conversation_id"].(string)

	response := s.chatSvc.Process(ctx, chat.Request{
		Message:        message,
		ConversationID: conversationID,
	})

	payload, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}

// Run serves the MCP tool over SSE until the context is cancelled.
func (s *MCPServer) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.MCP.Port)
	sse := mcpserver.NewSSEServer(s.srv,
		mcpserver.WithBaseURL(fmt.Sprintf("http://localhost:%d", s.cfg.MCP.Port)))

	errCh := make(chan error, 1)

	go func() {
		slog.Info("MCP server listening", "addr", addr)
		errCh <- sse.Start(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("mcp listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), mcpShutdownTimeout)
		defer cancel()

		return sse.Shutdown(shutdownCtx)
	}
}
