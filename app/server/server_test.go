package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"schuldenkompass/app/config"
	"schuldenkompass/app/service/chat"
	"schuldenkompass/app/service/interview"
	"schuldenkompass/app/service/script"
	"schuldenkompass/app/service/store"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Service {
	t.Helper()

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	do.ProvideValue(di, config.Default())
	do.Provide(di, interview.New)
	do.Provide(di, store.New)
	do.Provide(di, chat.New)
	do.Provide(di, New)

	return do.MustInvoke[*Service](di)
}

func postChat(t *testing.T, svc *Service, body string) (*chat.Response, int) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := svc.app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var parsed chat.Response
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return &parsed, res.StatusCode
}

func TestChatEndpoint(t *testing.T) {
	svc := newTestServer(t)

	resp, status := postChat(t, svc, `{"message": "Hallo"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, script.Greeting, resp.Response)
	assert.NotEmpty(t, resp.ConversationID)

	resp, status = postChat(t, svc, `{"message": "1450", "conversation_id": "`+resp.ConversationID+`"}`)

	assert.Equal(t, fiber.StatusOK, status)
	rentStep, _ := script.At(1)
	assert.Contains(t, resp.Response, rentStep.Prompt)
}

func TestChatEndpointMalformedBody(t *testing.T) {
	svc := newTestServer(t)

	resp, status := postChat(t, svc, `{nicht json`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, apologyText, resp.Response)
}

func TestIndexServesChatPage(t *testing.T) {
	svc := newTestServer(t)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	res, err := svc.app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.True(t, strings.HasPrefix(res.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML))

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "SchuldenKompass")
}
