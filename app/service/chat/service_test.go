package chat

import (
	"context"
	"regexp"
	"testing"

	"schuldenkompass/app/config"
	"schuldenkompass/app/service/interview"
	"schuldenkompass/app/service/script"
	"schuldenkompass/app/service/store"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	do.ProvideValue(di, config.Default())
	do.Provide(di, interview.New)
	do.Provide(di, store.New)
	do.Provide(di, New)

	return do.MustInvoke[*Service](di)
}

func TestProcessGeneratesConversationID(t *testing.T) {
	svc := newTestService(t)

	resp := svc.Process(context.Background(), Request{Message: "Hallo"})

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, script.Greeting, resp.Response)
	assert.Regexp(t, regexp.MustCompile(`^conv_\d{14}_[0-9a-f]{8}$`), resp.ConversationID)
}

func TestProcessContinuesConversation(t *testing.T) {
	svc := newTestService(t)

	first := svc.Process(context.Background(), Request{Message: "Hallo"})
	second := svc.Process(context.Background(), Request{
		Message:        "1450",
		ConversationID: first.ConversationID,
	})

	require.Equal(t, first.ConversationID, second.ConversationID)

	rentStep, _ := script.At(1)
	assert.Contains(t, second.Response, rentStep.Prompt)
}

func TestProcessStampsActivity(t *testing.T) {
	svc := newTestService(t)

	resp := svc.Process(context.Background(), Request{Message: "Hallo"})

	entry, ok := svc.storeSvc.Get(resp.ConversationID)
	require.True(t, ok)
	assert.False(t, entry.State.LastActivityAt.IsZero())
	assert.True(t, entry.State.Started)
}
