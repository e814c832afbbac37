package chat

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSubmitAppendsUserThenAssistant(t *testing.T) {
	tr := NewTranscript(20*time.Millisecond, zaptest.NewLogger(t))

	require.True(t, tr.Submit("  Tell me about Chicago  "))

	msgs := tr.Messages()
	require.Len(t, msgs, 1, "user message is appended immediately")
	assert.Equal(t, SenderUser, msgs[0].Sender)
	assert.Equal(t, "Tell me about Chicago", msgs[0].Text)
	assert.NotEmpty(t, msgs[0].ID)

	tr.Wait()

	msgs = tr.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, SenderAssistant, msgs[1].Sender)
	assert.Equal(t, GenerateResponse("Tell me about Chicago"), msgs[1].Text)
	assert.Equal(t, PlaceChicago, msgs[1].Place)
}

func TestSubmitDelaysReply(t *testing.T) {
	tr := NewTranscript(DefaultDelay, nil)

	start := time.Now()
	require.True(t, tr.Submit("virginia"))
	tr.Wait()

	assert.GreaterOrEqual(t, time.Since(start), DefaultDelay)
	assert.Equal(t, 2, tr.Len())
}

func TestSubmitIgnoresBlankInput(t *testing.T) {
	tr := NewTranscript(0, nil)

	for _, in := range []string{"", "   ", "\n\t"} {
		assert.False(t, tr.Submit(in))
	}
	tr.Wait()
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.Messages())
}

func TestSubmitFallbackIsNotAnError(t *testing.T) {
	tr := NewTranscript(0, nil)
	require.True(t, tr.Submit("what is the weather"))
	tr.Wait()

	msgs := tr.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, Fallback, msgs[1].Text)
	assert.Empty(t, msgs[1].Place)
}

func TestQuickSubmitsGetTwoReplies(t *testing.T) {
	tr := NewTranscript(10*time.Millisecond, nil)

	require.True(t, tr.Submit("phoenix climate"))
	require.True(t, tr.Submit("chicago community"))
	tr.Wait()

	msgs := tr.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, SenderUser, msgs[0].Sender)
	assert.Equal(t, SenderUser, msgs[1].Sender)

	replies := []string{msgs[2].Text, msgs[3].Text}
	assert.ElementsMatch(t, []string{phoenixEnvironmental, chicagoSocial}, replies)
}

func TestOnAppendSeesEveryMessageInOrder(t *testing.T) {
	tr := NewTranscript(0, nil)

	var (
		mu   sync.Mutex
		seen []Message
	)
	tr.OnAppend(func(m Message) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, m)
	})

	require.True(t, tr.Submit("virginia"))
	tr.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, tr.Messages(), seen)
}

func TestMessagesReturnsCopy(t *testing.T) {
	tr := NewTranscript(0, nil)
	require.True(t, tr.Submit("chicago"))
	tr.Wait()

	msgs := tr.Messages()
	msgs[0].Text = "changed"
	assert.NotEqual(t, "changed", tr.Messages()[0].Text)
}
