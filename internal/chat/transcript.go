package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wilbanksalexis/Powering/internal/metrics"
)

// DefaultDelay is the simulated thinking time before the assistant answers.
const DefaultDelay = 500 * time.Millisecond

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Place     Place     `json:"place,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Reply is an assistant answer together with how the query was read.
type Reply struct {
	Text           string         `json:"response"`
	Classification Classification `json:"classification"`
}

// Answer classifies query, builds the response and counts it.
func Answer(query string) Reply {
	c := Classify(query)
	label := string(c.Place)
	if !c.Matched {
		label = "none"
	}
	metrics.ChatResponses.WithLabelValues(label).Inc()
	return Reply{Text: respond(c), Classification: c}
}

// Transcript is an append-only, ordered list of messages. Assistant replies
// are appended by timers, so it is safe for concurrent use.
type Transcript struct {
	mu       sync.Mutex
	messages []Message
	onAppend func(Message)

	delay   time.Duration
	pending sync.WaitGroup
	log     *zap.Logger
}

// NewTranscript creates an empty transcript whose replies arrive after
// delay. A nil logger is replaced with a no-op one.
func NewTranscript(delay time.Duration, log *zap.Logger) *Transcript {
	if log == nil {
		log = zap.NewNop()
	}
	return &Transcript{delay: delay, log: log}
}

// OnAppend registers fn to be called with every appended message, in
// transcript order. fn runs with the transcript locked and must not call
// back into it.
func (t *Transcript) OnAppend(fn func(Message)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onAppend = fn
}

// Submit appends input as a user message and schedules the assistant reply.
// Input that is empty after trimming is ignored and Submit returns false.
// Each call starts its own timer; replies to quick successive submits land
// in timer completion order.
func (t *Transcript) Submit(input string) bool {
	text := strings.TrimSpace(input)
	if text == "" {
		return false
	}

	t.append(Message{Sender: SenderUser, Text: text})

	t.pending.Add(1)
	time.AfterFunc(t.delay, func() {
		defer t.pending.Done()
		reply := Answer(text)
		t.append(Message{
			Sender: SenderAssistant,
			Text:   reply.Text,
			Place:  reply.Classification.Place,
		})
		t.log.Debug("assistant replied",
			zap.String("place", string(reply.Classification.Place)),
			zap.Bool("matched", reply.Classification.Matched),
		)
	})
	return true
}

// Wait blocks until every scheduled reply has been appended.
func (t *Transcript) Wait() {
	t.pending.Wait()
}

func (t *Transcript) append(m Message) {
	m.ID = uuid.New().String()
	m.CreatedAt = time.Now().UTC()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, m)
	if t.onAppend != nil {
		t.onAppend(m)
	}
}

// Messages returns a copy of the transcript.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Message(nil), t.messages...)
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}
