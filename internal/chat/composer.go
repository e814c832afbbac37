package chat

import "fmt"

// ExamplePrompts are the canned questions offered next to the chat input.
var ExamplePrompts = []string{
	"What are the environmental impacts of data centers in Virginia?",
	"How do data centers affect communities in Phoenix?",
	"Tell me about social justice concerns in Chicago.",
	"What is the climate impact of data centers in Phoenix?",
}

// Composer models the chat input field.
type Composer struct {
	Input string

	transcript *Transcript
}

// NewComposer creates an empty input bound to t.
func NewComposer(t *Transcript) *Composer {
	return &Composer{transcript: t}
}

// SelectExample copies example prompt i into the input. It does not submit.
func (c *Composer) SelectExample(i int) error {
	if i < 0 || i >= len(ExamplePrompts) {
		return fmt.Errorf("example prompt %d out of range [0,%d)", i, len(ExamplePrompts))
	}
	c.Input = ExamplePrompts[i]
	return nil
}

// Submit sends the input to the transcript. The field is cleared only when
// something was sent; whitespace-only input stays as typed.
func (c *Composer) Submit() bool {
	if !c.transcript.Submit(c.Input) {
		return false
	}
	c.Input = ""
	return true
}
