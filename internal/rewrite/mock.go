package rewrite

import "context"

// MockRewriter is a canned Rewriter for tests.
type MockRewriter struct {
	// Response is returned when Err is nil. When empty, the input text
	// is echoed back with a "[rewritten] " prefix.
	Response string
	Err      error

	// Calls records the (instruction, text) pairs received.
	Calls []MockCall
}

type MockCall struct {
	Instruction string
	Text        string
}

func (m *MockRewriter) Rewrite(_ context.Context, instruction, text string) (string, error) {
	m.Calls = append(m.Calls, MockCall{Instruction: instruction, Text: text})
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return "[rewritten] " + text, nil
}
