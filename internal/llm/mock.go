package llm

import (
	"context"
	"fmt"
)

// Mock is a canned CompletionClient used in tests and when no provider is
// configured.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Complete(_ context.Context, prompt string) (string, error) {
	return fmt.Sprintf("You said %q. Tell me more about that.", prompt), nil
}
