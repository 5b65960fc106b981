// pkg/gateway/mock_client.go

package gateway

import (
	"context"
	"fmt"
)

type mockClient struct {
	nextID int
}

// NewMock returns an in-memory backend stand-in, used when
// BACKEND_ENDPOINT is not configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) CreatePath(_ context.Context, _ Payload) (string, error) {
	m.nextID++
	return fmt.Sprintf("path_%d", m.nextID), nil
}

func (m *mockClient) UpdatePath(_ context.Context, _ string, _ Payload) error {
	return nil
}
