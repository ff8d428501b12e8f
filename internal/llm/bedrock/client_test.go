package bedrock

import (
	"context"
	"testing"
)

func TestNewClient_RequiresModelID(t *testing.T) {
	if _, err := NewClient(context.Background(), "us-east-1", ""); err == nil {
		t.Error("Expected error for missing model ID")
	}
}
