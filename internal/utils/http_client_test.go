package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == nil || client2.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil")
	}
	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewAPIClient_Configured(t *testing.T) {
	client := NewAPIClient("http://localhost:8080", 3*time.Second)

	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base url to be set, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", client.GetClient().Timeout)
	}
	if client.RetryCount != 0 {
		t.Errorf("expected retries disabled, got %d", client.RetryCount)
	}
}
