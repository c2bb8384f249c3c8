package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBaseURL_ExplicitWinsVerbatim(t *testing.T) {
	got := ResolveBaseURL("https://api.example.com/api", "192.168.1.20:8081")
	assert.Equal(t, "https://api.example.com/api", got)
}

func TestResolveBaseURL_DevHostHint(t *testing.T) {
	got := ResolveBaseURL("", "192.168.1.20:8081")
	assert.Equal(t, "http://192.168.1.20:4000/api", got)
}

func TestResolveBaseURL_DevHostWithoutPort(t *testing.T) {
	got := ResolveBaseURL("", "192.168.1.20")
	assert.Equal(t, "http://192.168.1.20:4000/api", got)
}

func TestResolveBaseURL_LoopbackHintExcluded(t *testing.T) {
	assert.Equal(t, localFallback, ResolveBaseURL("", "localhost:8081"))
	assert.Equal(t, localFallback, ResolveBaseURL("", "127.0.0.1:8081"))
}

func TestResolveBaseURL_Fallback(t *testing.T) {
	assert.Equal(t, "http://localhost:4000/api", ResolveBaseURL("", ""))
}
