// Package identity owns the stable per-installation device identifier the
// backend uses to gate logins to approved devices.
package identity

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/cjsavings/savings-client/internal/kvstore"
)

// deviceKey is the fixed general-storage key holding the identifier.
const deviceKey = "cj_device_id"

// fallbackHint is used when no device-model hint can be determined.
const fallbackHint = "device"

// Provider returns a stable device identifier, generating and persisting
// one on first use. The identifier survives restarts and logins; it only
// changes if the underlying store is wiped.
type Provider struct {
	repo kvstore.Repository

	// hint produces a coarse device-model prefix; replaceable in tests.
	hint func() string

	// cached holds the identifier after the first successful read.
	// Concurrent first calls may both generate an id; the later persisted
	// write wins and a single value is eventually stable.
	cached string
}

func NewProvider(repo kvstore.Repository) *Provider {
	return &Provider{repo: repo, hint: modelHint}
}

// DeviceID reads the persisted identifier, synthesizing and storing a new
// one (`<model-hint>-<uuid>`) when absent. It fails only on storage errors.
func (p *Provider) DeviceID(ctx context.Context) (string, error) {
	if p.cached != "" {
		return p.cached, nil
	}

	value, err := p.repo.Get(ctx, deviceKey)
	if err != nil {
		return "", fmt.Errorf("failed to read device id: %w", err)
	}
	if len(value) > 0 {
		p.cached = string(value)
		return p.cached, nil
	}

	id := fmt.Sprintf("%s-%s", p.hint(), uuid.NewString())
	if err := p.repo.Set(ctx, deviceKey, []byte(id)); err != nil {
		return "", fmt.Errorf("failed to persist device id: %w", err)
	}
	p.cached = id
	return id, nil
}

// modelHint returns a coarse machine hint for the identifier prefix.
// Mobile builds would substitute the platform's model string here.
func modelHint() string {
	host, err := os.Hostname()
	host = strings.TrimSpace(host)
	if err != nil || host == "" {
		return fallbackHint
	}
	return host
}
