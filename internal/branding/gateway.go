package branding

import (
	"context"
	"strings"
)

// CredentialSource supplies the caller's bearer token. The token is opaque
// here: the gateway checks only presence, the backend judges validity.
type CredentialSource func() string

// Capability reports whether the caller may manage branding assets. The
// claim that grants this is the identity collaborator's business, so the
// check is injected rather than guessed at. The server-enforced 401/403
// remains the ground truth either way.
type Capability func() bool

// Mutator is the write surface the gateway wraps.
type Mutator interface {
	Upload(ctx context.Context, t AssetType, p Payload, token string) (*Asset, error)
	Update(ctx context.Context, t AssetType, p Payload, token string) (*Asset, error)
	Remove(ctx context.Context, t AssetType, token string) error
}

// Gateway gates write operations behind client-side preconditions: a
// credential must be present and the capability check must pass before any
// network call is made. It never refreshes the coordinator itself; callers
// decide when to re-resolve, so several writes can share one refresh.
type Gateway struct {
	client Mutator
	creds  CredentialSource
	can    Capability
}

// NewGateway wires a gateway. A nil capability means "anyone with a
// credential may try", leaving authorization entirely to the server.
func NewGateway(client Mutator, creds CredentialSource, can Capability) *Gateway {
	return &Gateway{client: client, creds: creds, can: can}
}

// Upload creates the asset for a type that has none. Callers should refresh
// the coordinator after a successful write.
func (g *Gateway) Upload(ctx context.Context, t AssetType, p Payload) (*Asset, error) {
	token, err := g.precondition()
	if err != nil {
		return nil, err
	}
	return g.client.Upload(ctx, t, p, token)
}

// Update replaces the existing asset for a type.
func (g *Gateway) Update(ctx context.Context, t AssetType, p Payload) (*Asset, error) {
	token, err := g.precondition()
	if err != nil {
		return nil, err
	}
	return g.client.Update(ctx, t, p, token)
}

// Remove deletes the asset for a type.
func (g *Gateway) Remove(ctx context.Context, t AssetType) error {
	token, err := g.precondition()
	if err != nil {
		return err
	}
	return g.client.Remove(ctx, t, token)
}

func (g *Gateway) precondition() (string, error) {
	if g.creds == nil {
		return "", ErrNoCredential
	}
	token := strings.TrimSpace(g.creds())
	if token == "" {
		return "", ErrNoCredential
	}
	if g.can != nil && !g.can() {
		return "", ErrNotPermitted
	}
	return token, nil
}
