package google

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenProvider supplies access tokens from an external credential manager.
// Implementations handle refresh themselves.
type TokenProvider interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)
}

// TokenSourceAdapter adapts a TokenProvider to oauth2.TokenSource.
type TokenSourceAdapter struct {
	provider TokenProvider
	ctx      context.Context
}

// NewTokenSource creates an oauth2.TokenSource from a TokenProvider.
// The result can be passed to option.WithTokenSource.
func NewTokenSource(ctx context.Context, provider TokenProvider) oauth2.TokenSource {
	return &TokenSourceAdapter{
		provider: provider,
		ctx:      ctx,
	}
}

// Token implements oauth2.TokenSource interface.
// Called by the HTTP transport whenever it needs an access token.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	accessToken, err := t.provider.GetToken(t.ctx)
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}
