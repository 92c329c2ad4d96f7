package google

import (
	"context"

	"github.com/cadence-labs/cadence-cli/internal/adapters/driven/oauth"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
)

// Ensure Factory implements the driven port.
var _ driven.ProviderFactory = (*Factory)(nil)

// Factory builds the Google provider halves: the OAuth token issuer and the
// Calendar API event source. Both read the session through the shared token
// holder.
type Factory struct {
	holder       driven.TokenHolder
	creds        driven.CredentialsStore
	clientSecret string
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithClientSecret forwards an OAuth client secret to issuers.
func WithClientSecret(secret string) FactoryOption {
	return func(f *Factory) { f.clientSecret = secret }
}

// NewFactory creates a provider factory over the shared session state.
func NewFactory(holder driven.TokenHolder, creds driven.CredentialsStore, opts ...FactoryOption) *Factory {
	f := &Factory{
		holder: holder,
		creds:  creds,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewIssuer implements driven.ProviderFactory.
func (f *Factory) NewIssuer(_ context.Context, clientID string) (driven.TokenIssuer, error) {
	var opts []oauth.IssuerOption
	if f.clientSecret != "" {
		opts = append(opts, oauth.WithClientSecret(f.clientSecret))
	}
	return oauth.NewIssuer(clientID, f.creds, opts...), nil
}

// NewEventSource implements driven.ProviderFactory.
func (f *Factory) NewEventSource(ctx context.Context) (driven.EventSource, error) {
	return NewEventSource(ctx, NewTokenSource(f.holder))
}
