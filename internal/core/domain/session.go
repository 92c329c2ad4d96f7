package domain

// SessionStatus is the outcome of a session restore attempt.
type SessionStatus int

const (
	// StatusUnauthenticated means no usable access token is available.
	StatusUnauthenticated SessionStatus = iota
	// StatusAuthenticated means the provider holds a non-empty access token.
	StatusAuthenticated
)

// String returns the string representation of the session status.
func (s SessionStatus) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// PromptMode selects how a sign-in interacts with the user.
// Silent and interactive sign-in are one operation parameterised by this
// mode so the session state machine stays exhaustive.
type PromptMode int

const (
	// PromptConsent shows the provider's consent screen on every call.
	// Explicit user-initiated connects always re-prompt, trading
	// convenience for visibility into the grant.
	PromptConsent PromptMode = iota
	// PromptNone requests a token without any user-visible interaction
	// and fails fast when no prior grant is available.
	PromptNone
)

// String returns the provider prompt parameter for the mode.
func (m PromptMode) String() string {
	switch m {
	case PromptNone:
		return "none"
	default:
		return "consent"
	}
}

// Session describes the process-wide provider connection.
// HasToken is derived live from the provider handle and never cached;
// WasConnectedHint is the advisory durability hint and carries no authority.
type Session struct {
	// HasToken reports whether the token holder currently has an access token.
	HasToken bool
	// WasConnectedHint reports whether a prior session flagged this client ID
	// as connected. Advisory only; never proof of authentication.
	WasConnectedHint bool
	// ClientID is the OAuth client identifier the session is scoped to.
	ClientID string
	// AccountEmail is the connected account, when known.
	AccountEmail string
}

// ConnectionHint is the persisted durability hint: a connected flag and the
// client ID it corresponds to. A hint naming a different client ID must be
// treated as if no hint existed.
type ConnectionHint struct {
	Connected bool   `json:"connected"`
	ClientID  string `json:"client_id"`
}

// Matches reports whether the hint applies to the given client ID.
func (h ConnectionHint) Matches(clientID string) bool {
	return h.Connected && clientID != "" && h.ClientID == clientID
}
