package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// clientTimeout is the total request timeout.
	clientTimeout = 30 * time.Second
	// dialTimeout is the connection timeout.
	dialTimeout = 10 * time.Second
	// responseHeaderTimeout is time to wait for response headers.
	responseHeaderTimeout = 15 * time.Second

	// maxResponseBody caps how much of a provider response is read.
	maxResponseBody = 64 * 1024
)

// RemoteProvider is a Provider backed by an external identity service.
// Tokens are verified locally against the provider's shared HS256
// signing secret; user creation calls the provider's admin endpoint.
type RemoteProvider struct {
	baseURL    string
	adminKey   string
	tokens     *TokenVerifier
	httpClient *http.Client
}

// NewRemoteProvider creates a RemoteProvider.
func NewRemoteProvider(baseURL, adminKey string, tokens *TokenVerifier) *RemoteProvider {
	return &RemoteProvider{
		baseURL:    baseURL,
		adminKey:   adminKey,
		tokens:     tokens,
		httpClient: newHTTPClient(),
	}
}

// newHTTPClient creates an HTTP client configured for provider calls.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: clientTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: responseHeaderTimeout,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// VerifyToken resolves a bearer token to the user id it was issued for.
func (p *RemoteProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	return p.tokens.Verify(token)
}

// createUserRequest is the admin-create payload.
type createUserRequest struct {
	Email        string            `json:"email"`
	Password     string            `json:"password"`
	UserMetadata map[string]string `json:"user_metadata"`
	// No email server is configured; accounts are confirmed on creation.
	EmailConfirm bool `json:"email_confirm"`
}

// createUserResponse covers the response shapes the provider returns.
type createUserResponse struct {
	ID   string `json:"id"`
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	Error   string `json:"error"`
	Message string `json:"msg"`
}

// CreateUser provisions a user through the provider's admin endpoint and
// returns the new user id. Provider rejections (duplicate email, weak
// password) surface as ErrRejected with the provider's message.
func (p *RemoteProvider) CreateUser(ctx context.Context, input CreateUserInput) (string, error) {
	payload := createUserRequest{
		Email:    input.Email,
		Password: input.Password,
		UserMetadata: map[string]string{
			"name": input.Name,
			"role": input.Role,
		},
		EmailConfirm: true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal create user request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/admin/users", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build create user request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.adminKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call identity provider: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", fmt.Errorf("read identity provider response: %w", err)
	}

	var parsed createUserResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode identity provider response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Error
		if msg == "" {
			msg = parsed.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("%w: %s", ErrRejected, msg)
	}

	id := parsed.ID
	if id == "" {
		id = parsed.User.ID
	}
	if id == "" {
		return "", fmt.Errorf("identity provider returned no user id")
	}
	return id, nil
}

// Ping checks provider reachability for readiness probes.
func (p *RemoteProvider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))

	if resp.StatusCode >= 500 {
		return fmt.Errorf("identity provider unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
