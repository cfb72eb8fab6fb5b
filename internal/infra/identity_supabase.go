package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Vovarama1992/studyhall/internal/ports"
	"github.com/google/uuid"
)

// SupabaseIdentity delegates sign-up, sign-in and token validation to a
// GoTrue-style auth service. The backend never mints or verifies tokens
// itself; it only relays what the service issues.
type SupabaseIdentity struct {
	baseURL string // e.g. https://<project>.supabase.co/auth/v1
	apiKey  string
	client  *http.Client
}

func NewSupabaseIdentity(baseURL, apiKey string) ports.IdentityService {
	return &SupabaseIdentity{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type gtUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u gtUser) toAuthUser() (*ports.AuthUser, error) {
	uid, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, fmt.Errorf("parse user id %q: %w", u.ID, err)
	}
	return &ports.AuthUser{ID: uid, Email: u.Email}, nil
}

func (s *SupabaseIdentity) SignUp(ctx context.Context, email, password string) (*ports.AuthUser, error) {
	var out gtUser
	err := s.do(ctx, http.MethodPost, "/signup", "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.toAuthUser()
}

func (s *SupabaseIdentity) SignIn(ctx context.Context, email, password string) (string, *ports.AuthUser, error) {
	var out struct {
		AccessToken string `json:"access_token"`
		User        gtUser `json:"user"`
	}
	err := s.do(ctx, http.MethodPost, "/token?grant_type=password", "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return "", nil, err
	}

	user, err := out.User.toAuthUser()
	if err != nil {
		return "", nil, err
	}
	return out.AccessToken, user, nil
}

func (s *SupabaseIdentity) SignOut(ctx context.Context, token string) error {
	return s.do(ctx, http.MethodPost, "/logout", token, nil, nil)
}

func (s *SupabaseIdentity) SendPasswordReset(ctx context.Context, email string) error {
	return s.do(ctx, http.MethodPost, "/recover", "", map[string]string{
		"email": email,
	}, nil)
}

func (s *SupabaseIdentity) GetUser(ctx context.Context, token string) (*ports.AuthUser, error) {
	var out gtUser
	if err := s.do(ctx, http.MethodGet, "/user", token, nil, &out); err != nil {
		return nil, err
	}
	return out.toAuthUser()
}

func (s *SupabaseIdentity) do(ctx context.Context, method, endpoint, token string, body, result any) error {
	var payload io.Reader
	if body != nil {
		j, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(j)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("auth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// the auth middleware matches on the provider's message, so keep
		// it intact (e.g. "JWT expired")
		var errResp struct {
			Msg              string `json:"msg"`
			ErrorDescription string `json:"error_description"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			if errResp.Msg != "" {
				return fmt.Errorf("auth service (status %d): %s", resp.StatusCode, errResp.Msg)
			}
			if errResp.ErrorDescription != "" {
				return fmt.Errorf("auth service (status %d): %s", resp.StatusCode, errResp.ErrorDescription)
			}
		}
		return fmt.Errorf("auth service: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
