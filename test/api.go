//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/healthapi/internal/users"
)

type testUser struct {
	ID       string
	Email    string
	Password string
	Token    string
}

// doRequest sends body as JSON, with the session token when given, and
// decodes a JSON response into out when out is not nil.
func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	t *testing.T,
	method, path, token string,
	body any,
	out any,
) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if out != nil && resp.StatusCode < http.StatusBadRequest && len(respBytes) > 0 {
		require.NoError(t, json.Unmarshal(respBytes, out), string(respBytes))
	}
	return resp.StatusCode
}

// newLoggedInUser registers a random user born in birthYear and logs them in.
func (s *IntegrationTestSuite) newLoggedInUser(ctx context.Context, t *testing.T, birthYear int, gender string) testUser {
	t.Helper()

	u := testUser{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 14),
	}

	var registered users.User
	status := s.doRequest(ctx, t, http.MethodPost, "/users/register", "", users.RegisterRequest{
		Email:     u.Email,
		Name:      gofakeit.FirstName(),
		Password:  u.Password,
		BirthYear: birthYear,
		Gender:    gender,
	}, &registered)
	require.Equal(t, http.StatusCreated, status)
	u.ID = registered.ID.String()

	var loginResp users.LoginResponse
	status = s.doRequest(ctx, t, http.MethodPost, "/users/login", "", users.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}, &loginResp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, loginResp.Token)
	require.Equal(t, u.ID, loginResp.UserID.String())
	u.Token = loginResp.Token

	return u
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func strPtr(v string) *string {
	return &v
}
