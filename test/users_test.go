//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/healthapi/internal/misc"
	"github.com/2beens/healthapi/internal/users"
)

func (s *IntegrationTestSuite) TestVersion() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var versionResp misc.VersionResponse
	status := s.doRequest(ctx, t, http.MethodGet, "/version", "", nil, &versionResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "test-version-info", versionResp.Version)
}

func (s *IntegrationTestSuite) TestUsers_LoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	birthYear := time.Now().Year() - 30
	u := s.newLoggedInUser(ctx, t, birthYear, "male")

	var authResp users.AuthenticatedResponse
	status := s.doRequest(ctx, t, http.MethodGet, "/users/authenticated", u.Token, nil, &authResp)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, authResp.Authenticated)
	assert.Equal(t, u.ID, authResp.UserID.String())

	var ageResp users.AgeResponse
	status = s.doRequest(ctx, t, http.MethodGet, "/users/age", u.Token, nil, &ageResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 30, ageResp.Age)

	// same email again
	status = s.doRequest(ctx, t, http.MethodPost, "/users/register", "", users.RegisterRequest{
		Email:     u.Email,
		Name:      "Dup",
		Password:  "whatever-long-pass",
		BirthYear: birthYear,
		Gender:    "male",
	}, nil)
	assert.Equal(t, http.StatusConflict, status)

	status = s.doRequest(ctx, t, http.MethodPost, "/users/login", "", users.LoginRequest{
		Email:    u.Email,
		Password: "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status = s.doRequest(ctx, t, http.MethodPost, "/users/logout", u.Token, nil, nil)
	require.Equal(t, http.StatusNoContent, status)

	status = s.doRequest(ctx, t, http.MethodGet, "/users/authenticated", u.Token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestUsers_NoToken() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, p := range []string{"/training", "/bodylog", "/exercise/names"} {
		status := s.doRequest(ctx, t, http.MethodGet, p, "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status, p)
	}
	status := s.doRequest(ctx, t, http.MethodGet, "/training", "not-a-session", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
