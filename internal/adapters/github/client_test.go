package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitartist/internal/domain"
	"gitartist/internal/ports"
)

// newTestClient creates a Client pointing to a test server
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	client.BaseURL, _ = client.BaseURL.Parse(server.URL + "/")

	return &Client{client: client}
}

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := NewClient("")

	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestCreateRepository_Success(t *testing.T) {
	var received github.Repository
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/user/repos" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(&github.Repository{
			CloneURL: github.String("https://github.com/me/heart.git"),
			FullName: github.String("me/heart"),
			HTMLURL:  github.String("https://github.com/me/heart"),
			Name:     github.String("heart"),
			Private:  github.Bool(true),
		})
	}))

	repo, err := client.CreateRepository(context.Background(), ports.CreateRepoParams{Name: "heart", Private: true})

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/me/heart.git", repo.CloneURL)
	assert.Equal(t, "me/heart", repo.FullName)
	assert.True(t, repo.Private)
	assert.Equal(t, "heart", received.GetName())
	assert.True(t, received.GetPrivate())
	assert.False(t, received.GetAutoInit())
	assert.Equal(t, DefaultDescription, received.GetDescription())
}

func TestCreateRepository_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
	}{
		{"unauthorized", http.StatusUnauthorized, domain.ErrHostAuth},
		{"already exists", http.StatusUnprocessableEntity, domain.ErrRepositoryExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))

			_, err := client.CreateRepository(context.Background(), ports.CreateRepoParams{Name: "heart"})

			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestCreateRepository_OtherFailuresWrapped(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))

	_, err := client.CreateRepository(context.Background(), ports.CreateRepoParams{Name: "heart"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrHostAuth)
	assert.NotErrorIs(t, err, domain.ErrRepositoryExists)
	assert.Contains(t, err.Error(), "create repository")
}
