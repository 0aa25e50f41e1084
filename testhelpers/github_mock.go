package testhelpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	mu sync.Mutex

	// PRs maps head branch names to their open pull requests
	PRs map[string][]*github.PullRequest
	// CreatedPRs stores PRs that were created (for testing)
	CreatedPRs []*github.PullRequest
	// Labels maps PR numbers to the labels added to them
	Labels map[int][]string
	// ErrorResponses maps "METHOD path" to a status code the server answers with
	ErrorResponses map[string]int
	// Login is returned by GET /user; Token, when set, must be presented as a bearer token
	Login string
	Token string
	// Owner and Repo for the mock server
	Owner string
	Repo  string
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		PRs:            make(map[string][]*github.PullRequest),
		CreatedPRs:     make([]*github.PullRequest, 0),
		Labels:         make(map[int][]string),
		ErrorResponses: make(map[string]int),
		Login:          "octocat",
		Owner:          "owner",
		Repo:           "repo",
	}
}

// AddPR registers an existing open pull request for a head branch
func (c *MockGitHubServerConfig) AddPR(head, base string, number int) *github.PullRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	pr := &github.PullRequest{
		Number:  github.Int(number),
		Title:   github.String(head),
		Head:    &github.PullRequestBranch{Ref: github.String(head)},
		Base:    &github.PullRequestBranch{Ref: github.String(base)},
		HTMLURL: github.String(fmt.Sprintf("https://github.com/%s/%s/pull/%d", c.Owner, c.Repo, number)),
	}
	c.PRs[head] = append(c.PRs[head], pr)
	return pr
}

// Created returns a snapshot of the pull requests created so far
func (c *MockGitHubServerConfig) Created() []*github.PullRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*github.PullRequest(nil), c.CreatedPRs...)
}

// LabelsFor returns the labels added to a pull request
func (c *MockGitHubServerConfig) LabelsFor(number int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.Labels[number]...)
}

// NewMockGitHubServer creates an httptest server that mocks GitHub API endpoints
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	mux := http.NewServeMux()
	repoPath := "/repos/" + config.Owner + "/" + config.Repo

	withChecks := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			config.mu.Lock()
			status, failing := config.ErrorResponses[r.Method+" "+r.URL.Path]
			token := config.Token
			config.mu.Unlock()

			if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
				return
			}
			if failing {
				writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("GET /user", withChecks(func(w http.ResponseWriter, _ *http.Request) {
		config.mu.Lock()
		login := config.Login
		config.mu.Unlock()
		writeJSON(w, http.StatusOK, &github.User{Login: github.String(login)})
	}))

	mux.HandleFunc("GET "+repoPath+"/pulls", withChecks(func(w http.ResponseWriter, r *http.Request) {
		// Extract branch name from "owner:branch" format
		head := r.URL.Query().Get("head")
		branchName := strings.TrimPrefix(head, config.Owner+":")

		config.mu.Lock()
		prs := append([]*github.PullRequest{}, config.PRs[branchName]...)
		config.mu.Unlock()

		writeJSON(w, http.StatusOK, prs)
	}))

	mux.HandleFunc("POST "+repoPath+"/pulls", withChecks(func(w http.ResponseWriter, r *http.Request) {
		var newPR github.NewPullRequest
		if err := json.NewDecoder(r.Body).Decode(&newPR); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		config.mu.Lock()
		prNumber := len(config.CreatedPRs) + 1
		pr := &github.PullRequest{
			Number:  github.Int(prNumber),
			Title:   newPR.Title,
			Body:    newPR.Body,
			Head:    &github.PullRequestBranch{Ref: newPR.Head},
			Base:    &github.PullRequestBranch{Ref: newPR.Base},
			HTMLURL: github.String(fmt.Sprintf("https://github.com/%s/%s/pull/%d", config.Owner, config.Repo, prNumber)),
		}
		config.CreatedPRs = append(config.CreatedPRs, pr)
		config.PRs[newPR.GetHead()] = append(config.PRs[newPR.GetHead()], pr)
		config.mu.Unlock()

		writeJSON(w, http.StatusCreated, pr)
	}))

	mux.HandleFunc("POST "+repoPath+"/issues/{number}/labels", withChecks(func(w http.ResponseWriter, r *http.Request) {
		number, err := strconv.Atoi(r.PathValue("number"))
		if err != nil {
			http.Error(w, "Invalid issue number", http.StatusBadRequest)
			return
		}
		var labels []string
		if err := json.NewDecoder(r.Body).Decode(&labels); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		config.mu.Lock()
		config.Labels[number] = append(config.Labels[number], labels...)
		all := append([]string(nil), config.Labels[number]...)
		config.mu.Unlock()

		result := make([]*github.Label, 0, len(all))
		for _, name := range all {
			result = append(result, &github.Label{Name: github.String(name)})
		}
		writeJSON(w, http.StatusOK, result)
	}))

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubAPIClient creates a go-github client configured to use a mock server
func NewMockGitHubAPIClient(t *testing.T, config *MockGitHubServerConfig) *github.Client {
	server := NewMockGitHubServer(t, config)
	return newAPIClientFor(server, "")
}

func newAPIClientFor(server *httptest.Server, token string) *github.Client {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL
	return client
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
