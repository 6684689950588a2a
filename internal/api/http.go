package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/credstore"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/logging"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/models"
)

// HTTPClient talks JSON (and multipart, for registration) to the EduHub
// backend. The session token is read from the credential store on every
// authenticated call, never cached here. Requests carry no client-enforced
// timeout; the transport's default applies. No call is retried.
type HTTPClient struct {
	baseURL string
	store   credstore.Store
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, store credstore.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		http:    &http.Client{},
		log:     log,
	}
}

// errorBody is the FastAPI-style error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string, authed bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if authed {
		// An absent token means the request goes out unauthenticated and
		// the backend is expected to reject it.
		token, err := c.store.Get(ctx)
		if err != nil {
			c.log.Warn(ctx, "credential store read failed", "error", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// do executes the request and normalizes failures: transport errors wrap
// ErrNetworkUnavailable, non-2xx statuses become *RequestError. On success
// the caller owns resp.Body.
func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %v", req.Method, req.URL.Path, ErrNetworkUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()

		msg := ""
		data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if readErr == nil && len(data) > 0 {
			var eb errorBody
			if json.Unmarshal(data, &eb) == nil && eb.Detail != "" {
				msg = eb.Detail
			} else {
				msg = strings.TrimSpace(string(data))
			}
		}
		return nil, &RequestError{Status: resp.StatusCode, Message: msg}
	}

	return resp, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "", true)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body), "application/json", false)
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// Only the issued token is extracted; the rest of the payload is ignored.
	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access_token")
	}

	return payload.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, form RegistrationForm) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"firstname": form.FirstName,
		"lastname":  form.LastName,
		"username":  form.Username,
		"email":     form.Email,
		"password":  form.Password,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return "", err
		}
	}

	if form.ProfilePicture != nil {
		fw, err := mw.CreateFormFile("profile_picture", form.ProfilePicture.Filename)
		if err != nil {
			return "", err
		}
		if _, err := fw.Write(form.ProfilePicture.Data); err != nil {
			return "", err
		}
	}

	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/register", &buf, mw.FormDataContentType(), false)
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode register response: %w", err)
	}

	return payload.Message, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/logout", nil, "", true)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, "/profile/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) PinnedRepos(ctx context.Context) ([]models.Repo, error) {
	var repos []models.Repo
	if err := c.getJSON(ctx, "/repo/pinned", &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

func (c *HTTPClient) DocumentCount(ctx context.Context, repoID string) (int, error) {
	var payload struct {
		Count int `json:"count"`
	}
	if err := c.getJSON(ctx, "/repo/"+repoID+"/count", &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

func (c *HTTPClient) RecentFiles(ctx context.Context) ([]models.File, error) {
	var files []models.File
	if err := c.getJSON(ctx, "/repo/recent-files", &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (c *HTTPClient) UnpinRepo(ctx context.Context, repoID string) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/repo/unpin/"+repoID, nil, "", true)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
