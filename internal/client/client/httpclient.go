package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mvberkel/tripdiary/internal/client/models"
)

// HTTPClient talks to the trip diary backend over its JSON REST API.
type HTTPClient struct {
	endpointURL string
	httpClient  *http.Client
	accessToken string
}

func NewHTTPClient(endpointURL string, requestTimeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpointURL: strings.TrimRight(endpointURL, "/"),
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    *models.Profile `json:"user"`
}

type profileResponse struct {
	Message string          `json:"message"`
	User    *models.Profile `json:"user"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type saveProfileRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	models.ProfileUpdate
}

type changePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type addEntryRequest struct {
	EntryID string `json:"entryId"`
	Date    string `json:"date"`
	Text    string `json:"text"`
}

// do serializes in (when non-nil) as the JSON request body, performs the
// request, and decodes a 2xx response into out (when non-nil). A failure to
// reach the server at all is wrapped as ErrUnavailable; an error status code
// is mapped to one of the rejection sentinels carrying the server's message.
func (c *HTTPClient) do(ctx context.Context, method string, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// mapStatus converts an error response to a sentinel error, keeping the
// server's message for display.
func (c *HTTPClient) mapStatus(resp *http.Response) error {
	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	default:
		sentinel = ErrRejected
	}

	var er errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&er); err == nil && er.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, er.Error)
	}
	return sentinel
}

func (c *HTTPClient) Register(ctx context.Context, email string, password string) error {
	return c.do(ctx, http.MethodPost, "/register", credentialsRequest{Email: email, Password: password}, nil)
}

// Login authenticates against the server. On success the returned access
// token is also remembered and attached to subsequent requests.
func (c *HTTPClient) Login(ctx context.Context, email string, password string) (string, *models.Profile, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/login", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}

	c.accessToken = resp.Token
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	var p models.Profile
	path := "/profile?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) SaveProfile(ctx context.Context, email string, password string, upd *models.ProfileUpdate) (*models.Profile, error) {
	req := saveProfileRequest{Email: email, Password: password}
	if upd != nil {
		req.ProfileUpdate = *upd
	}

	var resp profileResponse
	if err := c.do(ctx, http.MethodPost, "/createProfile", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, email string, password string) error {
	req := credentialsRequest{Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "/deleteAccount", req, nil)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, email string, oldPassword string, newPassword string) error {
	req := changePasswordRequest{Email: email, OldPassword: oldPassword, NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, "/changePassword", req, nil)
}

func (c *HTTPClient) ListTrips(ctx context.Context) ([]*models.Trip, error) {
	var trips []*models.Trip
	if err := c.do(ctx, http.MethodGet, "/trips", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (c *HTTPClient) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	var t models.Trip
	if err := c.do(ctx, http.MethodGet, "/trips/"+url.PathEscape(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	var created models.Trip
	if err := c.do(ctx, http.MethodPost, "/trips", trip, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) AddEntry(ctx context.Context, tripID string, entry *models.DiaryEntry) (*models.DiaryEntry, error) {
	req := addEntryRequest{EntryID: entry.EntryID, Date: entry.Date, Text: entry.Text}

	var added models.DiaryEntry
	if err := c.do(ctx, http.MethodPost, "/trips/"+url.PathEscape(tripID)+"/edit", req, &added); err != nil {
		return nil, err
	}
	return &added, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
