package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"timereport/internal/domain"
	"timereport/internal/errors"
	"timereport/internal/logging"
)

const dateFormat = "2006-01-02"

// Client is an HTTP implementation of Source talking to the tracker
// service's JSON API. Login must succeed before any other call.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a tracker service client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type taskRecord struct {
	Login   string `json:"login"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Seconds int64  `json:"seconds"`
	Text    string `json:"text"`
	Story   string `json:"story"`
}

type tasksResponse struct {
	Tasks []taskRecord `json:"tasks"`
}

type projectRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type customerRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type userRecord struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// Login establishes a session with the tracker service. Failure is fatal
// for the invocation; there are no retries.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return errors.NewUpstreamError("login", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return errors.NewUpstreamError("login", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewUpstreamError("login", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.NewUpstreamError("login", fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.NewUpstreamError("login", err)
	}

	c.token = result.Token
	return nil
}

// TasksInRange fetches tasks in [start, end] matching the filter. Filter
// criteria travel as query parameters so the service does the matching.
func (c *Client) TasksInRange(ctx context.Context, start, end time.Time, filter domain.Filter) ([]domain.Task, error) {
	params := url.Values{}
	params.Set("start", start.Format(dateFormat))
	params.Set("end", end.Format(dateFormat))
	if filter.Project != nil {
		params.Set("project", fmt.Sprintf("%d", filter.Project.ID))
	}
	if filter.Customer != nil {
		params.Set("customer", fmt.Sprintf("%d", filter.Customer.ID))
	}
	if filter.User != nil {
		params.Set("user", filter.User.Login)
	}

	var result tasksResponse
	if err := c.getJSON(ctx, "/api/tasks?"+params.Encode(), "fetch tasks", &result); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(result.Tasks))
	for _, rec := range result.Tasks {
		date, err := time.ParseInLocation(dateFormat, rec.Date, time.UTC)
		if err != nil {
			return nil, errors.NewUpstreamError("fetch tasks", fmt.Errorf("bad task date %q: %w", rec.Date, err))
		}
		tasks = append(tasks, domain.Task{
			User:   domain.User{Login: rec.Login, Name: rec.Name},
			Date:   date,
			Length: time.Duration(rec.Seconds) * time.Second,
			Text:   rec.Text,
			Story:  rec.Story,
		})
	}

	logging.Debugf("fetched %d tasks from %s\n", len(tasks), c.baseURL)
	return tasks, nil
}

// Projects returns all projects known to the service
func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var records []projectRecord
	if err := c.getJSON(ctx, "/api/projects", "fetch projects", &records); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, domain.Project{ID: rec.ID, Name: rec.Name})
	}
	return projects, nil
}

// Customers returns all customers known to the service
func (c *Client) Customers(ctx context.Context) ([]domain.Customer, error) {
	var records []customerRecord
	if err := c.getJSON(ctx, "/api/customers", "fetch customers", &records); err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(records))
	for _, rec := range records {
		customers = append(customers, domain.Customer{ID: rec.ID, Name: rec.Name})
	}
	return customers, nil
}

// Users returns all users known to the service
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var records []userRecord
	if err := c.getJSON(ctx, "/api/users", "fetch users", &records); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, domain.User{Login: rec.Login, Name: rec.Name})
	}
	return users, nil
}

// getJSON performs an authenticated GET and decodes the JSON response
func (c *Client) getJSON(ctx context.Context, path string, operation string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.NewUpstreamError(operation, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewUpstreamError(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.NewUpstreamError(operation, fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewUpstreamError(operation, err)
	}
	return nil
}
