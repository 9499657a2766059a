package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"strings"
)

const maxPages = 100

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client loads job postings from a JSON endpoint that serves them page by page.
type Client struct {
	baseURL     string
	perPage     int
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(baseURL string, perPage int) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		perPage:    perPage,
		httpClient: &http.Client{},
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// Load fetches every page and returns the postings in the order the endpoint lists them.
func (c *Client) Load(ctx context.Context) ([]models.JobPosting, error) {
	var postings []models.JobPosting

	for page := 1; page <= maxPages; page++ {
		params := PageParameters{Page: page, PerPage: c.perPage}
		if err := params.Validate(); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}

		response, err := c.getPostings(ctx, params)
		if err != nil {
			return nil, err
		}

		for _, dto := range response.Items {
			posting, err := dto.toModel()
			if err != nil {
				return nil, err
			}
			postings = append(postings, posting)
		}

		if !response.HasMore || len(response.Items) == 0 {
			return postings, nil
		}
	}

	return nil, ErrTooManyPages
}

func (c *Client) GetPosting(ctx context.Context, id string) (models.JobPosting, error) {
	body, err := c.sendRequest(ctx, http.MethodGet, c.baseURL+"/postings/"+id, nil)
	if err != nil {
		return models.JobPosting{}, err
	}

	var dto posting
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&dto); err != nil {
		return models.JobPosting{}, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return dto.toModel()
}

func (c *Client) getPostings(ctx context.Context, params PageParameters) (postingsResponse, error) {
	body, err := c.sendRequest(ctx, http.MethodGet, c.baseURL+"/postings?"+params.ToUrlParams().Encode(), nil)
	if err != nil {
		return postingsResponse{}, err
	}

	var response postingsResponse
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&response); err != nil {
		return postingsResponse{}, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return response, nil
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
