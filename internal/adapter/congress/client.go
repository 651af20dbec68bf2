package congress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"robotreadme/internal/domain"
)

// Client queries the congress.gov v3 API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// Options configures NewClient.
type Options struct {
	BaseURL        string
	APIKeyEnv      string
	RequestsPerSec float64
	Timeout        time.Duration
	Logger         *zap.Logger
}

func NewClient(opts Options) (*Client, error) {
	apiKey := os.Getenv(opts.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("API key not found in environment variable: %s", opts.APIKeyEnv)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	limit := rate.Inf
	if opts.RequestsPerSec > 0 {
		limit = rate.Limit(opts.RequestsPerSec)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}, nil
}

// flexString accepts both JSON strings and numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(data) == "null" {
		return nil
	}
	*f = flexString(data)
	return nil
}

type latestAction struct {
	ActionDate string `json:"actionDate"`
	Text       string `json:"text"`
}

type subjects struct {
	LegislativeSubjects []struct {
		Name string `json:"name"`
	} `json:"legislativeSubjects"`
}

type billRecord struct {
	Congress       int           `json:"congress"`
	Type           string        `json:"type"`
	BillType       string        `json:"billType"`
	Number         flexString    `json:"number"`
	BillNumber     flexString    `json:"billNumber"`
	Title          string        `json:"title"`
	IntroducedDate string        `json:"introducedDate"`
	EnactedDate    string        `json:"enactedDate"`
	LatestAction   *latestAction `json:"latestAction"`
	Subjects       *subjects     `json:"subjects"`
}

type summaryRecord struct {
	UpdateDate string      `json:"updateDate"`
	Text       string      `json:"text"`
	Bill       *billRecord `json:"bill"`
}

func (b *billRecord) billType() string {
	if b.Type != "" {
		return b.Type
	}
	return b.BillType
}

func (b *billRecord) number() string {
	if b.Number != "" {
		return string(b.Number)
	}
	return string(b.BillNumber)
}

func (b *billRecord) subjectNames() []string {
	if b.Subjects == nil {
		return nil
	}
	names := make([]string, 0, len(b.Subjects.LegislativeSubjects))
	for _, s := range b.Subjects.LegislativeSubjects {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

func (b *billRecord) toBill() *domain.Bill {
	bill := &domain.Bill{
		Congress:     b.Congress,
		Type:         b.billType(),
		Number:       b.number(),
		Title:        b.Title,
		IntroducedOn: b.IntroducedDate,
		Subjects:     b.subjectNames(),
	}
	if b.LatestAction != nil {
		bill.LatestAction = &domain.LatestAction{
			ActionDate: b.LatestAction.ActionDate,
			Text:       b.LatestAction.Text,
		}
	}
	return bill
}

func (c *Client) CurrentCongress(ctx context.Context) (int, error) {
	var resp struct {
		Congress struct {
			Number int `json:"number"`
		} `json:"congress"`
	}
	found, err := c.get(ctx, "/congress/current", nil, &resp)
	if err != nil {
		return 0, err
	}
	if !found || resp.Congress.Number == 0 {
		return 0, fmt.Errorf("current congress not available")
	}
	return resp.Congress.Number, nil
}

func (c *Client) Bill(ctx context.Context, congress int, billType, number string) (*domain.Bill, error) {
	var resp struct {
		Bill *billRecord `json:"bill"`
	}
	found, err := c.get(ctx, billPath(congress, billType, number), nil, &resp)
	if err != nil {
		return nil, err
	}
	if !found || resp.Bill == nil {
		return nil, nil
	}
	return resp.Bill.toBill(), nil
}

func (c *Client) BillSummaries(ctx context.Context, congress int, billType, number string) ([]domain.BillSummary, error) {
	var resp struct {
		Summaries []summaryRecord `json:"summaries"`
	}
	found, err := c.get(ctx, billPath(congress, billType, number)+"/summaries", nil, &resp)
	if err != nil || !found {
		return nil, err
	}
	out := make([]domain.BillSummary, 0, len(resp.Summaries))
	for _, s := range resp.Summaries {
		out = append(out, domain.BillSummary{UpdateDate: s.UpdateDate, Text: s.Text})
	}
	return out, nil
}

func (c *Client) SearchSummaries(ctx context.Context, query string, limit int) ([]domain.SummaryHit, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("sort", "updateDate desc")
	params.Set("limit", strconv.Itoa(limit))

	var resp struct {
		Summaries []summaryRecord `json:"summaries"`
	}
	found, err := c.get(ctx, "/summaries", params, &resp)
	if err != nil || !found {
		return nil, err
	}

	out := make([]domain.SummaryHit, 0, len(resp.Summaries))
	for _, s := range resp.Summaries {
		hit := domain.SummaryHit{UpdateDate: s.UpdateDate, Text: s.Text}
		if s.Bill != nil {
			hit.Congress = s.Bill.Congress
			hit.BillType = s.Bill.billType()
			hit.BillNumber = s.Bill.number()
			hit.Title = s.Bill.Title
		}
		out = append(out, hit)
	}
	return out, nil
}

func (c *Client) Laws(ctx context.Context, congress, limit int) ([]domain.Law, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var resp struct {
		Bills []billRecord `json:"bills"`
	}
	found, err := c.get(ctx, fmt.Sprintf("/law/%d", congress), params, &resp)
	if err != nil || !found {
		return nil, err
	}

	out := make([]domain.Law, 0, len(resp.Bills))
	for _, b := range resp.Bills {
		law := domain.Law{
			Congress:  b.Congress,
			Type:      b.billType(),
			Number:    b.number(),
			Title:     b.Title,
			EnactedOn: b.EnactedDate,
			Subjects:  b.subjectNames(),
		}
		if law.EnactedOn == "" && b.LatestAction != nil {
			law.EnactedOn = b.LatestAction.ActionDate
		}
		out = append(out, law)
	}
	return out, nil
}

func billPath(congress int, billType, number string) string {
	return fmt.Sprintf("/bill/%d/%s/%s", congress, url.PathEscape(strings.ToLower(billType)), url.PathEscape(number))
}

// get decodes the JSON response of path into out. A 404 reports found=false
// without error.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("congress request", zap.String("path", path))
	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("API returned status %d for %s: %s", resp.StatusCode, path, preview(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("failed to parse response (body: %s): %w", preview(body), err)
	}
	return true, nil
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
