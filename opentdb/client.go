package opentdb

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Version is reported in the default user agent
const Version = "1.0.0"

const (
	// DefaultBaseURL is the public Open Trivia Database
	DefaultBaseURL = "https://opentdb.com"

	// DefaultTimeout bounds each HTTP call
	DefaultTimeout = 30 * time.Second

	// MinAmount and MaxAmount bound the number of questions per request
	MinAmount = 1
	MaxAmount = 50
)

// DefaultUserAgent identifies this client to the service
var DefaultUserAgent = "trivia/" + Version

const (
	questionPath      = "/api.php"
	tokenPath         = "/api_token.php"
	categoryPath      = "/api_category.php"
	categoryCountPath = "/api_count.php"
	globalCountPath   = "/api_count_global.php"
)

// Difficulty and type values accepted by GetQuestions
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	TypeMultiple = "multiple"
	TypeBoolean  = "boolean"
)

var (
	difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
	types        = []string{TypeMultiple, TypeBoolean}
)

// Category is one entry of the service's category list
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Query narrows a GetQuestions call. Empty fields are not sent.
type Query struct {
	Category   string
	Difficulty string
	Type       string
}

// Client talks to the Open Trivia Database and owns a session token.
//
// The token is replaced or reset by GetQuestions when the service rejects it,
// so a Client must not be used by concurrent callers without external locking.
// The category table is loaded once and never changes.
type Client struct {
	transport *transport
	logger    zerolog.Logger

	token       string
	categories  []Category
	categoryIDs map[string]int
}

type tokenResponse struct {
	Token string `json:"token"`
}

type categoriesResponse struct {
	TriviaCategories []Category `json:"trivia_categories"`
}

type questionsResponse struct {
	Results []RawQuestion `json:"results"`
}

// NewClient requests a session token and loads the category table.
// Failures from either step are returned as is.
func NewClient(ctx context.Context, logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	c := &Client{
		transport: &transport{
			baseURL:    strings.TrimRight(o.baseURL, "/"),
			userAgent:  o.userAgent,
			httpClient: httpClient,
			logger:     logger,
		},
		logger: logger,
	}

	token, err := c.acquireToken(ctx, false)
	if err != nil {
		return nil, err
	}
	c.token = token

	if err := c.loadCategories(ctx); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("categories", len(c.categories)).
		Msg("Open Trivia DB client ready")

	return c, nil
}

// acquireToken requests a new token, or resets the current one when reset is set
func (c *Client) acquireToken(ctx context.Context, reset bool) (string, error) {
	params := url.Values{}
	if reset {
		params.Set("command", "reset")
		params.Set("token", c.token)
	} else {
		params.Set("command", "request")
	}

	var resp tokenResponse
	if err := c.transport.fetch(ctx, tokenPath, params, true, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", newParseError("Token response has no token.", nil)
	}

	return resp.Token, nil
}

func (c *Client) loadCategories(ctx context.Context) error {
	var resp categoriesResponse
	if err := c.transport.fetch(ctx, categoryPath, nil, false, &resp); err != nil {
		return err
	}

	c.categories = resp.TriviaCategories
	c.categoryIDs = make(map[string]int, len(resp.TriviaCategories))
	for _, cat := range resp.TriviaCategories {
		c.categoryIDs[cat.Name] = cat.ID
	}

	return nil
}

// Token returns the current session token
func (c *Client) Token() string {
	return c.token
}

// Categories returns the category names in the order the service listed them
func (c *Client) Categories() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// CategoryID resolves a category name to its id
func (c *Client) CategoryID(name string) (int, bool) {
	id, ok := c.categoryIDs[name]
	return id, ok
}

// Difficulties returns the accepted difficulty values
func (c *Client) Difficulties() []string {
	return slices.Clone(difficulties)
}

// Types returns the accepted question types
func (c *Client) Types() []string {
	return slices.Clone(types)
}

// GetQuestions fetches amount questions matching q.
//
// If the service reports the token as unknown, a new token is requested and
// the call is retried once. If it reports the token as exhausted, the token is
// reset and the call is retried once. A failure on the retry is returned as is.
func (c *Client) GetQuestions(ctx context.Context, amount int, q Query) ([]Question, error) {
	params, err := c.questionParams(amount, q)
	if err != nil {
		return nil, err
	}

	resp, err := c.fetchQuestions(ctx, params)
	switch KindOf(err) {
	case KindTokenNotFound:
		c.logger.Warn().Msg("Session token not found, requesting a new one")
		if err := c.refreshToken(ctx, false); err != nil {
			return nil, err
		}
		resp, err = c.fetchQuestions(ctx, params)
	case KindTokenEmpty:
		c.logger.Warn().Msg("Session token exhausted, resetting it")
		if err := c.refreshToken(ctx, true); err != nil {
			return nil, err
		}
		resp, err = c.fetchQuestions(ctx, params)
	}
	if err != nil {
		return nil, err
	}

	questions := make([]Question, len(resp.Results))
	for i, raw := range resp.Results {
		questions[i] = NewQuestion(raw)
	}

	c.logger.Debug().
		Int("requested", amount).
		Int("received", len(questions)).
		Msg("Retrieved questions")

	return questions, nil
}

// questionParams validates the arguments and builds the query without the token
func (c *Client) questionParams(amount int, q Query) (url.Values, error) {
	if amount < MinAmount || amount > MaxAmount {
		return nil, &ArgumentError{
			Argument: "amount",
			Value:    amount,
			Reason:   fmt.Sprintf("must be between %d and %d", MinAmount, MaxAmount),
		}
	}

	params := url.Values{}
	params.Set("amount", strconv.Itoa(amount))

	if q.Category != "" {
		id, err := c.resolveCategory(q.Category)
		if err != nil {
			return nil, err
		}
		params.Set("category", strconv.Itoa(id))
	}

	if q.Difficulty != "" {
		if !slices.Contains(difficulties, q.Difficulty) {
			return nil, &ArgumentError{
				Argument: "difficulty",
				Value:    q.Difficulty,
				Reason:   "must be one of " + strings.Join(difficulties, ", "),
			}
		}
		params.Set("difficulty", q.Difficulty)
	}

	if q.Type != "" {
		if !slices.Contains(types, q.Type) {
			return nil, &ArgumentError{
				Argument: "type",
				Value:    q.Type,
				Reason:   "must be one of " + strings.Join(types, ", "),
			}
		}
		params.Set("type", q.Type)
	}

	return params, nil
}

func (c *Client) resolveCategory(name string) (int, error) {
	id, ok := c.categoryIDs[name]
	if !ok {
		return 0, &ArgumentError{
			Argument: "category",
			Value:    name,
			Reason:   "not a known category",
		}
	}
	return id, nil
}

// fetchQuestions sends params with the current token
func (c *Client) fetchQuestions(ctx context.Context, params url.Values) (*questionsResponse, error) {
	withToken := maps.Clone(params)
	withToken.Set("token", c.token)

	var resp questionsResponse
	if err := c.transport.fetch(ctx, questionPath, withToken, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) refreshToken(ctx context.Context, reset bool) error {
	token, err := c.acquireToken(ctx, reset)
	if err != nil {
		return err
	}
	c.token = token
	return nil
}
