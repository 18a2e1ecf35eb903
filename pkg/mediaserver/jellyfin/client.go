// Package jellyfin provides a mediaserver.Client implementation backed by the
// Jellyfin REST API.
package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jellyfront/pkg/domain"
	"jellyfront/pkg/mediaserver"
	"jellyfront/pkg/metrics"
	"jellyfront/pkg/serrors"
)

// maxErrorBody caps how much of an error response ends up in the error message.
const maxErrorBody = 512

// Options configures the identity the client presents to the server.
type Options struct {
	// BaseURL is the server address, e.g. https://media.example.com. A path
	// prefix (reverse proxy sub-path) is kept.
	BaseURL string
	// Token is the user access token or an API key.
	Token string
	// UserID is the user the queries are issued for.
	UserID string

	Client   string
	Device   string
	DeviceID string
	Version  string
}

// Client talks to the Jellyfin REST API and fulfills the mediaserver.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the server
	baseURL    *url.URL     // baseURL is the parsed server address
	opts       Options
}

// Ensure Client conforms to the mediaserver.Client interface at compile time.
var _ mediaserver.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client to reach the
// server described by opts.
func New(httpClient *http.Client, opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("could not parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", opts.BaseURL)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    u,
		opts:       opts,
	}, nil
}

// AuthorizationHeader builds the value of the Authorization header the server
// expects from clients.
func AuthorizationHeader(opts Options) string {
	parts := []string{
		fmt.Sprintf("Client=%q", opts.Client),
		fmt.Sprintf("Device=%q", opts.Device),
		fmt.Sprintf("DeviceId=%q", opts.DeviceID),
		fmt.Sprintf("Version=%q", opts.Version),
	}
	if opts.Token != "" {
		parts = append(parts, fmt.Sprintf("Token=%q", opts.Token))
	}

	return "MediaBrowser " + strings.Join(parts, ", ")
}

// UserViews returns the libraries of the configured user.
func (c *Client) UserViews(ctx context.Context) ([]domain.Item, error) {
	// https://api.jellyfin.org/#tag/UserViews/operation/GetUserViews
	q := url.Values{}
	q.Set("userId", c.opts.UserID)

	var res domain.ItemsResult
	if err := c.get(ctx, "views", "/UserViews", q, &res); err != nil {
		return nil, err
	}

	return res.Items, nil
}

// LatestMedia returns recently added items. The endpoint answers with a bare
// array instead of the usual envelope.
func (c *Client) LatestMedia(ctx context.Context, query mediaserver.LatestMediaQuery) ([]domain.Item, error) {
	// https://api.jellyfin.org/#tag/UserLibrary/operation/GetLatestMedia
	q := url.Values{}
	q.Set("userId", c.opts.UserID)
	setIfNotEmpty(q, "parentId", query.ParentID)
	setList(q, "includeItemTypes", query.IncludeItemTypes)
	setList(q, "fields", query.Fields)
	setLimit(q, query.Limit)

	var res []domain.Item
	if err := c.get(ctx, "latest", "/Items/Latest", q, &res); err != nil {
		return nil, err
	}

	return res, nil
}

// ResumeItems returns items the user has started but not finished.
func (c *Client) ResumeItems(ctx context.Context, query mediaserver.ResumeQuery) ([]domain.Item, error) {
	// https://api.jellyfin.org/#tag/Items/operation/GetResumeItems
	q := url.Values{}
	q.Set("userId", c.opts.UserID)
	setList(q, "mediaTypes", query.MediaTypes)
	setList(q, "fields", query.Fields)
	setLimit(q, query.Limit)

	var res domain.ItemsResult
	if err := c.get(ctx, "resume", "/UserItems/Resume", q, &res); err != nil {
		return nil, err
	}

	return res.Items, nil
}

// NextUp returns the next episode to watch of every series in progress.
func (c *Client) NextUp(ctx context.Context, query mediaserver.NextUpQuery) ([]domain.Item, error) {
	// https://api.jellyfin.org/#tag/TvShows/operation/GetNextUp
	q := url.Values{}
	q.Set("userId", c.opts.UserID)
	setIfNotEmpty(q, "seriesId", query.SeriesID)
	setList(q, "fields", query.Fields)
	setLimit(q, query.Limit)

	var res domain.ItemsResult
	if err := c.get(ctx, "nextup", "/Shows/NextUp", q, &res); err != nil {
		return nil, err
	}

	return res.Items, nil
}

// Items runs a generic item query.
func (c *Client) Items(ctx context.Context, query mediaserver.ItemsQuery) ([]domain.Item, error) {
	// https://api.jellyfin.org/#tag/Items/operation/GetItems
	q := url.Values{}
	q.Set("userId", c.opts.UserID)
	setIfNotEmpty(q, "parentId", query.ParentID)
	setList(q, "includeItemTypes", query.IncludeItemTypes)
	setList(q, "fields", query.Fields)
	setList(q, "sortBy", query.SortBy)
	if query.Recursive {
		q.Set("recursive", "true")
	}
	setLimit(q, query.Limit)

	var res domain.ItemsResult
	if err := c.get(ctx, "items", "/Items", q, &res); err != nil {
		return nil, err
	}

	return res.Items, nil
}

// Seasons returns the seasons of the given series.
func (c *Client) Seasons(ctx context.Context, seriesID string) ([]domain.Item, error) {
	// https://api.jellyfin.org/#tag/TvShows/operation/GetSeasons
	if seriesID == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "series ID is required")
	}

	q := url.Values{}
	q.Set("userId", c.opts.UserID)

	var res domain.ItemsResult
	if err := c.get(ctx, "seasons", "/Shows/"+url.PathEscape(seriesID)+"/Seasons", q, &res); err != nil {
		return nil, err
	}

	return res.Items, nil
}

// CurrentUser returns the configured user. The user is looked up by ID rather
// than through /Users/Me so that API keys, which carry no user, work too.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	// https://api.jellyfin.org/#tag/User/operation/GetUserById
	if c.opts.UserID == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "no user configured")
	}

	var res domain.User
	if err := c.get(ctx, "user", "/Users/"+url.PathEscape(c.opts.UserID), nil, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

// DownloadURL returns the direct download URL of an item, authenticated via
// the api_key query parameter.
func (c *Client) DownloadURL(itemID string) (string, bool) {
	if c.baseURL == nil || c.opts.Token == "" || itemID == "" {
		return "", false
	}

	u := c.endpoint("/Items/" + url.PathEscape(itemID) + "/Download")
	u.RawQuery = url.Values{"api_key": []string{c.opts.Token}}.Encode()

	return u.String(), true
}

// endpoint resolves path against the base URL, keeping any base path prefix.
func (c *Client) endpoint(path string) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawPath = ""

	return &u
}

// get issues a GET request and decodes a 2xx JSON body into out. Non-2xx
// responses are mapped to semantic error kinds.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	u := c.endpoint(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", AuthorizationHeader(c.opts))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send request to %s", endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serrors.With(serrors.FromHTTPStatus(resp.StatusCode),
			"%s failed with status %d: %s", endpoint, resp.StatusCode, truncate(strings.TrimSpace(string(b))))
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode %s response: %w", endpoint, err)
	}

	return nil
}

func truncate(s string) string {
	if len(s) <= maxErrorBody {
		return s
	}

	return s[:maxErrorBody] + "..."
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// setList encodes a list parameter the way the server's comma-delimited
// array binder expects it.
func setList[T ~string](q url.Values, key string, values []T) {
	if len(values) == 0 {
		return
	}

	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	q.Set(key, strings.Join(parts, ","))
}

func setLimit(q url.Values, limit int) {
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
}
