package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/storage"
)

const tracerName = "github.com/vovakirdan/playzone/internal/leaderboard"

// HTTPClient talks to a PostgREST style table at {URL}/rest/v1/{table}.
type HTTPClient struct {
	endpoint string
	key      string
	timeout  time.Duration
	client   *http.Client
	tracer   trace.Tracer
}

// NewHTTPClient creates a client for cfg. A nil client uses
// http.DefaultClient.
func NewHTTPClient(cfg config.SyncConfig, client *http.Client) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	table := cfg.Table
	if table == "" {
		table = "leaderboard"
	}
	return &HTTPClient{
		endpoint: strings.TrimRight(cfg.URL, "/") + "/rest/v1/" + url.PathEscape(table),
		key:      cfg.Key,
		timeout:  cfg.Timeout,
		client:   client,
		tracer:   otel.Tracer(tracerName),
	}
}

// Upsert inserts r or merges it into the row with the same id.
func (c *HTTPClient) Upsert(ctx context.Context, r Record) (err error) {
	ctx, span := c.tracer.Start(ctx, "leaderboard.Upsert",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("leaderboard.id", r.ID)))
	defer func() { endSpan(span, err) }()

	body, err := json.Marshal([]Record{r})
	if err != nil {
		return fmt.Errorf("leaderboard: cannot encode record: %w", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?on_conflict=id", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: build upsert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: upsert request: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode/100 != 2 {
		return statusError("upsert", resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Top returns up to limit records ordered by sortBy descending.
func (c *HTTPClient) Top(ctx context.Context, sortBy string, limit int) (records []Record, err error) {
	if !storage.ValidSortKey(sortBy) {
		return nil, fmt.Errorf("leaderboard: invalid sort %q", sortBy)
	}
	if limit <= 0 {
		limit = 10
	}

	ctx, span := c.tracer.Start(ctx, "leaderboard.Top",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("leaderboard.sort", sortBy),
			attribute.Int("leaderboard.limit", limit),
		))
	defer func() { endSpan(span, err) }()

	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", sortBy+".desc")
	q.Set("limit", strconv.Itoa(limit))

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build top request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: top request: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("top", resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("leaderboard: decode top response: %w", err)
	}
	span.SetAttributes(attribute.Int("leaderboard.rows", len(records)))
	return records, nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
}

func (c *HTTPClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func statusError(op string, resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if len(msg) > 0 {
		return fmt.Errorf("leaderboard: %s returned %s: %s", op, resp.Status, bytes.TrimSpace(msg))
	}
	return fmt.Errorf("leaderboard: %s returned %s", op, resp.Status)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
