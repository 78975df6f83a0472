package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"doctor-directory/config"

	"github.com/sirupsen/logrus"
)

// ErrUnexpectedStatus matches every StatusError.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// StatusError reports a non-2xx answer from the directory endpoint.
type StatusError struct {
	StatusCode int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d - %s", e.StatusCode, e.StatusText)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Client fetches the raw doctor records from the directory endpoint.
type Client struct {
	httpClient *http.Client
	sourceURL  string
	log        *logrus.Logger
}

func NewClient(cfg config.DirectoryConfig, log *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		sourceURL:  cfg.SourceURL,
		log:        log,
	}
}

// FetchRecords issues a single GET and decodes the records. The body may be
// a top-level array or an object with a "doctors" array; any other JSON
// shape is logged and yields no records without an error. Transport
// failures, non-2xx statuses and undecodable bodies are errors.
func (c *Client) FetchRecords(ctx context.Context) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}

	var payload any
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode directory payload: %w", err)
	}

	return c.extractRecords(payload), nil
}

func (c *Client) extractRecords(payload any) []map[string]any {
	list, ok := payload.([]any)
	if !ok {
		if object, isObject := payload.(map[string]any); isObject {
			list, ok = object["doctors"].([]any)
		}
	}

	if !ok {
		c.log.WithField("payload_kind", jsonKind(payload)).
			Warn("Fetched data did not contain a 'doctors' array or was not an array itself")
		return []map[string]any{}
	}

	records := make([]map[string]any, 0, len(list))
	for i, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			c.log.WithField("index", i).Warnf("Skipping directory entry of kind %s", jsonKind(item))
			continue
		}
		records = append(records, record)
	}
	return records
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
