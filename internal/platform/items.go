package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// getItems loads a list endpoint. Both a bare JSON array and an object wrapping
// the array under "items", "data" or wrapKey are accepted.
func (c *Client) getItems(ctx context.Context, path, wrapKey string) ([]any, error) {
	var payload any
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}

	return unwrapItems(payload, wrapKey)
}

func unwrapItems(payload any, wrapKey string) ([]any, error) {
	switch v := payload.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case map[string]any:
		for _, key := range []string{wrapKey, "items", "data"} {
			if key == "" {
				continue
			}
			if items, ok := v[key].([]any); ok {
				return items, nil
			}
		}
	}

	return nil, fmt.Errorf("%s: expected a list", msgInvalidResponse)
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	resp, err := c.Do(ctx, path, &Request{Method: http.MethodGet})
	if err != nil {
		return err
	}

	return decodeJSON(resp, target)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, target any) error {
	req := &Request{Method: method}
	if payload != nil {
		body, err := JSONBody(payload)
		if err != nil {
			return err
		}
		req.Body = body
	}

	resp, err := c.Do(ctx, path, req)
	if err != nil {
		return err
	}

	return decodeJSON(resp, target)
}

// decodeJSON closes the body. A nil target or an empty body decodes to nothing.
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if target == nil || len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%s: %w", msgInvalidResponse, err)
	}

	return nil
}

// decodeItems maps loosely typed JSON onto typed structs. Numeric ids become
// strings and date strings become time.Time.
func decodeItems(input any, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       timeHook,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("%s: %w", msgInvalidResponse, err)
	}

	return nil
}

func timeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Time{}) || from.Kind() != reflect.String {
		return data, nil
	}

	s := strings.TrimSpace(data.(string))
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return nil, fmt.Errorf("unsupported time format %q", s)
}
