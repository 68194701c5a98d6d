package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/mauv0809/calcio/internal/league"
	"github.com/vmihailenco/msgpack/v5"
)

const contentTypeMsgpack = "application/msgpack"

// client talks MessagePack to the server's API.
type client struct {
	host string
	http *http.Client
}

func newClient(host string) *client {
	return &client{
		host: strings.TrimRight(host, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// submitResponse mirrors the body returned by the match submission endpoint.
type submitResponse struct {
	Match  *league.Match       `json:"match,omitempty"`
	Errors *league.FieldErrors `json:"errors,omitempty"`
	Form   league.Form         `json:"form"`
}

// statusError is returned when the server answers with an unexpected status.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, strings.TrimSpace(e.Body))
}

func (c *client) get(endpoint string, out any) error {
	_, err := c.do(http.MethodGet, endpoint, nil, out, http.StatusOK)
	return err
}

func (c *client) post(endpoint string, in, out any, want int) error {
	_, err := c.do(http.MethodPost, endpoint, in, out, want)
	return err
}

// record submits form and returns the recorded match. Field errors reported by
// the server are returned as an error naming each invalid field.
func (c *client) record(form league.Form) (league.Match, error) {
	var resp submitResponse
	_, err := c.do(http.MethodPost, "/api/league/matches", form, &resp, http.StatusCreated, http.StatusUnprocessableEntity)
	if err != nil {
		return league.Match{}, err
	}
	if resp.Errors != nil && resp.Errors.Any() {
		var msgs []string
		if resp.Errors.TeamA != "" {
			msgs = append(msgs, fmt.Sprintf("team A %q: %s", form.TeamA, resp.Errors.TeamA))
		}
		if resp.Errors.TeamB != "" {
			msgs = append(msgs, fmt.Sprintf("team B %q: %s", form.TeamB, resp.Errors.TeamB))
		}
		return league.Match{}, errors.New("match rejected: " + strings.Join(msgs, ", "))
	}
	if resp.Match == nil {
		return league.Match{}, errors.New("server accepted the match but returned none")
	}
	return *resp.Match, nil
}

// lastResult returns the summary of the last match, or false when none was recorded.
func (c *client) lastResult() (league.Summary, bool, error) {
	var summary league.Summary
	code, err := c.do(http.MethodGet, "/api/league/last", nil, &summary, http.StatusOK, http.StatusNoContent)
	if err != nil {
		return league.Summary{}, false, err
	}
	return summary, code == http.StatusOK, nil
}

// do sends in as MessagePack and decodes the response into out. Any status outside
// want is an error.
func (c *client) do(method, endpoint string, in, out any, want ...int) (int, error) {
	var body io.Reader
	if in != nil {
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(in); err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		body = &buf
	}

	req, err := http.NewRequest(method, c.host+endpoint, body)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", contentTypeMsgpack)
	if in != nil {
		req.Header.Set("Content-Type", contentTypeMsgpack)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	if !slices.Contains(want, resp.StatusCode) {
		return resp.StatusCode, &statusError{Code: resp.StatusCode, Body: string(data)}
	}
	if out == nil || len(data) == 0 {
		return resp.StatusCode, nil
	}

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}
