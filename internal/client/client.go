// Package client fetches humidity readings from the public readings API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katiamach/humidity-dashboard/internal/logger"
	"github.com/katiamach/humidity-dashboard/internal/model"
)

// Client errors.
var (
	ErrFetch  = errors.New("failed to fetch readings")
	ErrDecode = errors.New("failed to decode readings response")
)

// Client is a readings API client.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates new Client. A nil httpClient means http.DefaultClient.
func New(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// response mirrors the API body; paths are kept raw so that a malformed
// part degrades to empty instead of failing the whole decode.
type response struct {
	Data json.RawMessage `json:"data"`
}

type dataBody struct {
	Stations    json.RawMessage `json:"stations"`
	Readings    json.RawMessage `json:"readings"`
	ReadingUnit json.RawMessage `json:"readingUnit"`
}

type readingsSet struct {
	Timestamp json.RawMessage `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// FetchReadings performs a single GET and extracts stations and the latest readings.
// Missing or malformed stations or readings are returned as empty slices;
// malformed elements inside them are skipped.
func (c *Client) FetchReadings(ctx context.Context) (*model.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	var res response
	err = json.NewDecoder(resp.Body).Decode(&res)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return parsePayload(&res), nil
}

func parsePayload(res *response) *model.Payload {
	payload := &model.Payload{
		Stations: []model.Station{},
		Readings: []model.Reading{},
	}

	var data dataBody
	if len(res.Data) == 0 || string(res.Data) == "null" {
		logger.Warn("readings response has no data field")
		return payload
	}
	if err := json.Unmarshal(res.Data, &data); err != nil {
		logger.WithFields(logger.Fields{"path": "data"}).Warnf("ignoring malformed field: %v", err)
		return payload
	}

	payload.Stations = decodeEach[model.Station](data.Stations, "data.stations")

	if err := decodeOptional(data.ReadingUnit, &payload.Unit); err != nil {
		payload.Unit = ""
	}

	var sets []json.RawMessage
	if err := decodeOptional(data.Readings, &sets); err != nil {
		logger.WithFields(logger.Fields{"path": "data.readings"}).Warnf("ignoring malformed field: %v", err)
		return payload
	}
	if len(sets) == 0 {
		return payload
	}

	var latest readingsSet
	if err := decodeOptional(sets[0], &latest); err != nil {
		logger.WithFields(logger.Fields{"path": "data.readings[0]"}).Warnf("ignoring malformed field: %v", err)
		return payload
	}

	if err := decodeOptional(latest.Timestamp, &payload.Timestamp); err != nil {
		payload.Timestamp = ""
	}
	payload.Readings = decodeEach[model.Reading](latest.Data, "data.readings[0].data")

	return payload
}

// decodeEach decodes a JSON array element by element, skipping elements that
// don't fit T. A missing or non-array value gives an empty slice.
func decodeEach[T any](raw json.RawMessage, path string) []T {
	var elems []json.RawMessage
	if err := decodeOptional(raw, &elems); err != nil {
		logger.WithFields(logger.Fields{"path": path}).Warnf("ignoring malformed field: %v", err)
		return []T{}
	}

	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		if string(elem) == "null" {
			continue
		}

		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			logger.WithFields(logger.Fields{"path": path, "index": i}).Warnf("skipping malformed element: %v", err)
			continue
		}
		out = append(out, v)
	}

	return out
}

// decodeOptional leaves v untouched when raw is absent or null.
func decodeOptional(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}
