// Package sheets implements the record-store gateway against a Google
// Sheets-style values API. Token refresh is the caller's concern; the client
// only attaches the bearer token it was given.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"kioskcheckin/internal/domain"
)

type valuesClient struct {
	client        *http.Client
	baseURL       string
	spreadsheetID string
	token         string
}

// NewValuesClient returns a SheetStore backed by the spreadsheet values API
// at baseURL (e.g. "https://sheets.googleapis.com/v4").
func NewValuesClient(client *http.Client, baseURL, spreadsheetID, token string) domain.SheetStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &valuesClient{
		client:        client,
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		token:         token,
	}
}

// valueRangeBody mirrors the API's ValueRange resource.
type valueRangeBody struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}

type appendResponseBody struct {
	Updates struct {
		UpdatedRange string `json:"updatedRange"`
	} `json:"updates"`
}

func (c *valuesClient) GetRange(ctx context.Context, rangeSpec string) (*domain.ValueRange, error) {
	u := fmt.Sprintf("%s/spreadsheets/%s/values/%s",
		c.baseURL, c.spreadsheetID, url.PathEscape(rangeSpec))
	var body valueRangeBody
	if err := c.do(ctx, http.MethodGet, u, nil, &body); err != nil {
		return nil, fmt.Errorf("get range %q: %w", rangeSpec, err)
	}
	return &domain.ValueRange{Range: body.Range, Values: body.Values}, nil
}

func (c *valuesClient) AppendRows(ctx context.Context, sheetName string, rows [][]string) (string, error) {
	u := fmt.Sprintf("%s/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS",
		c.baseURL, c.spreadsheetID, url.PathEscape(sheetName))
	var resp appendResponseBody
	if err := c.do(ctx, http.MethodPost, u, &valueRangeBody{Values: rows}, &resp); err != nil {
		return "", fmt.Errorf("append to %q: %w", sheetName, err)
	}
	return resp.Updates.UpdatedRange, nil
}

func (c *valuesClient) UpdateRange(ctx context.Context, rangeSpec string, rows [][]string) error {
	u := fmt.Sprintf("%s/spreadsheets/%s/values/%s?valueInputOption=USER_ENTERED",
		c.baseURL, c.spreadsheetID, url.PathEscape(rangeSpec))
	if err := c.do(ctx, http.MethodPut, u, &valueRangeBody{Range: rangeSpec, Values: rows}, nil); err != nil {
		return fmt.Errorf("update range %q: %w", rangeSpec, err)
	}
	return nil
}

func (c *valuesClient) do(ctx context.Context, method, url string, in, out any) error {
	var reqBody *bytes.Buffer
	if in != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(in); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("store returned status %d", resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode store response: %w", err)
		}
	}
	return nil
}
