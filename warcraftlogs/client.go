package warcraftlogs

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"wcl_rankings/share"
	"wcl_rankings/warcraftlogs/oauth"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const maxErrorBody = 512

type Client struct {
	apiURL     string
	httpClient *http.Client
}

func New(apiURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		apiURL:     apiURL,
		httpClient: hc,
	}
}

// Execute sends the character rankings query once and decodes the envelope.
// A response carrying GraphQL errors fails with share.ErrAPI.
func (c *Client) Execute(ctx context.Context, token *oauth.AccessToken, params QueryParams) (*Response, error) {
	if token == nil {
		return nil, errors.Wrap(share.ErrAuth, "no access token")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var buf bytes.Buffer
	err := jsoniter.NewEncoder(&buf).Encode(&requestBody{
		Query:     queryCharacterRankings,
		Variables: params.variables(),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, &buf)
	if err != nil {
		return nil, share.WrapKind(share.ErrNetwork, err, "request")
	}
	req.Header = http.Header{
		"Authorization": []string{token.Header()},
		"Content-Type":  []string{"application/json; encoding=utf-8"},
		"Accept":        []string{"application/json"},
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, share.WrapKind(share.ErrNetwork, err, "POST %s", c.apiURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.Wrapf(
			share.ErrNetwork,
			"POST %s returned %d: %s",
			c.apiURL, resp.StatusCode, strings.TrimSpace(string(detail)),
		)
	}

	var respData Response
	err = jsoniter.NewDecoder(resp.Body).Decode(&respData)
	if err == io.EOF {
		return nil, errors.Wrap(share.ErrParse, "response body: empty")
	}
	if err != nil {
		return nil, share.WrapKind(share.ErrParse, err, "response body")
	}

	if len(respData.Errors) > 0 {
		return nil, errors.Wrap(share.ErrAPI, respData.Errors[0].Message)
	}

	return &respData, nil
}
