package oauth

import (
	"context"
	"net/http"
	"strings"

	"wcl_rankings/share"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type AccessToken struct {
	Value     string
	TokenType string
}

// Header is the Authorization header value for the token.
func (t *AccessToken) Header() string {
	return t.TokenType + " " + t.Value
}

// Client exchanges client credentials for a bearer token. Each call to Token
// performs exactly one request; tokens are not cached or refreshed.
type Client struct {
	cfg        clientcredentials.Config
	httpClient *http.Client
}

func New(clientID string, clientSecret string, tokenURL string, hc *http.Client) *Client {
	return &Client{
		cfg: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		httpClient: hc,
	}
}

func (c *Client) Token(ctx context.Context) (*AccessToken, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return nil, errors.Wrap(share.ErrAuth, "client id and client secret are required")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	tok, err := c.cfg.Token(ctx)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			status := 0
			if re.Response != nil {
				status = re.Response.StatusCode
			}
			return nil, errors.Wrapf(
				share.ErrAuth,
				"token endpoint returned %d: %s",
				status, strings.TrimSpace(string(re.Body)),
			)
		}
		return nil, share.WrapKind(share.ErrAuth, err, "token exchange")
	}

	// Type() maps an empty or lower case "bearer" to "Bearer".
	tokenType := tok.Type()
	if tokenType != "Bearer" {
		return nil, errors.Wrapf(share.ErrAuth, "unsupported token type %q", tok.TokenType)
	}

	return &AccessToken{
		Value:     tok.AccessToken,
		TokenType: tokenType,
	}, nil
}
