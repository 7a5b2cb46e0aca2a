package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wcl_rankings/config"
	"wcl_rankings/share"
	"wcl_rankings/warcraftlogs"
	"wcl_rankings/warcraftlogs/oauth"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct {
	calls int
	err   error
	none  bool
}

func (f *fakeTokens) Token(ctx context.Context) (*oauth.AccessToken, error) {
	f.calls++
	if f.err != nil || f.none {
		return nil, f.err
	}
	return &oauth.AccessToken{Value: "tok", TokenType: "Bearer"}, nil
}

type fakeQuery struct {
	calls  int
	token  *oauth.AccessToken
	params warcraftlogs.QueryParams
	resp   *warcraftlogs.Response
	err    error
}

func (f *fakeQuery) Execute(ctx context.Context, token *oauth.AccessToken, params warcraftlogs.QueryParams) (*warcraftlogs.Response, error) {
	f.calls++
	f.token = token
	f.params = params
	return f.resp, f.err
}

func rankingsResponse(t *testing.T, n int) *warcraftlogs.Response {
	t.Helper()

	entries := make([]map[string]interface{}, n)
	for i := range entries {
		entries[i] = map[string]interface{}{
			"rank":   i + 1,
			"name":   fmt.Sprintf("Player%d", i+1),
			"amount": float64(1000 - i),
			"class":  "Rogue",
			"spec":   "Outlaw",
			"server": map[string]interface{}{"name": "Draenor"},
			"report": map[string]interface{}{"code": fmt.Sprintf("r%d", i+1)},
		}
	}
	inner, err := jsoniter.MarshalToString(map[string]interface{}{"rankings": entries})
	require.NoError(t, err)

	data, err := jsoniter.Marshal(map[string]interface{}{
		"worldData": map[string]interface{}{
			"encounter": map[string]interface{}{
				"name":              "Chrome King Gallywix",
				"characterRankings": inner,
			},
		},
	})
	require.NoError(t, err)
	return &warcraftlogs.Response{Data: data}
}

func testOptions(t *testing.T, tokens TokenProvider, query QueryExecutor) Options {
	return Options{
		Tokens: tokens,
		Query:  query,
		Params: warcraftlogs.QueryParams{
			EncounterID: 3016,
			Difficulty:  5,
			Metric:      "dps",
			Page:        1,
		},
		PageSize:   10,
		OutputPath: filepath.Join(t.TempDir(), "rankings.md"),
	}
}

func TestDo(t *testing.T) {
	tokens := &fakeTokens{}
	query := &fakeQuery{resp: rankingsResponse(t, 3)}
	opt := testOptions(t, tokens, query)

	result, err := Do(context.Background(), opt)
	require.NoError(t, err)

	assert.Equal(t, 1, tokens.calls)
	assert.Equal(t, 1, query.calls)
	assert.Equal(t, "tok", query.token.Value)
	assert.Equal(t, opt.Params, query.params)

	assert.Equal(t, "Chrome King Gallywix", result.EncounterName)
	assert.Len(t, result.Rows, 3)
	assert.Zero(t, result.Truncated)
	assert.True(t, strings.HasPrefix(result.Markdown, "## Top 3 DPS Rankings for Chrome King Gallywix (Mythic)\n"))

	b, err := os.ReadFile(opt.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, result.Markdown, string(b))
}

func TestDoPageSize(t *testing.T) {
	opt := testOptions(t, &fakeTokens{}, &fakeQuery{resp: rankingsResponse(t, 100)})

	result, err := Do(context.Background(), opt)
	require.NoError(t, err)

	assert.Len(t, result.Rows, 10)
	assert.Equal(t, 90, result.Truncated)
	assert.Equal(t, 10, result.Rows[9].Rank)
	assert.Contains(t, result.Markdown, "## Top 10 DPS Rankings")
}

func TestDoStopsAtFirstFailure(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		query := &fakeQuery{resp: rankingsResponse(t, 1)}
		opt := testOptions(t, &fakeTokens{err: errors.Wrap(share.ErrAuth, "denied")}, query)

		_, err := Do(context.Background(), opt)
		assert.True(t, errors.Is(err, share.ErrAuth))
		assert.Zero(t, query.calls)
		assert.NoFileExists(t, opt.OutputPath)
	})

	t.Run("no token", func(t *testing.T) {
		query := &fakeQuery{resp: rankingsResponse(t, 1)}
		opt := testOptions(t, &fakeTokens{none: true}, query)

		_, err := Do(context.Background(), opt)
		assert.True(t, errors.Is(err, share.ErrAuth))
		assert.Zero(t, query.calls)
		assert.NoFileExists(t, opt.OutputPath)
	})

	t.Run("query", func(t *testing.T) {
		opt := testOptions(t, &fakeTokens{}, &fakeQuery{err: errors.Wrap(share.ErrAPI, "Unknown encounter")})

		_, err := Do(context.Background(), opt)
		assert.True(t, errors.Is(err, share.ErrAPI))
		assert.NoFileExists(t, opt.OutputPath)
	})

	t.Run("parse", func(t *testing.T) {
		resp := &warcraftlogs.Response{Data: []byte(`{"worldData":{"encounter":{"name":"Gallywix"}}}`)}
		opt := testOptions(t, &fakeTokens{}, &fakeQuery{resp: resp})
		opt.Write = func(path string, content string) error {
			t.Error("report must not be written")
			return nil
		}

		_, err := Do(context.Background(), opt)
		assert.True(t, errors.Is(err, share.ErrParse))
		assert.NoFileExists(t, opt.OutputPath)
	})

	t.Run("write", func(t *testing.T) {
		opt := testOptions(t, &fakeTokens{}, &fakeQuery{resp: rankingsResponse(t, 2)})
		opt.OutputPath = filepath.Join(t.TempDir(), "missing", "rankings.md")

		_, err := Do(context.Background(), opt)
		assert.True(t, errors.Is(err, share.ErrIO))
	})
}

func TestDoRequiresCollaborators(t *testing.T) {
	_, err := Do(context.Background(), Options{OutputPath: "x.md"})
	assert.True(t, errors.Is(err, share.ErrConfig))
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.ClientID = "id"
	cfg.ClientSecret = "secret"

	opt := FromConfig(&cfg, nil)
	assert.NotNil(t, opt.Tokens)
	assert.NotNil(t, opt.Query)
	assert.NotNil(t, opt.Write)
	assert.Equal(t, warcraftlogs.QueryParams{EncounterID: 3016, Difficulty: 5, Metric: "dps", Page: 1}, opt.Params)
	assert.Equal(t, "Mythic", opt.DifficultyLabel)
	assert.Equal(t, 10, opt.PageSize)
	assert.Equal(t, "rankings.md", opt.OutputPath)
}
