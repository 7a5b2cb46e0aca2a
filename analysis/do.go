package analysis

import (
	"context"
	"net/http"

	"wcl_rankings/config"
	"wcl_rankings/rankings"
	"wcl_rankings/report"
	"wcl_rankings/share"
	"wcl_rankings/warcraftlogs"
	"wcl_rankings/warcraftlogs/oauth"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type TokenProvider interface {
	Token(ctx context.Context) (*oauth.AccessToken, error)
}

type QueryExecutor interface {
	Execute(ctx context.Context, token *oauth.AccessToken, params warcraftlogs.QueryParams) (*warcraftlogs.Response, error)
}

type Options struct {
	Tokens TokenProvider
	Query  QueryExecutor
	Write  func(path string, content string) error // report.Write when nil

	Params          warcraftlogs.QueryParams
	DifficultyLabel string
	PageSize        int
	OutputPath      string
}

type Result struct {
	EncounterName string
	Rows          []rankings.Row
	Truncated     int // entries beyond PageSize
	Markdown      string
	OutputPath    string
}

// FromConfig wires the real token endpoint, GraphQL endpoint and file writer.
func FromConfig(cfg *config.Config, hc *http.Client) Options {
	return Options{
		Tokens: oauth.New(cfg.ClientID, cfg.ClientSecret, cfg.TokenURL, hc),
		Query:  warcraftlogs.New(cfg.APIURL, hc),
		Write:  report.Write,
		Params: warcraftlogs.QueryParams{
			EncounterID: cfg.EncounterID,
			Difficulty:  cfg.Difficulty,
			Metric:      cfg.Metric,
			Page:        cfg.Page,
		},
		DifficultyLabel: config.DifficultyLabel(cfg.Difficulty),
		PageSize:        cfg.PageSize,
		OutputPath:      cfg.OutputPath,
	}
}

// Do runs token -> query -> parse -> render -> write once, in that order.
// The report file is touched only after every row was normalized.
func Do(ctx context.Context, opt Options) (*Result, error) {
	if opt.Tokens == nil || opt.Query == nil {
		return nil, errors.Wrap(share.ErrConfig, "token provider and query executor are required")
	}
	if opt.OutputPath == "" {
		return nil, errors.Wrap(share.ErrConfig, "output path is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	write := opt.Write
	if write == nil {
		write = report.Write
	}
	label := opt.DifficultyLabel
	if label == "" {
		label = config.DifficultyLabel(opt.Params.Difficulty)
	}

	log.WithField("event", "token").Info("Getting access token...")
	token, err := opt.Tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, errors.Wrap(share.ErrAuth, "token provider returned no token")
	}

	log.WithFields(log.Fields{
		"event":      "query",
		"encounter":  opt.Params.EncounterID,
		"difficulty": opt.Params.Difficulty,
		"metric":     opt.Params.Metric,
		"page":       opt.Params.Page,
	}).Info("Access token received. Fetching rankings...")
	resp, err := opt.Query.Execute(ctx, token, opt.Params)
	if err != nil {
		return nil, err
	}

	page, err := rankings.Parse(resp)
	if err != nil {
		return nil, err
	}

	rows := page.Rows
	truncated := 0
	if opt.PageSize > 0 && len(rows) > opt.PageSize {
		truncated = len(rows) - opt.PageSize
		rows = rows[:opt.PageSize]
	}
	log.WithFields(log.Fields{
		"event":     "parse",
		"encounter": page.EncounterName,
		"rows":      share.Count(len(rows)),
		"truncated": truncated,
	}).Info("Rankings parsed")

	md := rankings.Render(
		rankings.Title(len(rows), opt.Params.Metric, page.EncounterName, label),
		rows,
	)

	if err := write(opt.OutputPath, md); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"event": "write",
		"path":  opt.OutputPath,
		"size":  share.Size(len(md)),
	}).Info("Rankings saved")

	return &Result{
		EncounterName: page.EncounterName,
		Rows:          rows,
		Truncated:     truncated,
		Markdown:      md,
		OutputPath:    opt.OutputPath,
	}, nil
}
