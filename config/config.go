package config

import (
	"os"
	"strings"

	"wcl_rankings/share"

	"github.com/dimchansky/utfbom"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/tkanos/gonfig"
)

const (
	DefaultEnvFile    = ".env"
	DefaultConfigFile = "config.json"
)

// Config is everything a run needs. It is built once and not mutated after Load.
type Config struct {
	ClientID     string `json:"-"`
	ClientSecret string `json:"-"`

	TokenURL string `json:"token_url" env:"WCL_TOKEN_URL"`
	APIURL   string `json:"api_url" env:"WCL_API_URL"`

	EncounterID int    `json:"encounter_id" env:"WCL_ENCOUNTER_ID"`
	Difficulty  int    `json:"difficulty" env:"WCL_DIFFICULTY"`
	Metric      string `json:"metric" env:"WCL_METRIC"`
	Page        int    `json:"page" env:"WCL_PAGE"`
	PageSize    int    `json:"page_size" env:"WCL_PAGE_SIZE"`

	OutputPath string `json:"output" env:"WCL_OUTPUT"`
}

type Options struct {
	EnvFile    string
	ConfigFile string
	OutputPath string // overrides the file and the default when set
}

// Default returns the compiled-in query: Gallywix, Mythic, dps, top 10.
func Default() Config {
	return Config{
		TokenURL:    "https://www.warcraftlogs.com/oauth/token",
		APIURL:      "https://www.warcraftlogs.com/api/v2/client",
		EncounterID: 3016,
		Difficulty:  5,
		Metric:      "dps",
		Page:        1,
		PageSize:    10,
		OutputPath:  "rankings.md",
	}
}

// Load reads the env file, the optional JSON file and the process environment.
// Any error it returns wraps share.ErrConfig.
func Load(opt Options) (*Config, error) {
	if opt.EnvFile != "" {
		if err := loadEnvFile(opt.EnvFile); err != nil {
			return nil, err
		}
	}

	// An empty file name makes gonfig apply only the WCL_* env overrides.
	cfg := Default()
	file := opt.ConfigFile
	if file != "" {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			file = ""
		} else if err != nil {
			return nil, share.WrapKind(share.ErrConfig, err, "%s", opt.ConfigFile)
		}
	}
	if err := gonfig.GetConf(file, &cfg); err != nil {
		return nil, share.WrapKind(share.ErrConfig, err, "%s", opt.ConfigFile)
	}
	if opt.OutputPath != "" {
		cfg.OutputPath = opt.OutputPath
	}

	cfg.ClientID = lookup("WCL_CLIENT_ID", "client_id")
	cfg.ClientSecret = lookup("WCL_CLIENT_SECRET", "client_secret")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile sets variables from path that are not already in the environment.
func loadEnvFile(path string) error {
	fs, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return share.WrapKind(share.ErrConfig, err, "%s", path)
	}
	defer fs.Close()

	env, err := godotenv.Parse(utfbom.SkipOnly(fs))
	if err != nil {
		return share.WrapKind(share.ErrConfig, err, "%s", path)
	}

	for k, v := range env {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		os.Setenv(k, v)
	}
	return nil
}

func lookup(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func (c *Config) Validate() error {
	switch {
	case c.ClientID == "":
		return errors.Wrap(share.ErrConfig, "client id is not set (WCL_CLIENT_ID)")
	case c.ClientSecret == "":
		return errors.Wrap(share.ErrConfig, "client secret is not set (WCL_CLIENT_SECRET)")
	case c.TokenURL == "":
		return errors.Wrap(share.ErrConfig, "token url is empty")
	case c.APIURL == "":
		return errors.Wrap(share.ErrConfig, "api url is empty")
	case c.EncounterID <= 0:
		return errors.Wrapf(share.ErrConfig, "invalid encounter id %d", c.EncounterID)
	case !IsMetric(c.Metric):
		return errors.Wrapf(share.ErrConfig, "unknown metric %q", c.Metric)
	case c.Page != 1:
		// ranks are checked to start at 1, which only holds on the first page
		return errors.Wrapf(share.ErrConfig, "invalid page %d: only page 1 is supported", c.Page)
	case c.PageSize < 1:
		return errors.Wrapf(share.ErrConfig, "invalid page size %d", c.PageSize)
	case c.OutputPath == "":
		return errors.Wrap(share.ErrConfig, "output path is empty")
	}
	return nil
}
