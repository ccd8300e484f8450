package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/gosonic/gosonic/pkg/domain/types"
	"github.com/gosonic/gosonic/pkg/infra/subsonic"
)

// Subsonic holds the media server connection configuration. Values can come
// from flags, environment variables, or a TOML config file; flags and env
// take precedence over the file.
type Subsonic struct {
	Server   string `toml:"server"`
	Username string `toml:"username"`
	Password string `toml:"password" masq:"secret"`

	ConfigPath string `toml:"-"`
}

// Flags returns CLI flags for the server connection
func (c *Subsonic) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "server",
			Usage:       "Subsonic server base URL (e.g. https://music.example.com)",
			Destination: &c.Server,
			Sources:     cli.EnvVars("GOSONIC_SERVER"),
		},
		&cli.StringFlag{
			Name:        "username",
			Aliases:     []string{"u"},
			Usage:       "Subsonic user name",
			Destination: &c.Username,
			Sources:     cli.EnvVars("GOSONIC_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "password",
			Aliases:     []string{"p"},
			Usage:       "Subsonic password",
			Destination: &c.Password,
			Sources:     cli.EnvVars("GOSONIC_PASSWORD"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML config file",
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("GOSONIC_CONFIG"),
		},
	}
}

// Load merges values from the config file, if one is set. Fields already
// set by flags or environment are kept.
func (c *Subsonic) Load() error {
	if c.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.T(types.ErrTagConfig), goerr.V("path", c.ConfigPath))
	}

	var fileCfg Subsonic
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.T(types.ErrTagConfig), goerr.V("path", c.ConfigPath))
	}

	if c.Server == "" {
		c.Server = fileCfg.Server
	}
	if c.Username == "" {
		c.Username = fileCfg.Username
	}
	if c.Password == "" {
		c.Password = fileCfg.Password
	}

	return nil
}

// NewClient loads the config file, validates the configuration, and builds
// a Subsonic client from it
func (c *Subsonic) NewClient(opts ...subsonic.Option) (*subsonic.Client, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}

	if c.Server == "" {
		return nil, goerr.New("server URL is required (--server, GOSONIC_SERVER or config file)", goerr.T(types.ErrTagConfig))
	}
	if c.Username == "" {
		return nil, goerr.New("username is required (--username, GOSONIC_USERNAME or config file)", goerr.T(types.ErrTagConfig))
	}
	if c.Password == "" {
		return nil, goerr.New("password is required (--password, GOSONIC_PASSWORD or config file)", goerr.T(types.ErrTagConfig))
	}

	return subsonic.New(c.Server, c.Username, c.Password, opts...)
}
