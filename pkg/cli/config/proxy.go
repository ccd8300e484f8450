package config

import "github.com/urfave/cli/v3"

// Proxy holds streaming proxy configuration
type Proxy struct {
	Addr       string
	NoScrobble bool
}

// Flags returns CLI flags for the proxy
func (c *Proxy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Proxy listen address",
			Value:       "localhost:4533",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("GOSONIC_ADDR"),
		},
		&cli.BoolFlag{
			Name:        "no-scrobble",
			Usage:       "Disable scrobble submission after streams",
			Value:       false,
			Destination: &c.NoScrobble,
			Sources:     cli.EnvVars("GOSONIC_NO_SCROBBLE"),
		},
	}
}
