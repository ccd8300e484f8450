package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gosonic/gosonic/pkg/cli/config"
	"github.com/gosonic/gosonic/pkg/usecase"
)

func cmdPing() *cli.Command {
	var (
		serverCfg config.Subsonic
		asJSON    bool
	)

	flags := append(serverCfg.Flags(), jsonFlag(&asJSON))

	return &cli.Command{
		Name:  "ping",
		Usage: "Test connectivity and credentials",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := serverCfg.NewClient()
			if err != nil {
				return err
			}

			resp, err := usecase.NewBrowse(client).Ping(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(resp)
			}
			printServerStatus(resp)
			return nil
		},
	}
}

func cmdLicense() *cli.Command {
	var (
		serverCfg config.Subsonic
		asJSON    bool
	)

	flags := append(serverCfg.Flags(), jsonFlag(&asJSON))

	return &cli.Command{
		Name:  "license",
		Usage: "Show the server's software license",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := serverCfg.NewClient()
			if err != nil {
				return err
			}

			lic, err := usecase.NewBrowse(client).GetLicense(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(lic)
			}
			printLicense(lic)
			return nil
		},
	}
}

// jsonFlag is shared by all commands that can emit raw JSON
func jsonFlag(dest *bool) cli.Flag {
	return &cli.BoolFlag{
		Name:        "json",
		Usage:       "Print raw JSON instead of formatted output",
		Destination: dest,
	}
}
