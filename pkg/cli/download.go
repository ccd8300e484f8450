package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/gosonic/gosonic/pkg/cli/config"
	"github.com/gosonic/gosonic/pkg/usecase"
)

func cmdDownload() *cli.Command {
	var (
		serverCfg config.Subsonic
		outputDir string
		parallel  int
	)

	flags := append(serverCfg.Flags(),
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Destination directory",
			Value:       ".",
			Destination: &outputDir,
		},
		&cli.IntFlag{
			Name:        "parallel",
			Usage:       "Maximum number of parallel transfers",
			Value:       4,
			Destination: &parallel,
		},
	)

	return &cli.Command{
		Name:      "download",
		Usage:     "Download media files without transcoding",
		ArgsUsage: "<id>...",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ids := c.Args().Slice()
			if len(ids) == 0 {
				return goerr.New("at least one media id is required")
			}

			client, err := serverCfg.NewClient()
			if err != nil {
				return err
			}

			uc := usecase.NewDownload(client, usecase.WithConcurrency(parallel))
			results, err := uc.DownloadAll(ctx, ids, outputDir)
			if err != nil {
				return goerr.Wrap(err, "download failed")
			}

			printDownloads(results)
			return nil
		},
	}
}
