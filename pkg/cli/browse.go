package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/gosonic/gosonic/pkg/cli/config"
	"github.com/gosonic/gosonic/pkg/domain/model"
	"github.com/gosonic/gosonic/pkg/usecase"
)

func cmdFolders() *cli.Command {
	var (
		serverCfg config.Subsonic
		asJSON    bool
	)

	flags := append(serverCfg.Flags(), jsonFlag(&asJSON))

	return &cli.Command{
		Name:  "folders",
		Usage: "List configured top-level music folders",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := serverCfg.NewClient()
			if err != nil {
				return err
			}

			folders, err := usecase.NewBrowse(client).MusicFolders(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(folders)
			}
			printFolders(folders)
			return nil
		},
	}
}

func cmdIndexes() *cli.Command {
	var (
		serverCfg       config.Subsonic
		asJSON          bool
		musicFolderID   string
		ifModifiedSince int64
	)

	flags := append(serverCfg.Flags(),
		jsonFlag(&asJSON),
		&cli.StringFlag{
			Name:        "music-folder-id",
			Usage:       "Only return artists in the music folder with the given ID",
			Destination: &musicFolderID,
		},
		&cli.Int64Flag{
			Name:        "if-modified-since",
			Usage:       "Only return a result if the collection changed since this time (ms since epoch)",
			Destination: &ifModifiedSince,
		},
	)

	return &cli.Command{
		Name:  "indexes",
		Usage: "List folder-organized artists grouped by index letter",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := serverCfg.NewClient()
			if err != nil {
				return err
			}

			q := &model.IndexesQuery{
				MusicFolderID:   musicFolderID,
				IfModifiedSince: ifModifiedSince,
			}
			indexes, err := usecase.NewBrowse(client).Indexes(ctx, q)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(indexes)
			}
			printIndexes(indexes)
			return nil
		},
	}
}

func cmdDirectory() *cli.Command {
	var (
		serverCfg config.Subsonic
		asJSON    bool
	)

	flags := append(serverCfg.Flags(), jsonFlag(&asJSON))

	return &cli.Command{
		Name:      "directory",
		Usage:     "List all entries of a music directory",
		ArgsUsage: "<id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return goerr.New("directory id is required")
			}

			client, err := serverCfg.NewClient()
			if err != nil {
				return err
			}

			dir, err := usecase.NewBrowse(client).Directory(ctx, id)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(dir)
			}
			printDirectory(dir)
			return nil
		},
	}
}

func cmdArtists() *cli.Command {
	var (
		serverCfg     config.Subsonic
		asJSON        bool
		musicFolderID string
	)

	flags := append(serverCfg.Flags(),
		jsonFlag(&asJSON),
		&cli.StringFlag{
			Name:        "music-folder-id",
			Usage:       "Only return artists in the music folder with the given ID",
			Destination: &musicFolderID,
		},
	)

	return &cli.Command{
		Name:  "artists",
		Usage: "List ID3-organized artists grouped by index letter",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := serverCfg.NewClient()
			if err != nil {
				return err
			}

			artists, err := usecase.NewBrowse(client).Artists(ctx, musicFolderID)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(artists)
			}
			printArtists(artists)
			return nil
		},
	}
}

func cmdGenres() *cli.Command {
	var (
		serverCfg config.Subsonic
		asJSON    bool
	)

	flags := append(serverCfg.Flags(), jsonFlag(&asJSON))

	return &cli.Command{
		Name:  "genres",
		Usage: "List all genres",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := serverCfg.NewClient()
			if err != nil {
				return err
			}

			genres, err := usecase.NewBrowse(client).Genres(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(genres)
			}
			printGenres(genres)
			return nil
		},
	}
}
