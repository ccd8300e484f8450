package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/gosonic/gosonic/pkg/domain/model"
)

var (
	headerColor = color.New(color.Bold, color.FgCyan)
	dimColor    = color.New(color.FgHiBlack)
	okColor     = color.New(color.FgGreen)
	dirColor    = color.New(color.FgBlue)
)

// printJSON renders any value as indented JSON on stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printServerStatus(resp *model.Response) {
	okColor.Print("OK")
	fmt.Printf(" server is up, protocol version %s\n", resp.Version)
}

func printLicense(lic *model.License) {
	valid := "invalid"
	if lic.Valid {
		valid = "valid"
	}
	fmt.Printf("license: %s\n", valid)
	if lic.Email != "" {
		fmt.Printf("email: %s\n", lic.Email)
	}
	if lic.LicenseExpires != "" {
		fmt.Printf("expires: %s\n", lic.LicenseExpires)
	}
}

func printFolders(folders []model.MusicFolder) {
	headerColor.Println("Music folders")
	for _, folder := range folders {
		fmt.Printf("  [%d] %s\n", folder.ID, folder.Name)
	}
}

func printIndexes(indexes *model.Indexes) {
	if indexes.LastModified > 0 {
		dimColor.Printf("last modified: %s\n",
			time.UnixMilli(indexes.LastModified).Format(time.RFC3339))
	}
	for _, index := range indexes.Index {
		headerColor.Println(index.Name)
		for _, artist := range index.Artist {
			fmt.Printf("  %s  ", artist.Name)
			dimColor.Printf("(%s)\n", artist.ID)
		}
	}
}

func printDirectory(dir *model.Directory) {
	headerColor.Println(dir.Name)
	for _, child := range dir.Child {
		if child.IsDir {
			dirColor.Printf("  %s/  ", child.Title)
			dimColor.Printf("(%s)\n", child.ID)
			continue
		}
		fmt.Printf("  %s  ", child.Title)
		if child.Duration > 0 {
			dimColor.Printf("%d:%02d  ", child.Duration/60, child.Duration%60)
		}
		dimColor.Printf("(%s)\n", child.ID)
	}
}

func printArtists(artists *model.ArtistsID3) {
	for _, index := range artists.Index {
		headerColor.Println(index.Name)
		for _, artist := range index.Artist {
			fmt.Printf("  %s  ", artist.Name)
			dimColor.Printf("%d albums (%s)\n", artist.AlbumCount, artist.ID)
		}
	}
}

func printGenres(genres []model.Genre) {
	headerColor.Println("Genres")
	for _, genre := range genres {
		fmt.Printf("  %s  ", genre.Value)
		dimColor.Printf("%d songs, %d albums\n", genre.SongCount, genre.AlbumCount)
	}
}

func printDownloads(results []*model.DownloadResult) {
	for _, result := range results {
		okColor.Print("done")
		fmt.Printf(" %s ", result.Path)
		dimColor.Printf("(%d bytes)\n", result.Size)
	}
}
