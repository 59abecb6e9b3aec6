// Command apibay is a small CLI over the client library: search the
// index, inspect a torrent, list its files, or pull the precompiled
// top-100 listings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"apibay"
	"apibay/categories"
	"apibay/consts"
	"apibay/logging"
	"apibay/magnet"
	"apibay/schema"
	"apibay/utils"
)

const usage = `Usage: apibay [-config path] <command> [arguments]

Commands:
  search <query> [category]   search the index
  details <id>                show one torrent
  files <id>                  list the files of a torrent
  top100 <category|all>       precompiled top-100 listing
  recent [page]               recently added torrents
  user <name> [page]          torrents uploaded by a user
  pages <name>                number of by-user pages
  version                     print build info
`

func main() {
	logging.InitLogger()

	configPath := flag.String("config", "", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load config")
	}

	var opts []apibay.Option
	if cfg.BaseURL != "" {
		opts = append(opts, apibay.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, apibay.WithTimeout(cfg.Timeout))
	}
	client := apibay.New(opts...)
	defer client.Close()

	ctx := context.Background()
	if err := run(ctx, client, cfg, args); err != nil {
		logging.Fatal().Err(err).Str("command", args[0]).Msg("Command failed")
	}
}

func run(ctx context.Context, client *apibay.Client, cfg Config, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "search":
		if len(rest) < 1 {
			return fmt.Errorf("search needs a query")
		}
		category := categories.None
		if len(rest) > 1 {
			id, err := strconv.Atoi(rest[1])
			if err != nil {
				return fmt.Errorf("invalid category %q", rest[1])
			}
			category = categories.ID(id)
		}
		torrents, err := client.Search(ctx, rest[0], category)
		if err != nil {
			return err
		}
		torrents = apibay.SortBySimilarity(torrents, rest[0])
		printTorrents(torrents)
	case "details":
		id, err := intArg(rest, 0, "torrent id")
		if err != nil {
			return err
		}
		details, err := client.Details(ctx, id)
		if err != nil {
			return err
		}
		if details == nil {
			fmt.Println("torrent not found")
			return nil
		}
		printDetails(details, cfg.Trackers)
	case "files":
		id, err := intArg(rest, 0, "torrent id")
		if err != nil {
			return err
		}
		files, err := client.FileList(ctx, id)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Printf("%10s  %s\n", utils.FormatSize(f.Size), f.Name)
		}
	case "top100":
		if len(rest) < 1 {
			return fmt.Errorf("top100 needs a category id, or \"all\"")
		}
		torrents, err := client.Top100(ctx, apibay.Top100Category(rest[0]))
		if err != nil {
			return err
		}
		printTorrents(torrents)
	case "recent":
		page := 0
		if len(rest) > 0 {
			var err error
			if page, err = strconv.Atoi(rest[0]); err != nil {
				return fmt.Errorf("invalid page %q", rest[0])
			}
		}
		torrents, err := client.Recent(ctx, page)
		if err != nil {
			return err
		}
		printTorrents(torrents)
	case "user":
		if len(rest) < 1 {
			return fmt.Errorf("user needs a username")
		}
		page := 0
		if len(rest) > 1 {
			var err error
			if page, err = strconv.Atoi(rest[1]); err != nil {
				return fmt.Errorf("invalid page %q", rest[1])
			}
		}
		torrents, err := client.ByUser(ctx, rest[0], page, "")
		if err != nil {
			return err
		}
		printTorrents(torrents)
	case "version":
		for k, v := range consts.GetBuildInfo() {
			fmt.Printf("%s: %s\n", k, v)
		}
	case "pages":
		if len(rest) < 1 {
			return fmt.Errorf("pages needs a username")
		}
		count, err := client.UserPageCount(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Println(count)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func intArg(args []string, i int, what string) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing %s", what)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, args[i])
	}
	return n, nil
}

func printTorrents(torrents []schema.Torrent) {
	for _, t := range torrents {
		fmt.Printf("%8d  S:%-5d L:%-5d %10s  %s\n",
			t.ID, t.Seeders, t.Leechers, utils.FormatSize(t.Size), t.Name)
	}
	fmt.Printf("%d results\n", len(torrents))
}

func printDetails(d *schema.TorrentDetails, trackers []string) {
	fmt.Printf("Name:      %s\n", d.Name)
	fmt.Printf("Uploaded:  %s by %s\n", d.Added.Format("2006-01-02 15:04:05 MST"), d.Username)
	fmt.Printf("Size:      %s in %d files\n", utils.FormatSize(d.Size), d.NumFiles)
	fmt.Printf("Peers:     %d seeders, %d leechers\n", d.Seeders, d.Leechers)
	fmt.Printf("Category:  %d (%s)\n", d.Category, categories.Domain(d.Category))
	if d.IMDB != "" {
		fmt.Printf("IMDb:      %s\n", d.IMDB)
	}
	if d.Language != "" {
		fmt.Printf("Language:  %s\n", d.Language)
	}
	if d.Descr != "" {
		fmt.Printf("\n%s\n", d.Descr)
	}
	fmt.Printf("\n%s\n", magnet.Link(d.InfoHash, d.Name, trackers...))
}
