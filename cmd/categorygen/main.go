// Command categorygen regenerates the category table in apibay/categories
// from the upstream web UI's browse form. It is a one-off maintenance
// tool, not runtime behavior: run it when the upstream adds or renames a
// category and review the generated source by hand.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"apibay/logging"
)

const defaultBrowseURL = "https://thepiratebay.org/search.php?q=&all=on"

// the upstream groups porn under the 5xx block; the client's table has
// never carried it, so the generator drops it too
var skippedDomains = map[string]bool{"porn": true}

var keyCleaner = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func main() {
	logging.InitLogger()

	browseURL := flag.String("url", defaultBrowseURL, "upstream page with the category <select>")
	output := flag.String("o", "", "write generated source to file instead of stdout")
	flag.Parse()

	table, err := scrapeCategories(*browseURL)
	if err != nil {
		logging.Fatal().Err(err).Str("url", *browseURL).Msg("Failed to scrape categories")
	}

	src := render(table)
	if *output == "" {
		fmt.Print(src)
		return
	}
	if err := os.WriteFile(*output, []byte(src), 0o644); err != nil {
		logging.Fatal().Err(err).Str("path", *output).Msg("Failed to write output")
	}
	logging.Info().Str("path", *output).Msg("Category table written")
}

// scrapeCategories pulls the category <select> options, grouped by their
// <optgroup> label, and keeps only the closed X01..X99 identifiers.
func scrapeCategories(pageURL string) (map[string]map[string]int, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	table := map[string]map[string]int{}
	doc.Find("select optgroup").Each(func(_ int, group *goquery.Selection) {
		domain := cleanKey(group.AttrOr("label", ""))
		if domain == "" || skippedDomains[domain] {
			return
		}
		group.Find("option").Each(func(_ int, opt *goquery.Selection) {
			id, err := strconv.Atoi(opt.AttrOr("value", ""))
			if err != nil || id < 100 || id%100 == 0 {
				return
			}
			if table[domain] == nil {
				table[domain] = map[string]int{}
			}
			table[domain][cleanKey(opt.Text())] = id
		})
	})

	if len(table) == 0 {
		return nil, fmt.Errorf("no category options found on %s", pageURL)
	}
	return table, nil
}

func cleanKey(label string) string {
	key := keyCleaner.ReplaceAllString(strings.TrimSpace(label), "_")
	return strings.Trim(strings.ToLower(key), "_")
}

func render(table map[string]map[string]int) string {
	domains := make([]string, 0, len(table))
	for domain := range table {
		domains = append(domains, domain)
	}
	sort.Slice(domains, func(i, j int) bool {
		return domainOrder(table[domains[i]]) < domainOrder(table[domains[j]])
	})

	var b strings.Builder
	b.WriteString("// Code generated by cmd/categorygen; review before committing.\n\n")
	b.WriteString("package categories\n\n")
	b.WriteString("var Categories = map[string]map[string]ID{\n")
	for _, domain := range domains {
		fmt.Fprintf(&b, "\t%q: {\n", domain)
		keys := make([]string, 0, len(table[domain]))
		for k := range table[domain] {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return table[domain][keys[i]] < table[domain][keys[j]]
		})
		for _, k := range keys {
			fmt.Fprintf(&b, "\t\t%q: %d,\n", k, table[domain][k])
		}
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// domainOrder sorts domains by their hundreds block.
func domainOrder(ids map[string]int) int {
	min := 1 << 30
	for _, id := range ids {
		if id < min {
			min = id
		}
	}
	return min / 100
}
