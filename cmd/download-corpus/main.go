package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// download-corpus fetches a list of pages and writes their visible
// text to a newline-delimited corpus file, one line per text block,
// ready for vocab-analyze.

func main() {
	var (
		urlsPath = flag.String("urls", "", "File with one URL per line (required)")
		outPath  = flag.String("out", "corpus.txt", "Output corpus file")
		delay    = flag.Duration("delay", 200*time.Millisecond, "Pause between requests")
	)
	flag.Parse()

	if *urlsPath == "" {
		log.Fatal("--urls required")
	}

	urls, err := readURLs(*urlsPath)
	if err != nil {
		log.Fatalf("read url list: %v", err)
	}

	outFile, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create output file: %v", err)
	}
	defer outFile.Close()

	w := bufio.NewWriter(outFile)
	defer w.Flush()

	fetched := 0
	for _, u := range urls {
		lines, err := fetchText(u)
		if err != nil {
			log.Printf("skip %s: %v", u, err)
			continue
		}
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		fetched++

		// Be nice to the servers
		time.Sleep(*delay)
	}

	log.Printf("wrote text from %d/%d pages to %s", fetched, len(urls), *outPath)
}

func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, sc.Err()
}

// fetchText downloads one page and returns its visible text as lines,
// one per block of text, with script and style contents skipped.
func fetchText(url string) ([]string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return extractLines(string(body)), nil
}

func extractLines(page string) []string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
				lines = append(lines, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return lines
}
