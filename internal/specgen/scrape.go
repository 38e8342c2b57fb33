package specgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultRoot is the documentation site scraped by default.
const DefaultRoot = "https://www.last.fm"

// Scraper crawls the API documentation and builds a Spec.
type Scraper struct {
	root        string
	httpClient  *http.Client
	limiter     *rate.Limiter
	concurrency int
	logger      zerolog.Logger
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithHTTPClient sets the HTTP client used for page fetches.
func WithHTTPClient(c *http.Client) ScraperOption {
	return func(s *Scraper) {
		s.httpClient = c
	}
}

// WithRate limits page fetches to perSecond requests per second.
func WithRate(perSecond float64) ScraperOption {
	return func(s *Scraper) {
		if perSecond > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithConcurrency sets how many method pages are fetched at once.
func WithConcurrency(n int) ScraperOption {
	return func(s *Scraper) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLogger sets the scraper logger.
func WithLogger(l zerolog.Logger) ScraperOption {
	return func(s *Scraper) {
		s.logger = l
	}
}

// NewScraper creates a scraper for the documentation hosted at root.
func NewScraper(root string, opts ...ScraperOption) *Scraper {
	if root == "" {
		root = DefaultRoot
	}
	s := &Scraper{
		root:        strings.TrimRight(root, "/"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		limiter:     rate.NewLimiter(rate.Limit(4), 1),
		concurrency: 4,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape walks /api/intro and every linked /api/show page.
func (s *Scraper) Scrape(ctx context.Context) (*Spec, error) {
	intro, err := s.fetch(ctx, "/api/intro")
	if err != nil {
		return nil, err
	}

	var paths []string
	seen := make(map[string]bool)
	intro.Find(`a[href^="/api/show"]`).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if ok && !seen[href] {
			seen[href] = true
			paths = append(paths, href)
		}
	})
	if len(paths) == 0 {
		return nil, ErrNoMethods
	}

	spec := NewSpec()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, path := range paths {
		g.Go(func() error {
			pkg, method, m, err := s.scrapeMethod(ctx, path)
			if err != nil {
				return err
			}
			mu.Lock()
			spec.Add(pkg, method, m)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info().Int("methods", spec.MethodCount()).Msg("scraped API documentation")
	return spec, nil
}

func (s *Scraper) scrapeMethod(ctx context.Context, path string) (string, string, MethodSpec, error) {
	s.logger.Debug().Str("path", path).Msg("scraping method page")

	full := path[strings.LastIndex(path, "/")+1:]
	pkg, method, ok := strings.Cut(full, ".")
	if !ok {
		return "", "", MethodSpec{}, fmt.Errorf("specgen: unexpected method path %q", path)
	}

	doc, err := s.fetch(ctx, path)
	if err != nil {
		return "", "", MethodSpec{}, err
	}
	return pkg, method, ParseMethodPage(doc, s.root+path), nil
}

// ParseMethodPage extracts a MethodSpec from a parsed /api/show page.
func ParseMethodPage(doc *goquery.Document, docURL string) MethodSpec {
	text := normalizeSpace(doc.Text())
	m := MethodSpec{
		Documentation: docURL,
		Description:   normalizeSpace(doc.Find("div.wsdescription").First().Text()),
		Auth:          !strings.Contains(text, "does not require authentication"),
		HTTP:          "GET",
		Params:        make(map[string]ParamSpec),
	}
	if strings.Contains(text, "HTTP POST request") {
		m.HTTP = "POST"
	}

	doc.Find("#wsdescriptor span.param").Each(func(_ int, span *goquery.Selection) {
		name := strings.TrimSpace(span.Text())
		if name == "" {
			return
		}
		if name == "api_key" || name == "api_sig" || name == "sk" {
			return
		}

		desc := followingText(span.Nodes[0])
		p := ParamSpec{Required: strings.Contains(desc, "Required")}

		brackets := ""
		if i := strings.Index(name, "["); i >= 0 {
			brackets = name[i:]
			name = name[:i]
			switch brackets {
			case "[0|1]":
				p.Boolean = true
			case "[i]", "[1|2]":
				p.Multiple = true
			}
			brackets += " "
		}
		p.Description = brackets + normalizeSpace(desc)
		m.Params[name] = p
	})

	return m
}

// followingText returns the first text node after n among its siblings.
func followingText(n *html.Node) string {
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.TextNode {
			return sib.Data
		}
	}
	return ""
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (s *Scraper) fetch(ctx context.Context, path string) (*goquery.Document, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.root+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status code: %d", path, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}
