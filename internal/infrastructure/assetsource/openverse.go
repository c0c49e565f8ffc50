package assetsource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"slidesmith/internal/domain/asset"
	"slidesmith/internal/infrastructure/metrics"
)

const openverseEndpoint = "https://api.openverse.org/v1/images/"

// OpenverseSource queries the Openverse image API. No API key is
// required for search.
type OpenverseSource struct {
	client *resty.Client
	log    zerolog.Logger
}

var _ asset.Source = (*OpenverseSource)(nil)

func NewOpenverseSource(log zerolog.Logger) *OpenverseSource {
	client := resty.New().
		SetHeader("User-Agent", "Slidesmith/1.0").
		SetTimeout(10 * time.Second)

	return &OpenverseSource{
		client: client,
		log:    log.With().Str("component", "openverse-source").Logger(),
	}
}

func (s *OpenverseSource) Name() string { return "openverse" }

type openverseResponse struct {
	Results []struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		URL     string `json:"url"`
		License string `json:"license"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
		Tags    []struct {
			Name string `json:"name"`
		} `json:"tags"`
	} `json:"results"`
}

// Search queries Openverse with the joined terms. Relevance rank maps
// onto a descending semantic score so downstream ranking stays
// deterministic for a fixed response.
func (s *OpenverseSource) Search(ctx context.Context, terms []string, filter asset.StyleFilter) ([]asset.Metadata, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	start := time.Now()
	var result openverseResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("q", strings.Join(terms, " ")).
		SetQueryParam("page_size", "10").
		SetResult(&result).
		Get(openverseEndpoint)
	metrics.AssetSourceDuration.WithLabelValues(s.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AssetSourceCallsTotal.WithLabelValues(s.Name(), "error").Inc()
		return nil, fmt.Errorf("query openverse: %w", err)
	}
	if resp.IsError() {
		metrics.AssetSourceCallsTotal.WithLabelValues(s.Name(), "error").Inc()
		return nil, fmt.Errorf("openverse error (status %d): %s", resp.StatusCode(), resp.String())
	}
	metrics.AssetSourceCallsTotal.WithLabelValues(s.Name(), "ok").Inc()

	found := make([]asset.Metadata, 0, len(result.Results))
	for i, item := range result.Results {
		tags := make([]string, 0, len(item.Tags)+len(filter.Keywords))
		for _, tag := range item.Tags {
			tags = append(tags, tag.Name)
		}
		tags = append(tags, filter.Keywords...)

		meta := asset.Metadata{
			ID:            "openverse-" + item.ID,
			Type:          asset.TypeImage,
			Source:        s.Name(),
			URL:           item.URL,
			AltText:       item.Title,
			Tags:          tags,
			SemanticScore: rankScore(i),
			License:       mapLicense(item.License),
		}
		if item.Width > 0 && item.Height > 0 {
			meta.Dimensions = &asset.Dimensions{Width: item.Width, Height: item.Height}
		}
		found = append(found, meta)
	}
	return found, nil
}

// rankScore converts a provider rank into a semantic score: the first
// result scores 0.9, each following result 0.05 less, floored at 0.5.
func rankScore(rank int) float64 {
	score := 0.9 - 0.05*float64(rank)
	if score < 0.5 {
		return 0.5
	}
	return score
}

func mapLicense(license string) asset.License {
	switch strings.ToLower(license) {
	case "cc0", "pdm":
		return asset.LicenseFree
	case "by", "by-sa", "by-nc", "by-nd", "by-nc-sa", "by-nc-nd":
		return asset.LicenseAttribution
	default:
		return asset.LicenseFree
	}
}
