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

const iconifyEndpoint = "https://api.iconify.design/search"

// IconifySource queries the Iconify icon search API.
type IconifySource struct {
	client *resty.Client
	log    zerolog.Logger
}

var _ asset.Source = (*IconifySource)(nil)

func NewIconifySource(log zerolog.Logger) *IconifySource {
	client := resty.New().
		SetHeader("User-Agent", "Slidesmith/1.0").
		SetTimeout(10 * time.Second)

	return &IconifySource{
		client: client,
		log:    log.With().Str("component", "iconify-source").Logger(),
	}
}

func (s *IconifySource) Name() string { return "iconify" }

type iconifyResponse struct {
	Icons []string `json:"icons"`
}

// Search queries Iconify with the first term; icon sets are keyword
// scoped, so a single focused term outperforms a joined phrase.
func (s *IconifySource) Search(ctx context.Context, terms []string, filter asset.StyleFilter) ([]asset.Metadata, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	start := time.Now()
	var result iconifyResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("query", terms[0]).
		SetQueryParam("limit", "10").
		SetResult(&result).
		Get(iconifyEndpoint)
	metrics.AssetSourceDuration.WithLabelValues(s.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AssetSourceCallsTotal.WithLabelValues(s.Name(), "error").Inc()
		return nil, fmt.Errorf("query iconify: %w", err)
	}
	if resp.IsError() {
		metrics.AssetSourceCallsTotal.WithLabelValues(s.Name(), "error").Inc()
		return nil, fmt.Errorf("iconify error (status %d): %s", resp.StatusCode(), resp.String())
	}
	metrics.AssetSourceCallsTotal.WithLabelValues(s.Name(), "ok").Inc()

	found := make([]asset.Metadata, 0, len(result.Icons))
	for i, icon := range result.Icons {
		prefix, name, ok := strings.Cut(icon, ":")
		if !ok {
			continue
		}
		found = append(found, asset.Metadata{
			ID:            "iconify-" + icon,
			Type:          asset.TypeIcon,
			Source:        s.Name(),
			URL:           fmt.Sprintf("https://api.iconify.design/%s/%s.svg", prefix, name),
			AltText:       fmt.Sprintf("%s icon", strings.ReplaceAll(name, "-", " ")),
			Tags:          append([]string{terms[0], "icon"}, filter.Keywords...),
			SemanticScore: rankScore(i),
			License:       asset.LicenseFree,
		})
	}
	return found, nil
}
