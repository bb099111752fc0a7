package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/skinlens/backend/internal/domain"
	"github.com/skinlens/backend/internal/metrics"
)

// Pipeline stage names used in metrics and debug logs
const (
	stageFilter  = "filter"
	stageConcern = "concern"
	stageRefine  = "refine"
	stageSelect  = "select"
)

// RecommendationConfig holds configuration for the recommendation service
type RecommendationConfig struct {
	DefaultLimit       int
	ReportConcurrency  int
	EnableDebugLogging bool
}

// RecommendationService runs the matching pipeline: alias resolution,
// candidate filtering, concern narrowing, ingredient refinement and price
// ranking. It holds only immutable tables and is safe for concurrent use.
type RecommendationService struct {
	catalog            domain.CatalogRepository
	aliases            *AliasResolver
	concerns           *ConcernMapper
	logger             *zap.Logger
	defaultLimit       int
	reportConcurrency  int
	enableDebugLogging bool
}

// NewRecommendationService creates a new recommendation service with dependencies
func NewRecommendationService(
	catalog domain.CatalogRepository,
	aliases *AliasResolver,
	concerns *ConcernMapper,
	logger *zap.Logger,
	config RecommendationConfig,
) *RecommendationService {
	if aliases == nil {
		aliases = NewAliasResolver()
	}
	if concerns == nil {
		concerns = NewConcernMapper(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	limit := config.DefaultLimit
	if limit <= 0 {
		limit = 1 // one product per requested category
	}

	concurrency := config.ReportConcurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	return &RecommendationService{
		catalog:            catalog,
		aliases:            aliases,
		concerns:           concerns,
		logger:             logger,
		defaultLimit:       limit,
		reportConcurrency:  concurrency,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// GetRecommendations returns the selected products for a request. An empty
// result means no product matched; it is not an error.
func (s *RecommendationService) GetRecommendations(req domain.RecommendationRequest) []domain.Product {
	return s.run(req).Products
}

// Recommend returns the selected products together with the canonical
// categories the product type resolved to
func (s *RecommendationService) Recommend(req domain.RecommendationRequest) domain.Recommendation {
	trace := s.run(req)
	return domain.Recommendation{
		ProductType: trace.ProductType,
		Categories:  trace.Categories,
		Products:    trace.Products,
	}
}

// Explain runs the pipeline and reports the candidates surviving each stage
func (s *RecommendationService) Explain(req domain.RecommendationRequest) domain.RecommendationTrace {
	return s.run(req)
}

// Browse lists catalog products whose category overlaps category (all
// products when category is empty) and that apply to skinType, in catalog order
func (s *RecommendationService) Browse(category, skinType string) []domain.Product {
	products := s.catalog.Products()
	if strings.TrimSpace(category) != "" {
		return FilterCandidates(products, []string{category}, skinType)
	}

	result := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if MatchesSkinType(product, skinType) {
			result = append(result, product)
		}
	}
	return result
}

// EmptyMessage returns the localized "no products found" text
func (s *RecommendationService) EmptyMessage(locale string) string {
	return s.aliases.EmptyMessage(locale)
}

// ReportOptions controls how an analysis report is evaluated
type ReportOptions struct {
	Locale string
	Limit  int
}

// RecommendForAnalysis evaluates one engine call per product recommendation
// in the AI analysis. Entries are evaluated concurrently; the output keeps
// the input order. Only context cancellation produces an error.
func (s *RecommendationService) RecommendForAnalysis(
	ctx context.Context,
	analysis *domain.AnalysisResult,
	opts ReportOptions,
) ([]domain.ReportRecommendation, error) {
	if analysis == nil {
		return nil, domain.ErrInvalidAnalysis
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	skinType := NormalizeSkinType(analysis.SkinType)
	emptyMessage := s.aliases.EmptyMessage(opts.Locale)
	results := make([]domain.ReportRecommendation, len(analysis.ProductRecommendations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.reportConcurrency)

	for i, entry := range analysis.ProductRecommendations {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			concerns := []string(entry.TargetConcerns)
			if len(concerns) == 0 {
				concerns = analysis.Concerns
			}

			rec := s.Recommend(domain.RecommendationRequest{
				ProductTypeLabel: strings.TrimSpace(entry.ProductType),
				Concerns:         concerns,
				SkinType:         skinType,
				Limit:            opts.Limit,
				Locale:           opts.Locale,
			})
			metrics.ReportEntries.Inc()

			results[i] = domain.ReportRecommendation{
				Entry:      entry,
				Categories: rec.Categories,
				Products:   rec.Products,
			}
			if len(rec.Products) == 0 {
				results[i].EmptyMessage = emptyMessage
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// run executes the full pipeline and records per-stage results
func (s *RecommendationService) run(req domain.RecommendationRequest) domain.RecommendationTrace {
	start := time.Now()

	skinType := req.SkinType
	if strings.TrimSpace(skinType) == "" {
		skinType = domain.SkinTypeAll
	}

	limit := req.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}

	categories := s.aliases.ResolveFor(req.Locale, req.ProductTypeLabel)
	aliasFallback := !s.aliases.Known(req.ProductTypeLabel)
	if aliasFallback {
		metrics.AliasFallbacks.Inc()
	}

	filtered := FilterCandidates(s.catalog.Products(), categories, skinType)
	metrics.ObserveStage(stageFilter, len(filtered))

	profile := s.concerns.MapConcerns(req.Concerns)
	if len(profile.Unknown) > 0 {
		metrics.UnknownConcerns.Add(float64(len(profile.Unknown)))
	}
	concernFiltered := ApplyConcerns(filtered, profile)
	metrics.ObserveStage(stageConcern, len(concernFiltered))

	refined := concernFiltered
	for _, category := range categories {
		refined = RefineByIngredients(refined, category, skinType)
	}
	metrics.ObserveStage(stageRefine, len(refined))

	selected := SelectProducts(refined, limit)
	metrics.ObserveStage(stageSelect, len(selected))
	metrics.RecordOutcome(len(selected) > 0)

	if s.enableDebugLogging {
		s.logger.Debug("recommendation pipeline",
			zap.String("productType", req.ProductTypeLabel),
			zap.Strings("categories", categories),
			zap.Bool("aliasFallback", aliasFallback),
			zap.String("skinType", skinType),
			zap.Strings("concerns", req.Concerns),
			zap.Strings("unknownConcerns", profile.Unknown),
			zap.Int("filtered", len(filtered)),
			zap.Int("concernFiltered", len(concernFiltered)),
			zap.Int("refined", len(refined)),
			zap.Int("selected", len(selected)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	return domain.RecommendationTrace{
		ProductType:        req.ProductTypeLabel,
		SkinType:           skinType,
		Categories:         categories,
		AliasFallback:      aliasFallback,
		ConcernIngredients: profile.Ingredients,
		ConcernCategories:  profile.Categories,
		UnknownConcerns:    profile.Unknown,
		Filtered:           productIDs(filtered),
		ConcernFiltered:    productIDs(concernFiltered),
		Refined:            productIDs(refined),
		Products:           selected,
	}
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, len(products))
	for i, product := range products {
		ids[i] = product.ID
	}
	return ids
}
