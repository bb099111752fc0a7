package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/skinlens/backend/internal/domain"
	"github.com/skinlens/backend/internal/metrics"
)

func newTestService(t *testing.T, products []domain.Product) *RecommendationService {
	t.Helper()
	return NewRecommendationService(
		&staticCatalog{products: products},
		NewAliasResolver(),
		NewConcernMapper(nil),
		zaptest.NewLogger(t),
		RecommendationConfig{EnableDebugLogging: true},
	)
}

func TestNewRecommendationService_Defaults(t *testing.T) {
	svc := NewRecommendationService(&staticCatalog{}, nil, nil, nil, RecommendationConfig{})

	assert.Equal(t, 1, svc.defaultLimit)
	assert.Equal(t, 4, svc.reportConcurrency)
	assert.NotNil(t, svc.aliases)
	assert.NotNil(t, svc.concerns)
	assert.NotNil(t, svc.logger)
}

func TestGetRecommendations_AcneCleanserForOilySkin(t *testing.T) {
	products := []domain.Product{
		{ID: "p1", Category: "Cleanser", SkinTypes: []string{"oily", "all"},
			Ingredients: "Salicylic Acid, Jojoba esters", Price: 64},
		{ID: "p2", Category: "Cleanser", SkinTypes: []string{"dry"},
			Ingredients: "Ceramides", Price: 18},
	}
	svc := newTestService(t, products)

	got := svc.GetRecommendations(domain.RecommendationRequest{
		ProductTypeLabel: "Cleanser",
		Concerns:         []string{"acne"},
		SkinType:         "oily",
		Limit:            -1,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestGetRecommendations_ChineseLabelWithoutSkinTypeNarrowing(t *testing.T) {
	svc := newTestService(t, testCatalog())

	trace := svc.Explain(domain.RecommendationRequest{
		ProductTypeLabel: "洁面乳",
		SkinType:         "all",
		Limit:            -1,
	})

	assert.Equal(t, []string{domain.CategoryCleanser, domain.CategoryGentleCleanser}, trace.Categories)
	assert.ElementsMatch(t, []string{"cl-oily", "cl-dry", "cl-gentle", "cl-plain"}, trace.Filtered)
	assert.Equal(t, trace.Filtered, trace.Refined, "refinement is a no-op for skin type all")
	assert.Equal(t, []string{"cl-plain", "cl-dry", "cl-gentle", "cl-oily"}, ids(trace.Products))
}

func TestGetRecommendations_NoMatchIsEmpty(t *testing.T) {
	svc := newTestService(t, testCatalog())

	got := svc.GetRecommendations(domain.RecommendationRequest{ProductTypeLabel: "Perfume"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetRecommendations_Defaults(t *testing.T) {
	svc := newTestService(t, testCatalog())

	t.Run("empty skin type means all", func(t *testing.T) {
		trace := svc.Explain(domain.RecommendationRequest{ProductTypeLabel: "Cleanser"})
		assert.Equal(t, domain.SkinTypeAll, trace.SkinType)
		assert.Len(t, trace.Filtered, 4)
	})

	t.Run("zero limit uses the default of one", func(t *testing.T) {
		got := svc.GetRecommendations(domain.RecommendationRequest{ProductTypeLabel: "Cleanser"})
		require.Len(t, got, 1)
		assert.Equal(t, "cl-plain", got[0].ID)
	})
}

func TestGetRecommendations_EmptyConcernsMatchSkippedStage(t *testing.T) {
	svc := newTestService(t, testCatalog())

	for _, label := range []string{"Cleanser", "Moisturizer", "Serum", "洁面乳", "Sunscreen"} {
		for _, skinType := range append([]string{"all"}, domain.KnownSkinTypes...) {
			t.Run(fmt.Sprintf("%s/%s", label, skinType), func(t *testing.T) {
				trace := svc.Explain(domain.RecommendationRequest{
					ProductTypeLabel: label,
					Concerns:         []string{},
					SkinType:         skinType,
				})
				assert.Equal(t, trace.Filtered, trace.ConcernFiltered)
			})
		}
	}
}

func TestGetRecommendations_PriceOrdered(t *testing.T) {
	svc := newTestService(t, testCatalog())

	got := svc.GetRecommendations(domain.RecommendationRequest{
		ProductTypeLabel: "Moisturizer",
		SkinType:         "all",
		Limit:            3,
	})

	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestRecommend_ReturnsCategories(t *testing.T) {
	svc := newTestService(t, testCatalog())

	rec := svc.Recommend(domain.RecommendationRequest{ProductTypeLabel: "moisturizer", SkinType: "dry"})

	assert.Equal(t, "moisturizer", rec.ProductType)
	assert.Equal(t, []string{domain.CategoryMoisturizer, domain.CategoryHydratingMoisturizer}, rec.Categories)
	require.Len(t, rec.Products, 1)
	assert.Equal(t, "moist-dry", rec.Products[0].ID)
}

func TestExplain_ReportsUnknownConcerns(t *testing.T) {
	svc := newTestService(t, testCatalog())

	trace := svc.Explain(domain.RecommendationRequest{
		ProductTypeLabel: "Serum",
		Concerns:         []string{"redness", "glitter"},
	})

	assert.Equal(t, []string{"glitter"}, trace.UnknownConcerns)
	assert.Contains(t, trace.ConcernIngredients, "centella")
	assert.Equal(t, []string{"ser-calm", "ser-vitc"}, trace.Filtered)
	// ser-calm has centella; ser-vitc only overlaps the "Serum" concern category
	assert.Equal(t, []string{"ser-calm", "ser-vitc"}, trace.ConcernFiltered)
}

func TestExplain_AliasFallback(t *testing.T) {
	svc := newTestService(t, testCatalog())

	for _, category := range domain.CanonicalCategories {
		before := testutil.ToFloat64(metrics.AliasFallbacks)
		trace := svc.Explain(domain.RecommendationRequest{ProductTypeLabel: category})
		assert.False(t, trace.AliasFallback, category)
		assert.Equal(t, before, testutil.ToFloat64(metrics.AliasFallbacks), category)
	}

	before := testutil.ToFloat64(metrics.AliasFallbacks)
	trace := svc.Explain(domain.RecommendationRequest{ProductTypeLabel: "Cleanzer"})
	assert.True(t, trace.AliasFallback)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AliasFallbacks))
	assert.Equal(t, []string{"Cleanzer"}, trace.Categories)
}

func TestExplain_EmptyStagesAreNotNil(t *testing.T) {
	svc := newTestService(t, testCatalog())

	trace := svc.Explain(domain.RecommendationRequest{ProductTypeLabel: "Cleanser"})

	assert.NotNil(t, trace.ConcernIngredients)
	assert.NotNil(t, trace.ConcernCategories)
	assert.NotNil(t, trace.UnknownConcerns)
}

func TestBrowse(t *testing.T) {
	svc := newTestService(t, testCatalog())

	t.Run("by category and skin type", func(t *testing.T) {
		assert.Equal(t, []string{"cl-oily", "cl-plain"}, ids(svc.Browse("Cleanser", "oily")))
	})

	t.Run("skin type only", func(t *testing.T) {
		got := svc.Browse("", "sensitive")
		assert.Contains(t, ids(got), "cl-gentle")
		assert.Contains(t, ids(got), "spf")
		assert.NotContains(t, ids(got), "cl-dry")
	})

	t.Run("everything", func(t *testing.T) {
		assert.Len(t, svc.Browse("", ""), len(testCatalog()))
	})
}

func TestRecommendForAnalysis(t *testing.T) {
	svc := newTestService(t, testCatalog())
	ctx := context.Background()

	analysis := &domain.AnalysisResult{
		SkinType: "Oily Skin",
		Concerns: domain.StringList{"acne"},
		ProductRecommendations: []domain.AIProductRecommendation{
			{ProductType: "Cleanser", TargetConcerns: domain.StringList{"acne"}},
			{ProductType: "Moisturizer"},
			{ProductType: "Perfume"},
			{ProductType: "Targeted Acne Treatment", TargetConcerns: domain.StringList{"acne"}},
		},
	}

	t.Run("keeps input order and fills results", func(t *testing.T) {
		report, err := svc.RecommendForAnalysis(ctx, analysis, ReportOptions{})
		require.NoError(t, err)
		require.Len(t, report, 4)

		assert.Equal(t, "Cleanser", report[0].Entry.ProductType)
		// cl-plain has no ingredient text so refinement keeps it, and it is cheapest
		require.Len(t, report[0].Products, 1)
		assert.Equal(t, "cl-plain", report[0].Products[0].ID)

		// Falls back to the analysis-level acne concern, which no oily moisturizer addresses
		assert.Empty(t, report[1].Products)
		assert.Equal(t, []string{domain.CategoryMoisturizer}, report[1].Categories)

		assert.Empty(t, report[2].Products)
		assert.Equal(t, "No matching products found", report[2].EmptyMessage)

		require.Len(t, report[3].Products, 1)
		assert.Equal(t, "acne-bp", report[3].Products[0].ID)
	})

	t.Run("localizes empty message", func(t *testing.T) {
		report, err := svc.RecommendForAnalysis(ctx, analysis, ReportOptions{Locale: "zh-CN"})
		require.NoError(t, err)
		assert.Equal(t, "未找到合适的产品", report[2].EmptyMessage)
		assert.Empty(t, report[0].EmptyMessage)
	})

	t.Run("respects limit", func(t *testing.T) {
		report, err := svc.RecommendForAnalysis(ctx, analysis, ReportOptions{Limit: -1})
		require.NoError(t, err)
		assert.Equal(t, []string{"cl-plain", "cl-oily"}, ids(report[0].Products))
	})

	t.Run("nil analysis", func(t *testing.T) {
		_, err := svc.RecommendForAnalysis(ctx, nil, ReportOptions{})
		assert.True(t, errors.Is(err, domain.ErrInvalidAnalysis))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.RecommendForAnalysis(cancelled, analysis, ReportOptions{})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("many entries evaluated concurrently", func(t *testing.T) {
		big := &domain.AnalysisResult{SkinType: "all"}
		for i := 0; i < 50; i++ {
			label := []string{"Cleanser", "Serum", "Sunscreen"}[i%3]
			big.ProductRecommendations = append(big.ProductRecommendations, domain.AIProductRecommendation{ProductType: label})
		}

		report, err := svc.RecommendForAnalysis(ctx, big, ReportOptions{})
		require.NoError(t, err)
		require.Len(t, report, 50)
		for i, r := range report {
			assert.Equal(t, big.ProductRecommendations[i].ProductType, r.Entry.ProductType)
			assert.Len(t, r.Products, 1)
		}
	})
}
