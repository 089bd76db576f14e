package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/scholarly"
	"github.com/fwojciec/scholarly/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalysis(sourceURL string) *scholarly.Analysis {
	return &scholarly.Analysis{
		SourceURL: sourceURL,
		Fields:    scholarly.NewFieldSet(scholarly.FieldName, scholarly.FieldPublications),
		Profile: &scholarly.Profile{
			Author: scholarly.AuthorProfile{
				Name:        "Ada Lovelace",
				Affiliation: "University of London",
				Interests:   []string{"analytical engines"},
				Metrics:     map[string]string{"Citations": "1200", "h-index": "12"},
				SummaryText: "University of London",
			},
			Publications: []scholarly.Publication{
				{Title: "Notes", Authors: "A Lovelace", Venue: "Taylor's Scientific Memoirs", Year: 1843, Citations: 900},
			},
		},
		Summary: "Name: Ada Lovelace",
	}
}

func TestAnalysisService_CreateAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("creates analysis with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)

		a := newTestAnalysis("https://scholar.google.com/citations?user=abc")
		err := svc.CreateAnalysis(context.Background(), a)
		require.NoError(t, err)

		assert.NotEmpty(t, a.ID, "ID should be generated")
		assert.Len(t, a.SummaryHash, 16, "SummaryHash should be 8 hex-encoded bytes")
		assert.False(t, a.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("keeps provided timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)

		created := time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC)
		a := newTestAnalysis("https://example.com/p")
		a.CreatedAt = created
		require.NoError(t, svc.CreateAnalysis(context.Background(), a))

		found, err := svc.FindAnalysisByID(context.Background(), a.ID)
		require.NoError(t, err)
		assert.True(t, created.Equal(found.CreatedAt))
	})

	t.Run("same summary yields same hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		a1 := newTestAnalysis("https://example.com/a")
		a2 := newTestAnalysis("https://example.com/b")
		require.NoError(t, svc.CreateAnalysis(ctx, a1))
		require.NoError(t, svc.CreateAnalysis(ctx, a2))

		assert.Equal(t, a1.SummaryHash, a2.SummaryHash)
		assert.NotEqual(t, a1.ID, a2.ID)
	})

	t.Run("returns error for invalid analysis", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)

		err := svc.CreateAnalysis(context.Background(), &scholarly.Analysis{})
		require.Error(t, err)
		assert.Equal(t, scholarly.EINVALID, scholarly.ErrorCode(err))
	})
}

func TestAnalysisService_FindAnalysisByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips profile and fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		a := newTestAnalysis("https://example.com/p")
		require.NoError(t, svc.CreateAnalysis(ctx, a))

		found, err := svc.FindAnalysisByID(ctx, a.ID)
		require.NoError(t, err)

		assert.Equal(t, a.SourceURL, found.SourceURL)
		assert.Equal(t, a.Fields, found.Fields)
		assert.Equal(t, a.Profile, found.Profile)
		assert.Equal(t, a.Summary, found.Summary)
		assert.Equal(t, a.SummaryHash, found.SummaryHash)
	})

	t.Run("returns ENOTFOUND for missing analysis", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)

		_, err := svc.FindAnalysisByID(context.Background(), "nonexistent")
		require.Error(t, err)
		assert.Equal(t, scholarly.ENOTFOUND, scholarly.ErrorCode(err))
	})
}

func TestAnalysisService_FindAnalyses(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.AnalysisService) []*scholarly.Analysis {
		t.Helper()
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		urls := []string{"https://example.com/a", "https://example.com/b", "https://example.com/a"}
		var out []*scholarly.Analysis
		for i, u := range urls {
			a := newTestAnalysis(u)
			a.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			require.NoError(t, svc.CreateAnalysis(context.Background(), a))
			out = append(out, a)
		}
		return out
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		created := seed(t, svc)

		found, err := svc.FindAnalyses(context.Background(), scholarly.AnalysisFilter{})
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, created[2].ID, found[0].ID)
		assert.Equal(t, created[1].ID, found[1].ID)
		assert.Equal(t, created[0].ID, found[2].ID)
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		seed(t, svc)

		url := "https://example.com/a"
		found, err := svc.FindAnalyses(context.Background(), scholarly.AnalysisFilter{SourceURL: &url})
		require.NoError(t, err)
		require.Len(t, found, 2)
		for _, a := range found {
			assert.Equal(t, url, a.SourceURL)
		}
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		created := seed(t, svc)

		found, err := svc.FindAnalyses(context.Background(), scholarly.AnalysisFilter{ID: &created[1].ID})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, created[1].ID, found[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		created := seed(t, svc)

		found, err := svc.FindAnalyses(context.Background(), scholarly.AnalysisFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, created[1].ID, found[0].ID)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		seed(t, svc)

		found, err := svc.FindAnalyses(context.Background(), scholarly.AnalysisFilter{Offset: 2})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("returns empty for no matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)

		found, err := svc.FindAnalyses(context.Background(), scholarly.AnalysisFilter{})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestAnalysisService_DeleteAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing analysis", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()

		a := newTestAnalysis("https://example.com/p")
		require.NoError(t, svc.CreateAnalysis(ctx, a))
		require.NoError(t, svc.DeleteAnalysis(ctx, a.ID))

		_, err := svc.FindAnalysisByID(ctx, a.ID)
		assert.Equal(t, scholarly.ENOTFOUND, scholarly.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing analysis", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)

		err := svc.DeleteAnalysis(context.Background(), "nonexistent")
		assert.Equal(t, scholarly.ENOTFOUND, scholarly.ErrorCode(err))
	})
}
