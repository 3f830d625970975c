package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

const gettingStartedDoc = `Getting Started
===============

This introduction walks through installing the toolchain, creating a
project and flashing the first WiFi enabled application to the board.
`

const wifiAPIDoc = `WiFi API Reference
==================

Reference documentation for the wireless networking functions exposed
by the station and access point interfaces of the driver.

esp_wifi_init
-------------

Initialises the WiFi driver with the given configuration structure.
`

func recommendCorpus(t *testing.T) *Indexer {
	t.Helper()
	return buildIndex(t, newFakeSource(map[string]string{
		"wifi/station.rst":       wifiDoc,
		"gpio/index.rst":         gpioDoc,
		"get-started/index.rst":  gettingStartedDoc,
		"api-reference/wifi.rst": wifiAPIDoc,
	}))
}

func TestRecommendReturnsRankedResults(t *testing.T) {
	rec := NewRecommender(recommendCorpus(t), testConfig())

	resp := rec.Recommend(context.Background(), "wifi", 5)
	require.NotEmpty(t, resp.Recommendations)
	assert.Equal(t, "wifi", resp.Query)

	seen := make(map[string]struct{})
	for i, r := range resp.Recommendations {
		_, dup := seen[r.ID]
		assert.False(t, dup, "duplicate recommendation %s", r.ID)
		seen[r.ID] = struct{}{}
		if i > 0 {
			assert.LessOrEqual(t, r.RelevanceScore,
				resp.Recommendations[i-1].RelevanceScore)
		}
	}

	assert.Equal(t, len(resp.Recommendations), resp.Metadata["recommendation_count"])
	assert.Contains(t, resp.Metadata, "recommendation_types")
	assert.Contains(t, resp.Metadata, "search_time_ms")
	assert.Contains(t, resp.Metadata, "index_stats")
}

func TestRecommendMixesGenerators(t *testing.T) {
	rec := NewRecommender(recommendCorpus(t), testConfig())

	resp := rec.Recommend(context.Background(), "wifi", 10)
	var sawRelated, sawPopular bool
	for _, r := range resp.Recommendations {
		if r.Type == domain.RecTypeRelatedAPI {
			sawRelated = true
		}
		if strings.HasPrefix(r.Type, domain.RecTypePopular) {
			sawPopular = true
		}
	}
	assert.True(t, sawRelated, "expected a related API recommendation")
	assert.True(t, sawPopular, "expected a popular document recommendation")
}

func TestRecommendContentSimilarity(t *testing.T) {
	idx := buildIndex(t, newFakeSource(map[string]string{
		"provisioning.rst": "Provisioning Guide\n==================\n\n" +
			"Provisioning transfers network credentials to the device over a\n" +
			"temporary channel before normal operation begins.\n",
		"gpio/index.rst": gpioDoc,
	}))
	rec := NewRecommender(idx, testConfig())

	resp := rec.Recommend(context.Background(), "provisioning", 5)
	require.NotEmpty(t, resp.Recommendations)
	assert.Equal(t, "provisioning.rst", resp.Recommendations[0].ID)
	assert.Equal(t, domain.RecTypeContentSimilarity, resp.Recommendations[0].Type)
}

func TestRecommendLimit(t *testing.T) {
	rec := NewRecommender(recommendCorpus(t), testConfig())

	resp := rec.Recommend(context.Background(), "wifi", 1)
	assert.Len(t, resp.Recommendations, 1)

	// A non-positive limit falls back to the default of five.
	resp = rec.Recommend(context.Background(), "wifi", 0)
	assert.LessOrEqual(t, len(resp.Recommendations), 5)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestRecommendUnknownQuery(t *testing.T) {
	rec := NewRecommender(recommendCorpus(t), testConfig())

	resp := rec.Recommend(context.Background(), "xylophone", 5)
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, 0, resp.Metadata["recommendation_count"])
	assert.NotContains(t, resp.Metadata, "error")
}

func TestRecommendDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.EnableRecommendations = false
	rec := NewRecommender(recommendCorpus(t), cfg)

	resp := rec.Recommend(context.Background(), "wifi", 5)
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, domain.ErrRecommendationsDisabled.Error(), resp.Metadata["error"])
}

func TestRecommendCancelledContext(t *testing.T) {
	rec := NewRecommender(recommendCorpus(t), testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := rec.Recommend(ctx, "wifi", 5)
	assert.Empty(t, resp.Recommendations)
	assert.Contains(t, resp.Metadata, "error")
}

func TestRecommendContainsGeneratorPanic(t *testing.T) {
	// A nil index makes every generator panic; the failure must stay
	// inside the response instead of crashing the caller.
	rec := NewRecommender(nil, testConfig())

	resp := rec.Recommend(context.Background(), "wifi", 5)
	assert.Empty(t, resp.Recommendations)
	assert.Contains(t, resp.Metadata, "error")
}
