// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/popular-query/auth"
	"github.com/danielhkuo/popular-query/models"
	"github.com/danielhkuo/popular-query/period"
	"github.com/danielhkuo/popular-query/testutil"
)

// TestConcurrentReads verifies that many simultaneous readers all get the
// published result while the cache is being filled
func TestConcurrentReads(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPopularHandler(db, testutil.GetTestConfig())
	testutil.PublishTestResult(t, db, period.Daily, "tag1 tag2", time.Now())

	var okCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.WithURLParam(testutil.MakeRequest("GET", "/api/popular/daily", "", nil), "period", "daily")
			w := httptest.NewRecorder()
			handler.GetPopular(w, req)

			if w.Code == http.StatusOK && w.Body.String() == "tag1 tag2" {
				okCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if okCount.Load() != 20 {
		t.Errorf("Expected 20 successful reads, got %d", okCount.Load())
	}
}

// TestConcurrentPublishes verifies that simultaneous publishes for every
// period are all stored and that the latest per period wins afterwards
func TestConcurrentPublishes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPopularHandler(db, cfg)
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	const perPeriod = 5
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for _, p := range period.All() {
		key := auth.GeneratePublishKey(p, cfg.PublishKeySalt)
		for i := 0; i < perPeriod; i++ {
			wg.Add(1)
			go func(p period.Period, i int) {
				defer wg.Done()

				req := testutil.MakeRequest("PUT", "/api/popular/"+p.String(), fmt.Sprintf("%s %d", p, i), map[string]string{
					PublishKeyHeader: key,
					ComputedAtHeader: base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
				})
				req = testutil.WithURLParam(req, "period", p.String())
				w := httptest.NewRecorder()
				handler.PublishPopular(w, req)

				if w.Code == http.StatusCreated {
					successCount.Add(1)
				}
			}(p, i)
		}
	}

	wg.Wait()

	want := int32(len(period.All()) * perPeriod)
	if successCount.Load() != want {
		t.Errorf("Expected %d successful publishes, got %d", want, successCount.Load())
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM popular_result").Scan(&count); err != nil {
		t.Fatalf("Failed to count results: %v", err)
	}
	if count != int(want) {
		t.Errorf("Expected %d stored results, got %d", want, count)
	}

	// The most recently computed result of each period is served
	req := testutil.MakeRequest("GET", "/api/popular", "", nil)
	w := httptest.NewRecorder()
	handler.ListPopular(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PopularListResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Results) != len(period.All()) {
		t.Fatalf("Expected %d results, got %d", len(period.All()), len(resp.Results))
	}
	for _, r := range resp.Results {
		if want := fmt.Sprintf("%s %d", r.Period, perPeriod-1); r.Query != want {
			t.Errorf("Expected latest %q, got %q", want, r.Query)
		}
	}
}

// TestConcurrentPublishAndRead verifies that readers racing a publisher
// only ever see a complete result
func TestConcurrentPublishAndRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewPopularHandler(db, cfg)
	testutil.PublishTestResult(t, db, period.Weekly, "old tags", time.Now().Add(-time.Hour))
	key := auth.GeneratePublishKey(period.Weekly, cfg.PublishKeySalt)

	var badReads atomic.Int32
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		req := testutil.MakeRequest("PUT", "/api/popular/weekly", "new tags", map[string]string{PublishKeyHeader: key})
		req = testutil.WithURLParam(req, "period", "weekly")
		w := httptest.NewRecorder()
		handler.PublishPopular(w, req)
		if w.Code != http.StatusCreated {
			t.Errorf("Expected publish to succeed, got %d", w.Code)
		}
	}()

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.WithURLParam(testutil.MakeRequest("GET", "/api/popular/weekly", "", nil), "period", "weekly")
			w := httptest.NewRecorder()
			handler.GetPopular(w, req)

			body := w.Body.String()
			if w.Code != http.StatusOK || !strings.HasSuffix(body, " tags") {
				badReads.Add(1)
			}
		}()
	}

	wg.Wait()

	if badReads.Load() != 0 {
		t.Errorf("Expected every read to return a full result, got %d bad reads", badReads.Load())
	}
}
