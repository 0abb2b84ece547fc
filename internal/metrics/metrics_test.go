// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/test", "200"))
	RecordAPIRequest("GET", "/api/v1/test", "200", 15*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/test", "200"))

	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+2 {
		t.Errorf("active = %v, want %v", got, base+2)
	}
	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("active = %v, want %v", got, base)
	}
}

func TestRecordMatchOperation(t *testing.T) {
	c := MatchOperations.WithLabelValues("create", "success")
	before := testutil.ToFloat64(c)
	RecordMatchOperation("create", "success")
	if testutil.ToFloat64(c) != before+1 {
		t.Error("match operation counter did not increase")
	}
}

func TestRecordEventPublished(t *testing.T) {
	ok := EventsPublished.WithLabelValues("match.created", "success")
	failed := EventsPublished.WithLabelValues("match.created", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordEventPublished("match.created", nil)
	RecordEventPublished("match.created", errors.New("breaker open"))

	if testutil.ToFloat64(ok) != okBefore+1 || testutil.ToFloat64(failed) != failedBefore+1 {
		t.Error("event counters did not split by outcome")
	}
}

func TestGauges(t *testing.T) {
	SetActiveProfiles(42)
	if got := testutil.ToFloat64(ActiveProfiles); got != 42 {
		t.Errorf("active profiles = %v", got)
	}
	SetEventBreakerState(2)
	if got := testutil.ToFloat64(EventBreakerState); got != 2 {
		t.Errorf("breaker state = %v", got)
	}
	before := testutil.ToFloat64(DataIntegrityViolations)
	RecordIntegrityViolation()
	if testutil.ToFloat64(DataIntegrityViolations) != before+1 {
		t.Error("integrity counter did not increase")
	}
}

func TestRecordRecommendationCollects(t *testing.T) {
	RecordRecommendation(3*time.Millisecond, 10, 4, "success")
	RecordRecommendation(time.Millisecond, 0, 0, "error")
	if n := testutil.CollectAndCount(RecommendationDuration); n < 2 {
		t.Errorf("expected at least 2 outcome series, got %d", n)
	}
}
