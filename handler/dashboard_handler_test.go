package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"suapa/model"
	"suapa/usecase"
	"suapa/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

type stubChatSource struct{ entries []model.ChatEntry }

func (s *stubChatSource) GetUserChatEntries(ctx context.Context, userID string) ([]model.ChatEntry, error) {
	return s.entries, nil
}

type stubTaskSource struct{ tasks []*model.Task }

func (s *stubTaskSource) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	return s.tasks, nil
}

type stubActivitySource struct{ activities []*model.Activity }

func (s *stubActivitySource) GetUserActivities(ctx context.Context, userID string) ([]*model.Activity, error) {
	return s.activities, nil
}

func histogramSampleCount(h prometheus.Histogram) uint64 {
	m := &dto.Metric{}
	if err := h.Write(m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

func TestDashboardStatsHandlerMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Now()
	dashboard := usecase.NewDashboardService(
		&stubChatSource{entries: []model.ChatEntry{{
			ID:          "c1",
			Kind:        model.ChatKindPlain,
			UserMessage: "hello",
			Timestamp:   model.NewTimestamp(now),
		}}},
		&stubTaskSource{},
		&stubActivitySource{},
		nil,
	)

	router := gin.New()
	router.GET("/api/dashboard/stats", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		DashboardStatsHandler(c, dashboard)
	})

	statsBefore := histogramSampleCount(utils.DashboardStatsDuration)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Data struct {
			Stats model.DashboardStats `json:"stats"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.Stats.TotalChats != 1 {
		t.Errorf("totalChats = %d, want 1", resp.Data.Stats.TotalChats)
	}

	if got := histogramSampleCount(utils.DashboardStatsDuration); got != statsBefore+1 {
		t.Errorf("dashboard stats samples = %d, want %d", got, statsBefore+1)
	}

	// The composite call must not show up in the per-collection DB histogram.
	if n := testutil.CollectAndCount(utils.DBOperationDuration); n != 0 {
		t.Errorf("db_operation_duration_seconds children = %d, want 0 from this handler", n)
	}
}
