package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gcbaptista/go-pro-directory/model"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/professionals/:id", func(c *gin.Context) {
		if c.Param("id") == "404" {
			c.Status(http.StatusNotFound)
			return
		}
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestMetricsMiddleware_RecordsDurationAndCount(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest("GET", "/professionals/1", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	requestsVal := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/professionals/:id", "200"))
	if requestsVal < 1 {
		t.Errorf("expected http_requests_total >= 1, got %f", requestsVal)
	}

	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected http_request_duration_seconds to have observations")
	}
}

func TestMetricsMiddleware_StatusAndUnknownRoute(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		path   string
		route  string
		status string
	}{
		{"/professionals/404", "/professionals/:id", "404"},
		{"/nowhere", "unknown", "404"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, http.NoBody)
			r.ServeHTTP(httptest.NewRecorder(), req)

			val := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", tc.route, tc.status))
			if val < 1 {
				t.Errorf("expected requests_total for %s with status %s >= 1, got %f", tc.route, tc.status, val)
			}
		})
	}
}

func TestObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(queriesTotal.WithLabelValues("rating", "empty"))
	ObserveQuery(model.SortRating, 0)
	after := testutil.ToFloat64(queriesTotal.WithLabelValues("rating", "empty"))
	if after-before != 1 {
		t.Errorf("expected empty rating counter to grow by 1, grew by %f", after-before)
	}

	before = testutil.ToFloat64(queriesTotal.WithLabelValues("natural", "matched"))
	ObserveQuery("", 3)
	after = testutil.ToFloat64(queriesTotal.WithLabelValues("natural", "matched"))
	if after-before != 1 {
		t.Errorf("expected natural matched counter to grow by 1, grew by %f", after-before)
	}
}
