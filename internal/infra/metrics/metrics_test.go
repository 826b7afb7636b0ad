package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestSetupMetricsRoute_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordPurchase()
	c.RecordStockRejection("insufficient_stock")

	handler := SetupMetricsRoute(reg)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)

	if !strings.Contains(bodyStr, "foodcourt_purchases_total") {
		t.Error("response should contain foodcourt_purchases_total metric")
	}
	if !strings.Contains(bodyStr, `foodcourt_stock_rejections_total{reason="insufficient_stock"}`) {
		t.Error("response should contain labeled foodcourt_stock_rejections_total metric")
	}
}
