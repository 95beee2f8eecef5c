package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iho/fintrack/internal/infrastructure/metrics"
)

func TestNewWith(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWith(reg)

	m.AccountsCreated.Inc()
	m.ExpensesRecorded.Inc()
	m.BalanceDeltas.WithLabelValues("debit").Inc()
	m.HTTPRequests.WithLabelValues("GET", "/api/v1/accounts", "200").Inc()
	m.StoreOperations.WithLabelValues("save").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected registered metrics")
	}

	names := make(map[string]bool, len(families))
	for _, fam := range families {
		names[fam.GetName()] = true
	}
	for _, want := range []string{
		"fintrack_accounts_created_total",
		"fintrack_expenses_recorded_total",
		"fintrack_balance_deltas_total",
		"fintrack_http_requests_total",
		"fintrack_store_operations_total",
	} {
		if !names[want] {
			t.Errorf("expected metric %s registered", want)
		}
	}
}

func TestNewWith_SeparateRegistries(t *testing.T) {
	// two instances must not collide, each on its own registry
	a := metrics.NewWith(prometheus.NewRegistry())
	b := metrics.NewWith(prometheus.NewRegistry())
	a.AccountsCreated.Inc()
	b.AccountsCreated.Inc()
}
