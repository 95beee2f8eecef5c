package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Account metrics
	AccountsCreated prometheus.Counter
	AccountsDeleted prometheus.Counter
	AccountBalance  *prometheus.GaugeVec

	// Transaction metrics
	ExpensesRecorded prometheus.Counter
	DepositsRecorded prometheus.Counter
	BalanceDeltas    *prometheus.CounterVec

	// Adjustment metrics
	AdjustmentsRecorded prometheus.Counter

	// Receipt metrics
	ReceiptsEncoded prometheus.Counter
	ReceiptErrors   prometheus.Counter

	// Reconciliation metrics
	ConsistencyChecks prometheus.Counter
	DriftsDetected    prometheus.Counter
	BalancesRepaired  prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Store metrics
	StoreOperations *prometheus.CounterVec
	StoreErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates and registers all Prometheus metrics on the given
// registerer.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_accounts_deleted_total",
			Help: "Total number of accounts cascade-deleted",
		}),
		AccountBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fintrack_account_balance",
				Help: "Current account balance",
			},
			[]string{"account_id"},
		),

		ExpensesRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_expenses_recorded_total",
			Help: "Total number of expenses recorded",
		}),
		DepositsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_deposits_recorded_total",
			Help: "Total number of deposits recorded",
		}),
		BalanceDeltas: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_balance_deltas_total",
				Help: "Total balance delta applications by direction",
			},
			[]string{"direction"},
		),

		AdjustmentsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_adjustments_recorded_total",
			Help: "Total number of manual balance adjustments",
		}),

		ReceiptsEncoded: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_receipts_encoded_total",
			Help: "Total number of receipts encoded",
		}),
		ReceiptErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_receipt_errors_total",
			Help: "Total number of failed receipt encodes",
		}),

		ConsistencyChecks: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_consistency_checks_total",
			Help: "Total number of ledger consistency checks",
		}),
		DriftsDetected: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_drifts_detected_total",
			Help: "Total number of balance drifts detected",
		}),
		BalancesRepaired: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_balances_repaired_total",
			Help: "Total number of balances rewritten from history",
		}),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		StoreOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_store_operations_total",
				Help: "Total key-value store operations",
			},
			[]string{"operation"},
		),
		StoreErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_store_errors_total",
				Help: "Total key-value store errors",
			},
			[]string{"operation"},
		),
	}
}
