package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestDispatcherRecords(t *testing.T) {
	m := NewDispatcher("")
	start := time.Now().Add(-time.Second)

	if inc := delta(t, dispatcherRequestsTotal.WithLabelValues("unknown", "GET", "200", "success"), func() {
		m.ObserveRequest("GET", 200, nil, start)
	}); inc != 1 {
		t.Fatalf("expected request counter increment, got %v", inc)
	}

	if inc := delta(t, dispatcherRequestsTotal.WithLabelValues("unknown", "POST", "none", "error"), func() {
		m.ObserveRequest("POST", 0, errors.New("refused"), start)
	}); inc != 1 {
		t.Fatalf("expected transport error counter increment, got %v", inc)
	}
}

func TestClientRecords(t *testing.T) {
	m := NewClient("blockset")
	start := time.Now().Add(-200 * time.Millisecond)

	if inc := delta(t, clientOperationsTotal.WithLabelValues("get_transactions", "blockset", "error"), func() {
		m.Observe("get_transactions", errors.New("oops"), start)
	}); inc != 1 {
		t.Fatalf("expected operation error counter increment, got %v", inc)
	}

	m.Observe("get_transactions", nil, start)
}

func TestClickhouseRepositoryRecords(t *testing.T) {
	m := NewClickhouseRepository()
	start := time.Now()

	if inc := delta(t, clickhouseRepositoryRequestsTotal.WithLabelValues("insert_transactions", "unknown", "success"), func() {
		m.Observe("insert_transactions", "", nil, start)
	}); inc != 1 {
		t.Fatalf("expected repository counter increment, got %v", inc)
	}
}

func TestArchiveSyncRecords(t *testing.T) {
	m := NewArchiveSync()
	start := time.Now()

	if inc := delta(t, archiveNewTransactions.WithLabelValues("bitcoin-mainnet"), func() {
		m.ObserveSync("bitcoin-mainnet", nil, 3, start)
	}); inc != 3 {
		t.Fatalf("expected three new transactions, got %v", inc)
	}

	if inc := delta(t, archiveSyncTotal.WithLabelValues("bitcoin-mainnet", "error"), func() {
		m.ObserveSync("bitcoin-mainnet", errors.New("down"), 0, start)
	}); inc != 1 {
		t.Fatalf("expected sync error increment, got %v", inc)
	}
}

func TestEmitterRecords(t *testing.T) {
	m := NewEmitter("transactions")

	if inc := delta(t, emitterPublishTotal.WithLabelValues("transactions", "success"), func() {
		m.ObservePublish(nil, 2)
	}); inc != 2 {
		t.Fatalf("expected publish counter to grow by two, got %v", inc)
	}
}
