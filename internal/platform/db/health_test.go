package db

import "testing"

func TestPoolStats_Healthy(t *testing.T) {
	stats := &PoolStats{TotalConns: 10, IdleConns: 5, AcquiredConns: 5, MaxConns: 20, Healthy: true}
	if !stats.Healthy {
		t.Error("expected Healthy to be true")
	}
	if stats.TotalConns != stats.IdleConns+stats.AcquiredConns {
		t.Errorf("inconsistent snapshot: %+v", stats)
	}
}

func TestPoolStats_Unhealthy(t *testing.T) {
	stats := &PoolStats{TotalConns: 0, MaxConns: 20, Healthy: false}
	if stats.Healthy {
		t.Error("expected Healthy to be false when the pool has no connections")
	}
}
