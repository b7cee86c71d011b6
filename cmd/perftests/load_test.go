package perftests

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	NumItems        int
	ReadRatio       int // out of 10 operations
	MaxBidIncrement int
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()
	if len(om.latencies) == 0 {
		return
	}
	sort.Slice(om.latencies, func(i, j int) bool { return om.latencies[i] < om.latencies[j] })

	min = om.latencies[0]
	max = om.latencies[len(om.latencies)-1]

	var total time.Duration
	for _, d := range om.latencies {
		total += d
	}
	avg = total / time.Duration(len(om.latencies))
	p95 = om.latencies[int(0.95*float64(len(om.latencies)))]
	p99 = om.latencies[int(0.99*float64(len(om.latencies)))]
	return
}

// Benchmark_Load_BiddingSystem runs multiple scenarios
func Benchmark_Load_BiddingSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 0, 50},
		{"High-Contention-WriteHeavy", 10, 0, 20},
		{"Mixed-Workload", 50, 7, 30},
		{"ReadHeavy", 50, 9, 20},
		{"Edge-Case-SingleItem", 1, 5, 10},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	_, svc := setupService(s.NumItems)

	// Per-item high-water marks so writers mostly clear the monotonic bar
	highWater := make([]int64, s.NumItems)
	for i := range highWater {
		highWater[i] = 50
	}

	var successfulBids, failedBids, totalReads int64
	metrics := &OperationMetrics{}

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			itemIndex := rnd.Intn(s.NumItems)
			itemID := int64(itemIndex + 1)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				_, _ = svc.GetWinningBid(itemID)
				atomic.AddInt64(&totalReads, 1)
			} else {
				userID := fmt.Sprintf("user_%d", rnd.Int())
				next := atomic.AddInt64(&highWater[itemIndex], int64(rnd.Intn(s.MaxBidIncrement)+1))
				if _, err := svc.PlaceBid(itemID, userID, amountOf(next)); err != nil {
					atomic.AddInt64(&failedBids, 1)
				} else {
					atomic.AddInt64(&successfulBids, 1)
				}
			}
			metrics.Record(time.Since(opStart))
		}
	})

	b.StopTimer()

	min, max, avg, p95, p99 := metrics.Stats()
	b.Logf("scenario=%s reads=%d accepted=%d rejected=%d min=%v max=%v avg=%v p95=%v p99=%v",
		s.Name, totalReads, successfulBids, failedBids, min, max, avg, p95, p99)
}
