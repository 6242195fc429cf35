package main

import (
	"bytes"
	"fmt"
	json "github.com/goccy/go-json"
	"io"
	"math/rand"
	"net"
	"net/http"
	"slices"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numNumbers   = 1000
	// share of call events that reuse an already delivered id
	duplicateRate = 0.05
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

var callSeq atomic.Int64

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== CallGuard Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Numbers: %d\n\n", numWorkers, testDuration, numNumbers)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Call events only
	fmt.Println("\n--- Phase 1: Call events (POST /call) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doCall(rng)
	})

	// Phase 2: Calls plus user actions
	fmt.Println("\n--- Phase 2: Mixed load (70% calls, 30% overlay/stats) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.70:
			return doCall(rng)
		case r < 0.80:
			return doGet("/overlay", http.StatusOK, http.StatusNoContent)
		case r < 0.88:
			return doPostEmpty("/overlay/dismiss", http.StatusNoContent, http.StatusNotFound)
		case r < 0.94:
			return doGet("/stats", http.StatusOK)
		default:
			return doGet("/handoff", http.StatusOK)
		}
	})
}

// runPhase drives workFn from numWorkers goroutines for duration and prints
// per-endpoint latency percentiles.
func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	deadline := time.Now().Add(duration)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()
			for time.Now().Before(deadline) {
				results <- workFn(rng)
			}
		}(rand.New(rand.NewSource(time.Now().UnixNano() + int64(i))))
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	byEndpoint := make(map[string]*stats)
	for r := range results {
		s, ok := byEndpoint[r.endpoint]
		if !ok {
			s = &stats{}
			byEndpoint[r.endpoint] = s
		}
		s.count++
		if r.err {
			s.errors++
		}
		s.latencies = append(s.latencies, r.latency)
	}

	printResults(byEndpoint, duration)
}

func printResults(byEndpoint map[string]*stats, duration time.Duration) {
	endpoints := make([]string, 0, len(byEndpoint))
	for ep := range byEndpoint {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	rule := "  " + strings.Repeat("-", 88)
	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n", "Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println(rule)

	var total, failed int64
	for _, ep := range endpoints {
		s := byEndpoint[ep]
		total += s.count
		failed += s.errors

		slices.Sort(s.latencies)
		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n", ep, s.count, s.errors,
			fmtDur(mean(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	fmt.Println(rule)
	if total == 0 {
		fmt.Println("  no requests completed")
		return
	}
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		total, failed, float64(failed)/float64(total)*100, float64(total)/duration.Seconds())
}

func doCall(rng *rand.Rand) result {
	seq := callSeq.Add(1)
	if seq > 1 && rng.Float64() < duplicateRate {
		seq = rng.Int63n(seq-1) + 1
	}
	body := map[string]string{
		"id":     fmt.Sprintf("load-%d", seq),
		"handle": fmt.Sprintf("tel:010%08d", rng.Intn(numNumbers)),
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/call", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /call", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /call", resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func doGet(path string, okStatus ...int) result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + path)
	lat := time.Since(start)
	if err != nil {
		return result{"GET " + path, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET " + path, resp.StatusCode, lat, !statusIn(resp.StatusCode, okStatus)}
}

func doPostEmpty(path string, okStatus ...int) result {
	start := time.Now()
	resp, err := httpClient.Post(baseURL+path, "application/json", nil)
	lat := time.Since(start)
	if err != nil {
		return result{"POST " + path, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST " + path, resp.StatusCode, lat, !statusIn(resp.StatusCode, okStatus)}
}

func statusIn(status int, accepted []int) bool {
	for _, s := range accepted {
		if s == status {
			return true
		}
	}
	return false
}

func mean(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

// percentile expects d sorted ascending.
func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	return d[min(int(float64(len(d))*p), len(d)-1)]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
