package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// Chapters requested during the run. After the first fetch they are served
// from the daemon's chapter cache, so the remote service sees few requests.
var chapters = []struct {
	book    string
	chapter int
}{
	{"Salmos", 23}, {"João", 3}, {"Gênesis", 1}, {"Provérbios", 3}, {"Romanos", 8},
}

var httpClient = &http.Client{
	Timeout: 15 * time.Second,
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
	baseURL := flag.String("url", "http://127.0.0.1:8090", "readtrack base URL")
	workers := flag.Int("workers", 20, "concurrent workers")
	duration := flag.Duration("duration", 10*time.Second, "length of each phase")
	flag.Parse()

	fmt.Println("=== ReadTrack Load Test ===")
	fmt.Printf("Target: %s | Workers: %d | Phase: %s\n\n", *baseURL, *workers, *duration)

	fmt.Print("Waiting for server... ")
	if !waitForHealth(*baseURL) {
		fmt.Println("FAILED: server not responding")
		return
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Warm chapter cache (GET /chapter) ---")
	for _, c := range chapters {
		r := doSearch(*baseURL, c.book, c.chapter)
		fmt.Printf("  %s %d -> %d in %s\n", c.book, c.chapter, r.status, fmtDur(r.latency))
	}

	fmt.Println("\n--- Phase 2: Reading (40% search+mark, 60% views) ---")
	runPhase(*workers, *duration, func(rng *rand.Rand) []result {
		if rng.Float64() < 0.40 {
			c := chapters[rng.Intn(len(chapters))]
			return []result{doSearch(*baseURL, c.book, c.chapter), doMark(*baseURL)}
		}
		return []result{doView(*baseURL, rng)}
	})

	fmt.Println("\n--- Phase 3: Dashboard-heavy (5% goal changes, 95% views) ---")
	runPhase(*workers, *duration, func(rng *rand.Rand) []result {
		if rng.Float64() < 0.05 {
			return []result{doSetGoal(*baseURL, rng.Intn(5)+1)}
		}
		return []result{doView(*baseURL, rng)}
	})
}

func waitForHealth(baseURL string) bool {
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return true
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}

func runPhase(workers int, duration time.Duration, workFn func(rng *rand.Rand) []result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					for _, r := range workFn(rng) {
						results <- r
					}
				}
			}
		}(time.Now().UnixNano() + int64(i))
	}

	all := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := all[r.endpoint]
			if !ok {
				s = &stats{}
				all[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(all, duration)
}

func printResults(all map[string]*stats, duration time.Duration) {
	var totalOps, totalErrors int64

	endpoints := make([]string, 0, len(all))
	for ep := range all {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s\n", "Endpoint", "Reqs", "Errs", "Avg", "P50", "P99")
	fmt.Println("  " + strings.Repeat("-", 76))

	for _, ep := range endpoints {
		s := all[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool { return s.latencies[i] < s.latencies[j] })
		fmt.Printf("  %-22s %8d %6d %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)), fmtDur(percentile(s.latencies, 0.50)), fmtDur(percentile(s.latencies, 0.99)))
	}

	fmt.Println("  " + strings.Repeat("-", 76))
	if totalOps == 0 {
		fmt.Println("  No requests completed")
		return
	}
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

// call performs one request. A status listed in ok is not counted as an error.
func call(endpoint, method, target string, body []byte, ok ...int) result {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		return result{endpoint: endpoint, err: true}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	for _, s := range ok {
		if resp.StatusCode == s {
			return result{endpoint, resp.StatusCode, lat, false}
		}
	}
	return result{endpoint, resp.StatusCode, lat, true}
}

func doSearch(baseURL, book string, chapter int) result {
	q := url.Values{"book": {book}, "chapter": {fmt.Sprint(chapter)}}
	return call("GET /chapter", http.MethodGet, baseURL+"/chapter?"+q.Encode(), nil, http.StatusOK)
}

// doMark may race with other workers on the single reading session, so a
// conflict is an expected answer.
func doMark(baseURL string) result {
	return call("POST /chapter/read", http.MethodPost, baseURL+"/chapter/read", nil, http.StatusCreated, http.StatusConflict)
}

func doSetGoal(baseURL string, goal int) result {
	body, _ := json.Marshal(map[string]int{"goal": goal})
	return call("PUT /goal", http.MethodPut, baseURL+"/goal", body, http.StatusOK)
}

func doView(baseURL string, rng *rand.Rand) result {
	switch r := rng.Float64(); {
	case r < 0.40:
		return call("GET /dashboard", http.MethodGet, baseURL+"/dashboard", nil, http.StatusOK)
	case r < 0.65:
		return call("GET /stats", http.MethodGet, baseURL+"/stats", nil, http.StatusOK)
	case r < 0.85:
		return call("GET /history", http.MethodGet, fmt.Sprintf("%s/history?limit=%d", baseURL, rng.Intn(20)+1), nil, http.StatusOK)
	default:
		return call("GET /achievements", http.MethodGet, baseURL+"/achievements", nil, http.StatusOK)
	}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
