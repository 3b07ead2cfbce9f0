package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// PageScenario is one signed-in page a simulated user opens
type PageScenario struct {
	Name string
	Path string
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

var scenarios = []PageScenario{
	{"Dashboard", "/app/dashboard"},
	{"Wallet", "/app/wallet"},
	{"Subscriptions", "/app/subscriptions"},
	{"Withdraw", "/app/withdraw"},
	{"Transfer", "/app/transfer"},
	{"Transactions", "/app/transactions"},
	{"Redeem", "/app/redeem"},
	{"Notifications", "/app/notifications"},
	{"Referrals", "/app/referrals"},
	{"Settings", "/app/settings"},
}

func main() {
	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of simulated signed-in users")
	totalRequests := flag.Int("n", 100, "Total number of page requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the dashboard")
	email := flag.String("email", "", "Account email used by every simulated user")
	password := flag.String("password", "", "Account password")
	delayMs := flag.Int("delay", 100, "Delay between requests of one user in milliseconds")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("-email and -password are required")
		return
	}

	fmt.Printf("Load testing %s with %d users\n", *baseURL, *concurrency)
	fmt.Printf("Page scenarios: %d\n", len(scenarios))
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Lock.Unlock()
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, *totalRequests, float64(completed)/float64(*totalRequests)*100)
			}
		}
	}()

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < *concurrency; i++ {
		g.Go(func() error {
			return worker(ctx, *baseURL, *email, *password, *delayMs, jobs, stats)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("Load test aborted: %v\n", err)
	}

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// worker signs in once with its own cookie jar and then opens random pages
func worker(ctx context.Context, baseURL, email, password string, delayMs int, jobs <-chan int, stats *TestStats) error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	client := &http.Client{
		Timeout: 10 * time.Second,
		Jar:     jar,
		// Redirects after form posts are reported as they are
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	if err := signIn(ctx, client, baseURL, email, password); err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if delayMs > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Duration(delayMs)*time.Millisecond), 1)
	}

	for range jobs {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		stats.record(openPage(ctx, client, baseURL, scenarios[rand.Intn(len(scenarios))]))
	}
	return nil
}

func signIn(ctx context.Context, client *http.Client, baseURL, email, password string) error {
	form := url.Values{"email": {email}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusSeeOther {
		return fmt.Errorf("sign in failed with HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func openPage(ctx context.Context, client *http.Client, baseURL string, scenario PageScenario) TestResult {
	result := TestResult{Scenario: scenario.Name}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+scenario.Path, nil)
	if err != nil {
		result.Error = err
		return result
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		result.ResponseTime = time.Since(start)
		result.Error = err
		return result
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	result.ResponseTime = time.Since(start)

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode == http.StatusOK
	switch {
	case result.Success:
	case resp.StatusCode == http.StatusFound || resp.StatusCode == http.StatusSeeOther:
		result.Error = errors.New("redirected, session lost")
	default:
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[min(len(sorted)*p/100, len(sorted)-1)]
}

func printResults(stats *TestStats) {
	completed := stats.SuccessfulRequests + stats.FailedRequests
	if completed == 0 {
		fmt.Println("No requests completed")
		return
	}

	pagesPerSecond := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	avgResponseTime := stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))

	sortedTimes := slices.Clone(stats.ResponseTimes)
	slices.Sort(sortedTimes)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Completed Requests:  %d of %d\n", completed, stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(completed)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(completed)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Pages per second:    %.2f\n", pagesPerSecond)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sortedTimes, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sortedTimes, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sortedTimes, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sortedTimes, 99))

	fmt.Println("\n----------------- PAGE DISTRIBUTION -----------------")
	for _, scenario := range scenarios {
		if count := stats.ScenarioStats[scenario.Name]; count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario.Name, count,
				float64(count)/float64(completed)*100)
		}
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(completed)*100)
		}
	}
	fmt.Println("================================================")
}
