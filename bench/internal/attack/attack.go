package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	TypeCreate    = "create"
	TypeRedirect  = "redirect"
	TypeAnalytics = "analytics"
	TypeMixed     = "mixed"
)

var errNoCodes = errors.New("attack requires seeded codes")

type Config struct {
	BaseURL            string
	Codes              []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	AnalyticsRatio     float64
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

func Targeter(cfg *Config) (vegeta.Targeter, error) {
	if cfg.Type != TypeCreate && len(cfg.Codes) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.Type, errNoCodes)
	}

	switch cfg.Type {
	case TypeCreate:
		return CreateTargeter(cfg.BaseURL, cfg.RateLimitBypass), nil
	case TypeRedirect:
		return RedirectTargeter(cfg.BaseURL, cfg.Codes, cfg.RateLimitBypass), nil
	case TypeAnalytics:
		return AnalyticsTargeter(cfg.BaseURL, cfg.Codes, cfg.RateLimitBypass), nil
	case TypeMixed:
		return MixedTargeter(cfg.BaseURL, cfg.Codes, cfg.CreateRatio, cfg.AnalyticsRatio, cfg.RateLimitBypass), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		// Redirects are measured as the 302 itself, not the target page.
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(max(cfg.Connections, 1)),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	fmt.Printf("Starting %s attack: rate=%d/s duration=%s codes=%d\n", cfg.Type, cfg.Rate, cfg.Duration, len(cfg.Codes))

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}
