// Command linefall-soak runs headless sessions driven by a random bot and
// reports frame timings and game outcomes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/linefall/input"
	"github.com/plus3/linefall/logging"
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/tetris"
)

// frameStep is the simulated time per frame.
const frameStep = 1.0 / 60

type soakSession struct {
	scheduler *loop.Scheduler
	tally     *Tally
}

func newSoakSession(seed uint64, logger zerolog.Logger) *soakSession {
	session := tetris.NewSession(
		tetris.WithSeed(seed),
		tetris.WithLogger(logger),
	)
	tally := NewTally(session)

	scheduler := loop.NewScheduler()
	scheduler.Register(&input.System{
		Session: session,
		Pollers: []input.Poller{NewBot(session, seed)},
	})
	scheduler.Register(&tetris.DropSystem{Session: session})
	scheduler.Register(tally)
	return &soakSession{scheduler: scheduler, tally: tally}
}

// soak steps every session until ctx is done or maxFrames frames have run
// (zero means no frame limit).
func soak(ctx context.Context, report *Report, seed uint64, maxFrames int64, logger zerolog.Logger) {
	sessions := make([]*soakSession, report.Sessions)
	for i := range sessions {
		sessions[i] = newSoakSession(seed+uint64(i), logger.With().Int("session", i).Logger())
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()
	var totalUpdates int64

Loop:
	for maxFrames == 0 || totalUpdates < maxFrames {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			for _, s := range sessions {
				s.scheduler.Once(frameStep)
			}
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.GameTime = time.Duration(float64(totalUpdates) * frameStep * float64(time.Second))
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, s := range sessions {
		report.Add(s.tally)
	}
	report.Systems = sessions[0].scheduler.GetStats().Systems
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	sessionCount := flag.Int("sessions", 8, "The number of concurrent sessions to simulate.")
	seed := flag.Uint64("seed", 1, "Seed of the first session; later sessions use seed+i.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "warn", "Session log level.")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(2)
	}
	if *sessionCount < 1 {
		fmt.Fprintln(os.Stderr, "-sessions must be at least 1")
		os.Exit(2)
	}
	logger := logging.New(level, os.Stderr)

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessionCount,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	log.Info().Dur("duration", *duration).Int("sessions", *sessionCount).Msg("running soak")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	soak(ctx, report, *seed, 0, logger)
	log.Info().Int64("frames", report.TotalUpdates).Msg("soak finished")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
