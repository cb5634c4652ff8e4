package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/api"
	"os-scheduler/config"
	"os-scheduler/internal/playback"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/report"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

const usage = `usage:
  os-scheduler [serve]
  os-scheduler run <fcfs|sjf|srtf|rr|mlfq> <jobs.csv>
  os-scheduler compare <jobs.csv> [chart.png]
  os-scheduler play <fcfs|sjf|srtf|rr|mlfq> <jobs.csv>`

func main() {
	schedulerConfig := config.GetSchedulerConfig()

	mode := "serve"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	var err error
	switch mode {
	case "serve":
		err = serve(schedulerConfig)
	case "run":
		err = run(schedulerConfig, os.Args[2:])
	case "compare":
		err = compare(schedulerConfig, os.Args[2:])
	case "play":
		err = play(schedulerConfig, os.Args[2:])
	default:
		err = fmt.Errorf("%w: unknown mode %q\n%s", ErrInvalidArgs, mode, usage)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func serve(schedulerConfig *config.SchedulerConfig) error {
	app := fiber.New()
	api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(schedulerConfig))

	return app.Listen(fmt.Sprintf(":%d", schedulerConfig.Port))
}

func loadRequest(schedulerConfig *config.SchedulerConfig, path string) (*requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scheduling file: %w", err)
	}
	defer f.Close()

	jobs, err := requests.LoadJobs(f)
	if err != nil {
		return nil, err
	}
	request := &requests.ScheduleRequests{Jobs: jobs}
	schedulerConfig.ApplyDefaults(request)
	return request, nil
}

func scheduleFile(schedulerConfig *config.SchedulerConfig, args []string) (responses.ScheduleResponse, error) {
	if len(args) != 2 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: need an algorithm and a scheduling file\n%s", ErrInvalidArgs, usage)
	}
	request, err := loadRequest(schedulerConfig, args[1])
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	request.Algorithm = args[0]
	return schedulers.Schedule(request)
}

func run(schedulerConfig *config.SchedulerConfig, args []string) error {
	response, err := scheduleFile(schedulerConfig, args)
	if err != nil {
		return err
	}
	report.WriteSchedule(os.Stdout, response)
	return nil
}

func compare(schedulerConfig *config.SchedulerConfig, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: need a scheduling file\n%s", ErrInvalidArgs, usage)
	}
	request, err := loadRequest(schedulerConfig, args[0])
	if err != nil {
		return err
	}
	results, err := schedulers.ScheduleAll(request)
	if err != nil {
		return err
	}
	report.WriteComparison(os.Stdout, results)
	if len(args) == 2 {
		if err := report.SaveAveragesChart(results, args[1]); err != nil {
			return err
		}
		log.Println("chart saved to", args[1])
	}
	return nil
}

func play(schedulerConfig *config.SchedulerConfig, args []string) error {
	response, err := scheduleFile(schedulerConfig, args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = playback.Play(ctx, response.Trace, schedulerConfig.PlaybackTickInterval, func(t playback.Tick) {
		fmt.Printf("t=%-4d %s (level %d)\n", t.Tick, t.ProcessId, t.Level)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
