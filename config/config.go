package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"os-scheduler/internal/requests"
)

type SchedulerConfig struct {
	Port                                     int
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	MultilevelFeedbackQueueLevelsAllotment   []int
	PlaybackTickInterval                     time.Duration
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig reads ./config.yaml once. A missing file falls back to
// defaults; a malformed one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		v := newViper()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
			log.Println("config.yaml not found, using defaults")
		}
		c, err := parseSchedulerConfig(v)
		if err != nil {
			log.Fatalln(err)
		}
		config = c
	})

	return config
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{2, 4, 8})
	v.SetDefault("scheduler.playback.tick_interval_ms", 200)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func parseSchedulerConfig(v *viper.Viper) (*SchedulerConfig, error) {
	c := &SchedulerConfig{}
	c.Port = v.GetInt("port")
	c.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	c.MultilevelFeedbackQueueLevelsTimeQuantum = v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum")
	c.MultilevelFeedbackQueueLevelsAllotment = v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_allotment")
	c.PlaybackTickInterval = time.Duration(v.GetInt("scheduler.playback.tick_interval_ms")) * time.Millisecond

	// without explicit allotments every level demotes after one full quantum
	if len(c.MultilevelFeedbackQueueLevelsAllotment) == 0 {
		c.MultilevelFeedbackQueueLevelsAllotment = append([]int(nil), c.MultilevelFeedbackQueueLevelsTimeQuantum...)
	}
	if len(c.MultilevelFeedbackQueueLevelsAllotment) != len(c.MultilevelFeedbackQueueLevelsTimeQuantum) {
		return nil, fmt.Errorf("config: %d levels_time_quantum but %d levels_allotment",
			len(c.MultilevelFeedbackQueueLevelsTimeQuantum), len(c.MultilevelFeedbackQueueLevelsAllotment))
	}
	if c.PlaybackTickInterval <= 0 {
		return nil, fmt.Errorf("config: playback tick interval must be positive, got %v", c.PlaybackTickInterval)
	}
	return c, nil
}

// Levels pairs the configured quanta and allotments.
func (c *SchedulerConfig) Levels() []requests.Level {
	levels := make([]requests.Level, 0, len(c.MultilevelFeedbackQueueLevelsTimeQuantum))
	for i, quantum := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		levels = append(levels, requests.Level{
			TimeQuantum: quantum,
			Allotment:   c.MultilevelFeedbackQueueLevelsAllotment[i],
		})
	}
	return levels
}

// ApplyDefaults fills the scheduling parameters a request left out.
func (c *SchedulerConfig) ApplyDefaults(request *requests.ScheduleRequests) {
	if request.TimeQuantum == 0 {
		request.TimeQuantum = c.RoundRobinTimeQuantum
	}
	if len(request.Levels) == 0 {
		request.Levels = c.Levels()
	}
}
