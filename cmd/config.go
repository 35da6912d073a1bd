package main

import (
	"fmt"
	"time"
)

type Config struct {
	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`
	SweepInterval        time.Duration `env:"SWEEP_INTERVAL,required=true"`
	IdleTimeout          time.Duration `env:"IDLE_TIMEOUT,required=true"`
	TelemetryInterval    time.Duration `env:"TELEMETRY_INTERVAL,required=true"`
	CensorCharacter      string        `env:"CENSOR_CHARACTER,default=*"`
	SearchLimit          int           `env:"SEARCH_LIMIT,default=50"`
	TimelineKeep         int           `env:"TIMELINE_KEEP,default=20"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath        string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	// DEBUG_PORT enables the HTTP store inspector when non-zero
	DebugPort int `env:"DEBUG_PORT,default=0"`
}

func characterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
