package config

import "time"

const WorkDir = ".bing-translator"

type Config struct {
	Endpoint string
	Timeout  time.Duration
}
