package main

import "time"

type Config struct {
	BadgerFilepath  string        `env:"BADGER_FILEPATH,default=./data/boozbaal"`
	BadgerInMemory  bool          `env:"BADGER_IN_MEMORY,default=false"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	AppPrefix       string        `env:"APP_PREFIX,default=boozbaal-chat"`
	InviteBaseURL   string        `env:"INVITE_BASE_URL,default=http://localhost:5173/"`
	APIKey          string        `env:"API_KEY"`
	AIModel         string        `env:"AI_MODEL,default=gemini-2.5-flash"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
}
