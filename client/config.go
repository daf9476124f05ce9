package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/puyokura/designarena/model"
)

const (
	defaultReplyDelayMS   = 1500
	defaultInputCharLimit = 256
	defaultLogFile        = "logs/client.log"
)

type Config struct {
	ReplyDelayMS   int    `json:"reply_delay_ms"`
	CannedReply    string `json:"canned_reply"`
	LogFile        string `json:"log_file"` // Empty disables logging
	AltScreen      bool   `json:"alt_screen"`
	Seed           uint64 `json:"seed"` // 0 picks a time based seed
	InputCharLimit int    `json:"input_char_limit"`
	configFile     string
}

// NewConfig returns the defaults. With an empty filename Load and Save do nothing.
func NewConfig(filename string) *Config {
	return &Config{
		configFile: filename,
		// Defaults
		ReplyDelayMS:   defaultReplyDelayMS,
		CannedReply:    model.CannedReply,
		LogFile:        defaultLogFile,
		AltScreen:      true,
		InputCharLimit: defaultInputCharLimit,
	}
}

func (c *Config) Load() error {
	if c.configFile == "" {
		return nil
	}

	if _, err := os.Stat(c.configFile); os.IsNotExist(err) {
		// First run with this path: write the defaults out.
		return c.Save()
	}

	data, err := os.ReadFile(c.configFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", c.configFile, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", c.configFile, err)
	}

	// Rewrite so fields absent from the file show up with their defaults.
	return c.Save()
}

func (c *Config) Save() error {
	if c.configFile == "" {
		return nil
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.configFile, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", c.configFile, err)
	}
	return nil
}

// Validate resets out of range values to their defaults.
func (c *Config) Validate() {
	if c.ReplyDelayMS < 0 {
		c.ReplyDelayMS = defaultReplyDelayMS
	}
	if c.CannedReply == "" {
		c.CannedReply = model.CannedReply
	}
	if c.InputCharLimit <= 0 {
		c.InputCharLimit = defaultInputCharLimit
	}
}

func (c *Config) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}

func (c *Config) SetReplyDelay(d time.Duration) {
	c.ReplyDelayMS = int(d / time.Millisecond)
}
