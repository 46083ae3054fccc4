/*
Package log provides structured logging for Wings using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. All logs include timestamps and support filtering
by severity level for production debugging.

# Architecture

Wings logging provides structured JSON logging with minimal overhead:

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stdout, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - WithComponent("manager")                 │          │
	│  │  - WithComponent("heartbeat")               │          │
	│  │  - WithServerUUID("1111-...")               │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │                                              │          │
	│  │  JSON Format:                               │          │
	│  │  {                                           │          │
	│  │    "level": "info",                         │          │
	│  │    "component": "manager",                  │          │
	│  │    "time": "2026-08-25T10:30:00Z",         │          │
	│  │    "message": "server started"              │          │
	│  │  }                                           │          │
	│  │                                              │          │
	│  │  Console Format:                            │          │
	│  │  10:30AM INF server started component=manager │        │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

Global Logger:
  - Package-level zerolog.Logger instance
  - Initialized once via log.Init() at daemon startup
  - Accessible from all Wings packages
  - Thread-safe concurrent writes

Component Loggers:
  - WithComponent(name) tags every entry with the subsystem name
  - WithServerUUID(uuid) tags entries for a single managed server
  - Child loggers inherit level and output from the global logger

# Usage

Initialization (once, in main):

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

Component logging:

	logger := log.WithComponent("installer")
	logger.Info().Str("uuid", uuid).Msg("install started")

Quick helpers:

	log.Info("daemon ready")
	log.Errorf("heartbeat failed", err)

# Integration Points

Every long-lived component (manager, heartbeat, installer, API servers)
creates its own component logger at construction time. The console buffer
and event bus log only on overflow, at warn level.
*/
package log
