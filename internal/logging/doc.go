// Package logging provides structured logging for the planner client.
//
// Logs are JSON lines written through log/slog. The terminal belongs to the
// interactive UI, so the logger writes to a file under the config directory
// and rotates it by size:
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.RotationConfig{MaxSizeMB: 5, MaxBackups: 2})
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	catalogLog := logger.WithComponent("catalog")
//	catalogLog.Info("projects refreshed", "count", 12)
//
// Child loggers created through the With* methods share the underlying
// writer and are safe for concurrent use. Tests and disabled logging use
// [NopLogger].
package logging
