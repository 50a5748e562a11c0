// Package logger provides slog construction and attribute helpers shared by
// the signalkit packages and the applications built on them.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("demo"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("signal wired",
//		logger.Signal("click"),
//		logger.Status(st),
//		logger.Connections(click.Connections(), click.Capacity()),
//	)
//
// Helpers return an empty slog.Attr for nil or empty input, which slog
// omits from output:
//
//	log.Error("connect failed", logger.Error(st.Err()))
package logger
