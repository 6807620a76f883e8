// Package logger provides structured logging using zerolog.
//
// A Logger is created from a Config and carries a service name plus any
// fields attached with WithComponent or WithFields. A process-wide logger is
// available through the package-level functions; library code that receives
// no explicit logger falls back to it.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.WithComponent("transcript")
//	log.Info("page fetched", logger.Fields("count", 10))
package logger
