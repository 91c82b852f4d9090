// Package config loads the policies applied to fixed strings built by the
// fixbuf command: which failure reporter to use, whether truncation is
// tracked or treated as an error, the default capacity and logging.
//
// Configuration comes from a TOML or YAML file, chosen by extension, laid
// over Default. Environment variables prefixed with FIXBUF_ override the
// file:
//
//	FIXBUF_FAILURE          failure policy (silent, log, raise)
//	FIXBUF_CAPACITY         default capacity
//	FIXBUF_TRUNCATION_TRACK track truncation (true/false)
//	FIXBUF_TRUNCATION_ERROR report truncation as an error (true/false)
//	FIXBUF_LOG_LEVEL        log level
//	FIXBUF_LOG_FORMAT       log format (console, json)
//	FIXBUF_LOG_FILE         log file
//
// Example TOML:
//
//	failure = "log"
//	capacity = 128
//
//	[truncation]
//	track = true
//	error = false
//
//	[log]
//	level = "warn"
//	format = "json"
package config
