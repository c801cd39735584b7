// Package config locates the shepherd agent's own configuration so
// periscope can find the diagnostic log without any setup of its own.
// Missing files fall back to the agent's defaults; PERISCOPE_CONFIG and
// PERISCOPE_LOG_DIR environment variables override for nonstandard installs.
package config
