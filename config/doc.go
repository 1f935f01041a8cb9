// Package config loads the application configuration from config.yml and
// provides built-in defaults matching the public 12306 endpoints, so the
// library is usable without any configuration file.
package config
