// Package exitcode lists the process exit statuses of tasksync.
package exitcode

const (
	Success = 0

	// UserError covers bad arguments, blank titles and task refs that
	// match nothing in the loaded list.
	UserError = 1

	// ConfigError covers an unreadable config.json and a rejected base URL.
	// Nothing has been sent to the store yet.
	ConfigError = 2

	// BackendError means the store call failed; stderr carries the
	// session's user-facing message.
	BackendError = 3
)
