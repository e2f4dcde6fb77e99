// Package process manages the lifetime of external converter processes.
package process
