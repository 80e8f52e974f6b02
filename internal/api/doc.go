// Package api handles incoming HTTP requests, request validation, and
// response formatting for the summary endpoint and the reminder control
// API. It translates HTTP concerns to calls on the summary service and the
// reminder engine.
package api
