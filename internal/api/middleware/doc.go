// Package middleware contains HTTP middleware shared by both servers.
package middleware
