// Package domain holds the sentinel errors and the validation error type
// shared by every layer. The leap-year rule and its value types live in
// domain/calendar.
package domain
