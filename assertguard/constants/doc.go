// Package constant holds the names shared by assertguard packages: diagnostic
// templates, telemetry metric and attribute names.
package constant
