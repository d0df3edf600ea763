// Package pkguid provides helpers for generating unique identifiers.
//
//   - UUID (v7) strings tag requests with correlation IDs.
//   - Snowflake numbers identify file events in publish order.
package pkguid
