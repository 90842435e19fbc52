// Package migrations embeds the SQL schema of the service.
package migrations

import "embed"

// FS holds the numbered up/down migration pairs read by the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
