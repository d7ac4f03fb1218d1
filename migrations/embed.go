// Package migrations embeds the SQL schema applied by "medcare-server migrate".
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
