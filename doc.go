// Package pgtext parses PostgreSQL text format values by type name.
/*
The pgtype package holds the codecs. This package maps PostgreSQL type names, including SQL aliases, array names and
bit string length modifiers, to those codecs so that a literal can be parsed when only the name of its type is known.

	tm, err := pgtext.NewTypeMap(pgtext.Config{ServerVersion: "15.4"})
	if err != nil {
		return err
	}
	v, err := tm.Parse(ctx, "int4range", "[1,10)")

Types that need a newer server than Config.ServerVersion are not registered. Multirange types need PostgreSQL 14.

Logging

TypeMap logs each parse to Config.Logger. Successful parses are logged at LogLevelDebug and failures at
LogLevelWarn. Adapters for common logging libraries are in the log directory.
*/
package pgtext
