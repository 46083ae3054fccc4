/*
Package config loads and validates the Wings daemon configuration.

Configuration lives in a single TOML file (default
/etc/nexus-wings/config.toml) with five sections:

	[panel]   url, token_id (optional), token
	[api]     host, port, tls_cert (optional), tls_key (optional)
	[docker]  socket
	[storage] data_dir
	[logging] level, file (optional)

Only panel.url and panel.token are required; everything else falls back to
the defaults in Default(). Load returns a types.Configf error for unreadable
or unparseable files, which the CLI reports and exits non-zero.

Save exists for the interactive configure wizard; it writes the TOML back
out, creating /etc/nexus-wings on first run.

The gRPC listener is not configured separately: it always binds the HTTP
port plus one (GRPCAddr).
*/
package config
