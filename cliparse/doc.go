// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Server Configuration

	cfg, err := cliparse.ParseServerFlags(os.Args[1:])

Fields:

  - Port: Server listen port (default: 8080)
  - DatabaseURL: Connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - PublishKeySalt: Secret for publish key HMAC (required)
  - CacheTTL: In-memory result cache lifetime (default: 5m)
  - Verbose: Debug logging and per-request HTTP logs

Flags and their environment fallbacks:

	-p, --port           PORT
	-d, --database-url   DATABASE_URL
	-t, --database-type  DATABASE_TYPE
	--cache-ttl          CACHE_TTL
	--publish-salt       PUBLISH_KEY_SALT
	-v, --verbose
	--print-keys         print publish keys and exit

# Client Configuration

	cfg, err := cliparse.ParseClientFlags(os.Args[1:])

	-a, --api-url   POPULAR_API_URL   (default: http://localhost:8080)
	--search-host   SEARCH_HOST       (default: hypnohub.net)
	-f, --fragment                    initial fragment, e.g. daily or about
	--log-file      POPULAR_LOG_FILE
	-v, --verbose

CLI flags take precedence over environment variables.

# .env Files

LoadDotEnv reads ./.env before parsing. Values already present in the
environment are not overwritten.
*/
package cliparse
