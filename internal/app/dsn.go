package app

import (
	"net/url"
	"strings"
)

const (
	preparedBinaryParam   = "disable_prepared_binary_result"
	maxTracedQueryLength  = 512
	tracedQueryTruncation = "..."
)

// postgresDSN is a connection string plus the database name used to label
// traced queries. Both URL and key=value forms are accepted.
type postgresDSN struct {
	raw    string
	dbName string
}

func parsePostgresDSN(raw string, disablePreparedBinary bool) postgresDSN {
	raw = strings.TrimSpace(raw)
	if disablePreparedBinary {
		raw = withPreparedBinaryDisabled(raw)
	}
	return postgresDSN{raw: raw, dbName: databaseName(raw)}
}

func (d postgresDSN) String() string {
	return d.raw
}

// withPreparedBinaryDisabled sets the lib/pq flag unless the DSN already
// carries an explicit value.
func withPreparedBinaryDisabled(raw string) string {
	if raw == "" {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err == nil && parsed.Scheme != "" {
		query := parsed.Query()
		if query.Get(preparedBinaryParam) != "" {
			return raw
		}
		query.Set(preparedBinaryParam, "yes")
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	if _, ok := keywordValue(raw, preparedBinaryParam); ok {
		return raw
	}
	return raw + " " + preparedBinaryParam + "=yes"
}

func databaseName(raw string) string {
	parsed, err := url.Parse(raw)
	if err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	name, _ := keywordValue(raw, "dbname")
	return name
}

func keywordValue(raw, key string) (string, bool) {
	prefix := key + "="
	for _, token := range strings.Fields(raw) {
		if !strings.HasPrefix(token, prefix) {
			continue
		}
		value := strings.Trim(strings.TrimPrefix(token, prefix), `"'`)
		return value, value != ""
	}
	return "", false
}

// formatQueryForTrace collapses whitespace and caps the statement length
// recorded on db spans.
func formatQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + tracedQueryTruncation
}
