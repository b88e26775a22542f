package jsonapi

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// MediaType is the JSON:API media type.
const MediaType = "application/vnd.api+json"

// FormatMediaType renders the JSON:API media type with optional ext and
// profile parameters, each carrying a whitespace-separated list of URIs.
func FormatMediaType(ext, profile []string) string {
	params := make(map[string]string, 2)
	if len(ext) > 0 {
		params["ext"] = strings.Join(ext, " ")
	}
	if len(profile) > 0 {
		params["profile"] = strings.Join(profile, " ")
	}
	return mime.FormatMediaType(MediaType, params)
}

// FormatAcceptEntry renders an Accept header entry for the JSON:API media
// type. A q in [0, 1] is emitted as a quality parameter, including the
// explicit q=0 ("not acceptable") and q=1 forms. Pass a negative q to omit
// the parameter; values above 1 are not valid qualities and are omitted
// too.
func FormatAcceptEntry(ext, profile []string, q float64) string {
	entry := FormatMediaType(ext, profile)
	if q >= 0 && q <= 1 {
		entry += ";q=" + strconv.FormatFloat(q, 'g', 3, 64)
	}
	return entry
}

// AcceptsMediaType reports whether the given request headers accept the
// JSON:API media type.
//
// Per the specification, instances of the media type modified by a media
// type parameter other than ext or profile are ignored; the header is
// acceptable if at least one instance remains.
func AcceptsMediaType(header http.Header) bool {
	for _, accept := range header.Values("Accept") {
		for _, entry := range splitAcceptEntries(accept) {
			mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(entry))
			if err != nil || mediaType != MediaType {
				continue
			}
			hasUnsupportedParams := false
			for k := range params {
				if k != "ext" && k != "profile" && k != "q" {
					hasUnsupportedParams = true
					break
				}
			}
			if !hasUnsupportedParams {
				return true
			}
		}
	}
	return false
}

// splitAcceptEntries splits an Accept header value on commas, ignoring
// commas inside quoted parameter values.
func splitAcceptEntries(accept string) []string {
	var entries []string
	start := 0
	inQuotes := false
	for i := 0; i < len(accept); i++ {
		switch accept[i] {
		case '"':
			inQuotes = !inQuotes
		case '\\':
			if inQuotes {
				i++
			}
		case ',':
			if !inQuotes {
				entries = append(entries, accept[start:i])
				start = i + 1
			}
		}
	}
	return append(entries, accept[start:])
}
