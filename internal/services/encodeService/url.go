package encodeservice

import "net/url"

// EncodeStringUrl percent-encodes the input so it can be placed in a URL query.
func EncodeStringUrl(input string) string {
	return url.QueryEscape(input)
}
