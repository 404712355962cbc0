package validators

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/validators/pkg/chain"
)

// urlRegex accepts absolute URLs with any scheme, an optional user-info part,
// a host name, IPv4 or bracketed IPv6 host, an optional port, and anything
// without whitespace after that.
var urlRegex = regexp.MustCompile(`(?i)^([a-z][a-z0-9+.-]*)://` +
	`(?:[^\s:@/]+(?::[^\s@/]*)?@)?` +
	`(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)*|\[[0-9a-f:.]+\])` +
	`(?::\d{1,5})?` +
	`(?:[/?#]\S*)?$`)

// strftime directives understood by Timestamp, mapped to Go reference layout.
// Numeric fields use the unpadded Go forms, which accept one or two digits.
var strftimeReplacer = strings.NewReplacer(
	"%Y", "2006",
	"%y", "06",
	"%m", "1",
	"%d", "2",
	"%j", "002",
	"%H", "15",
	"%I", "3",
	"%M", "4",
	"%S", "5",
	"%p", "PM",
	"%b", "Jan",
	"%B", "January",
	"%a", "Mon",
	"%A", "Monday",
	"%z", "-0700",
	"%Z", "MST",
	"%%", "%",
)

// Match accepts strings that match re at their start. Add a trailing $ to the
// pattern to require a full match.
func Match(re *regexp.Regexp) chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, chain.NewError(KindIsType, "not string")
		}
		if loc := re.FindStringIndex(s); loc == nil || loc[0] != 0 {
			return nil, chain.NewError(KindMatch, "wrong format").WithParam("pattern", re.String())
		}
		return v, nil
	})
}

// URL accepts absolute URLs of any scheme.
func URL() chain.Link[any] {
	return URLWithSchemes()
}

// URLWithSchemes accepts absolute URLs whose scheme is one of schemes,
// compared case-insensitively. No schemes means any scheme.
func URLWithSchemes(schemes ...string) chain.Link[any] {
	allowed := make([]string, 0, len(schemes))
	for _, s := range schemes {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			allowed = append(allowed, s)
		}
	}

	return chain.Chainable(func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, chain.NewError(KindIsType, "not string")
		}
		m := urlRegex.FindStringSubmatch(s)
		if m == nil {
			return nil, chain.NewError(KindURL, "invalid URL")
		}
		if len(allowed) > 0 && !slices.Contains(allowed, strings.ToLower(m[1])) {
			return nil, chain.NewError(KindURL, "unsupported URL scheme").WithParam("schemes", allowed)
		}
		return v, nil
	})
}

// Timestamp accepts strings that parse with layout. The layout is either a Go
// reference layout ("2006-01-02") or a strftime one ("%Y-%m-%d"). In strftime
// layouts %m, %d, %H, %I, %M and %S accept one or two digits.
//
// A strftime layout is translated to a Go layout textually, so literal text
// in it that is also a Go layout token ("1", "2", "Jan", "PM", ...) is read
// as a field by time.Parse. Adjacent numeric directives with no separator
// between them (%m%S) can be misread for the same reason.
func Timestamp(layout string) chain.Link[any] {
	goLayout := layout
	if strings.Contains(layout, "%") {
		goLayout = strftimeReplacer.Replace(layout)
	}

	return chain.Chainable(func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, chain.NewError(KindIsType, "not string")
		}
		if _, err := time.Parse(goLayout, s); err != nil {
			return nil, chain.Errorf(KindTimestamp, "wrong timestamp format: %v", err).WithParam("layout", layout)
		}
		return v, nil
	})
}
