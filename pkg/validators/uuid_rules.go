package validators

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validators/pkg/chain"
)

// UUID accepts canonical UUID strings (8-4-4-4-12) and uuid.UUID values.
// The nil UUID is accepted.
func UUID() chain.Link[any] {
	return chain.Chainable(func(v any) (any, error) {
		switch val := v.(type) {
		case uuid.UUID:
			return v, nil
		case string:
			if !isCanonicalUUID(val) {
				return nil, chain.NewError(KindUUID, "must be a valid UUID")
			}
			return v, nil
		default:
			return nil, chain.NewError(KindIsType, "not string")
		}
	})
}

// isCanonicalUUID rejects obviously malformed input before parsing, since
// uuid.Parse also accepts braced and urn-prefixed forms.
func isCanonicalUUID(s string) bool {
	if strings.TrimSpace(s) == "" || len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
