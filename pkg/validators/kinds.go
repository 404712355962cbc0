package validators

// Failure kinds reported by the built-in validators.
const (
	KindRequired  = "required"
	KindNonempty  = "nonempty"
	KindBoolean   = "boolean"
	KindIsType    = "istype"
	KindIsIn      = "isin"
	KindGte       = "gte"
	KindLte       = "lte"
	KindMatch     = "match"
	KindURL       = "url"
	KindTimestamp = "timestamp"
	KindListOf    = "listof"
	KindUUID      = "uuid"
)
