package pkguid

// StringID generates unique string identifiers.
//
// UUID backs product ids and Snowflake backs request correlation ids.
type StringID interface {
	Generate() string
}
