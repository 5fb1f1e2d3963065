// Package dialect identifies the three documentation schema families a
// declared tree can target: the legacy Swagger 1.2 resource listing and API
// declaration format, OpenAPI 2.0, and OpenAPI 3.0.
//
// A node's dialect is fixed once it is known. It is either supplied
// explicitly or inferred from a marker key on a root node:
//
//	swaggerVersion: "1.2"  -> Swagger12
//	swagger: "2.0"         -> OAS20
//	openapi: "3.0.x"       -> OAS30
package dialect

import (
	"strconv"
	"strings"
)

// Dialect represents one schema family.
type Dialect int

const (
	// Unknown represents an unknown or not yet resolved dialect
	Unknown Dialect = iota
	// Swagger12 is the legacy resource listing / API declaration format
	Swagger12
	// OAS20 is OpenAPI Specification Version 2.0 (Swagger)
	OAS20
	// OAS30 is OpenAPI Specification Version 3.0.x
	OAS30
)

// Marker keys that carry a document's version.
const (
	MarkerSwaggerVersion = "swaggerVersion"
	MarkerSwagger        = "swagger"
	MarkerOpenAPI        = "openapi"
)

var dialectToString = map[Dialect]string{
	Swagger12: "1.2",
	OAS20:     "2.0",
	OAS30:     "3.0",
}

func (d Dialect) String() string {
	if s, ok := dialectToString[d]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a known dialect
func (d Dialect) IsValid() bool {
	_, ok := dialectToString[d]
	return ok
}

// IsLegacy returns true for the Swagger 1.2 family.
func (d Dialect) IsLegacy() bool {
	return d == Swagger12
}

// RefPrefix returns the local pointer prefix that bare schema names are
// rewritten to under $ref. It is empty for dialects that do not rewrite.
func (d Dialect) RefPrefix() string {
	switch d {
	case OAS20:
		return "#/definitions/"
	case OAS30:
		return "#/components/schemas/"
	default:
		return ""
	}
}

// Parse converts a version string to a Dialect, and returns false if not valid.
// This function supports:
//  1. Exact family names ("1.2", "2.0", "3.0")
//  2. Any 3.0.x patch release, including future ones and pre-releases
//     (e.g., "3.0.3", "3.0.9", "3.0.0-rc1")
func Parse(s string) (Dialect, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "1.2":
		return Swagger12, true
	case "2.0":
		return OAS20, true
	case "3.0":
		return OAS30, true
	}

	rest, ok := strings.CutPrefix(s, "3.0.")
	if !ok {
		return Unknown, false
	}
	// Strip pre-release and build metadata
	if i := strings.IndexAny(rest, "-+"); i >= 0 {
		rest = rest[:i]
	}
	if _, err := strconv.ParseUint(rest, 10, 16); err != nil {
		return Unknown, false
	}
	return OAS30, true
}

// Infer determines the dialect from the marker keys of an attribute map.
// get looks up a single attribute. Markers are only honored when their
// value is a string naming the matching family; anything else yields
// Unknown.
func Infer(get func(key string) (any, bool)) Dialect {
	if v, ok := markerString(get, MarkerSwagger); ok && v == "2.0" {
		return OAS20
	}
	if v, ok := markerString(get, MarkerSwaggerVersion); ok && v == "1.2" {
		return Swagger12
	}
	if v, ok := markerString(get, MarkerOpenAPI); ok {
		if d, ok := Parse(v); ok && d == OAS30 {
			return OAS30
		}
	}
	return Unknown
}

func markerString(get func(key string) (any, bool), key string) (string, bool) {
	v, ok := get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
