// Package domain contains the core model for setupd.
//
// The domain does not depend on YAML parsing, net/http, or the filesystem.
// Infra packages map into/from these types.
package domain
