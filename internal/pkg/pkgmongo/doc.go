// Package pkgmongo bootstraps the MongoDB client used by the application.
package pkgmongo
