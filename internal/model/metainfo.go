package model

// MetaInfo is service-wide meta information persisted in the database
type MetaInfo struct {
	// Version of the service which touched the database last
	Version string

	// DatabaseVersion is a version of database schema
	DatabaseVersion uint
}
