package domain

// Table is a mongo collection name
type Table string

const (
	TableMintSessions Table = "mint_sessions"
)
