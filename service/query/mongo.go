package query

/*
	Description:
		Package `query` provides interface for querying mongo db
		This package is nothing but a thin wrapper of https://github.com/mongodb/mongo-go-driver
		so please read document at following link for any detail
		https://godoc.org/go.mongodb.org/mongo-driver/mongo
*/

import (
	"fmt"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

// Index is an ascending index on keys. A sparse index skips documents
// missing the keys.
type Index struct {
	Name   string
	Keys   []string
	Unique bool
	Sparse bool
}

//Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Search sort order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// if `sort` is "", the sort action is skipped, and the MongoDB does not guarantee the order of query results.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Patch sets the fields of update on one entry.
	// Return ErrNotFound if selector does not match any documents,
	// ErrDuplicateKey if the update violates a unique index
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// EnsureIndexes creates the missing indexes of the table
	EnsureIndexes(context ctx.Ctx, table domain.Table, indexes []Index) error
}
