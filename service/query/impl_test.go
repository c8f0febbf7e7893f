package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/database/mongoclient"
	"github.com/x-xyz/artmint/base/env"
	"github.com/x-xyz/artmint/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type dummy struct {
	Id    string `bson:"_id"`
	Name  string `bson:"name"`
	Order int    `bson:"order"`
}

type querySuite struct {
	suite.Suite
	im Mongo
}

func TestQuerySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("needs a mongo server")
	}
	suite.Run(t, new(querySuite))
}

func (q *querySuite) SetupSuite() {
	client, err := mongoclient.ConnectMongoClient(mockCTX, mongoclient.Config{
		URI:    env.Get("TEST_MONGO_URI", "mongodb://localhost:27017"),
		DBName: dbName,
	})
	if err != nil {
		q.T().Skipf("mongo unavailable: %v", err)
	}
	q.im = New(client)
}

func (q *querySuite) SetupTest() {
	q.Require().NoError(q.im.(*impl).collection(mockTable).Drop(mockCTX))
}

func (q *querySuite) TestInsertFindOne() {
	req := q.Require()
	req.NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", "alpha", 1}))

	res := dummy{}
	req.NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"_id": "a"}, &res))
	req.Equal(dummy{"a", "alpha", 1}, res)

	req.ErrorIs(q.im.FindOne(mockCTX, mockTable, bson.M{"_id": "b"}, &res), ErrNotFound)
	req.ErrorIs(q.im.Insert(mockCTX, mockTable, dummy{"a", "again", 2}), ErrDuplicateKey)
}

func (q *querySuite) TestSearch() {
	req := q.Require()
	for i, id := range []string{"a", "b", "c"} {
		req.NoError(q.im.Insert(mockCTX, mockTable, dummy{id, id, i}))
	}

	res := []dummy{}
	req.NoError(q.im.Search(mockCTX, mockTable, 0, 2, "-order", bson.M{}, &res))
	req.Len(res, 2)
	req.Equal("c", res[0].Id)
	req.Equal("b", res[1].Id)
}

func (q *querySuite) TestPatch() {
	req := q.Require()
	req.NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", "alpha", 1}))

	req.NoError(q.im.Patch(mockCTX, mockTable, bson.M{"_id": "a", "order": 1}, bson.M{"order": 2}))
	req.ErrorIs(q.im.Patch(mockCTX, mockTable, bson.M{"_id": "a", "order": 1}, bson.M{"order": 3}), ErrNotFound)

	res := dummy{}
	req.NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"_id": "a"}, &res))
	req.Equal(2, res.Order)
}

func (q *querySuite) TestEnsureIndexes() {
	req := q.Require()
	idx := []Index{{Name: "name_unique", Keys: []string{"name"}, Unique: true}}
	req.NoError(q.im.EnsureIndexes(mockCTX, mockTable, idx))
	// idempotent
	req.NoError(q.im.EnsureIndexes(mockCTX, mockTable, idx))

	req.NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", "alpha", 1}))
	req.ErrorIs(q.im.Insert(mockCTX, mockTable, dummy{"b", "alpha", 2}), ErrDuplicateKey)
}

func TestSlowLog(t *testing.T) {
	start := time.Now()
	timeNow = func() time.Time { return start.Add(-time.Second) }
	defer func() { timeNow = time.Now }()

	// logs, never panics
	slowLog(mockCTX, "t", "find", bson.M{"a": 1}, nil)()
}

func TestGetSortOption(t *testing.T) {
	s := getSortOption("-createdAt", "", "id")
	if len(s) != 2 || s[0].Value != -1 || s[1].Value != 1 || s[0].Key != "createdAt" {
		t.Fatalf("unexpected sort %v", s)
	}
}
