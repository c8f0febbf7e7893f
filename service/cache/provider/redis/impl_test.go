package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/service/cache/provider"
	"github.com/x-xyz/artmint/service/redis"
	mockRedis "github.com/x-xyz/artmint/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im    *impl
	redis *mockRedis.Service
}

func (ts *testsuite) SetupTest() {
	ts.redis = &mockRedis.Service{}
	ts.im = NewRedis(ts.redis).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.redis.On("Set", mockCtx, k, v, time.Second).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
}

func (ts *testsuite) TestGet() {
	ts.redis.On("Get", mockCtx, "key").Return([]byte("value"), nil).Once()
	ts.redis.On("TTL", mockCtx, "key").Return(3*time.Second, nil).Once()
	val, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), val)
	ts.Equal(3*time.Second, ttl)
}

func (ts *testsuite) TestGetForever() {
	ts.redis.On("Get", mockCtx, "key").Return([]byte("value"), nil).Once()
	ts.redis.On("TTL", mockCtx, "key").Return(redis.Forever, nil).Once()
	_, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestGetNotFound() {
	ts.redis.On("Get", mockCtx, "key").Return(nil, redis.ErrNotFound).Once()
	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetError() {
	boom := errors.New("boom")
	ts.redis.On("Get", mockCtx, "key").Return(nil, boom).Once()
	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(boom, err)
}

func (ts *testsuite) TestDel() {
	ts.redis.On("Del", mockCtx, "key").Return(1, nil).Once()
	ts.NoError(ts.im.Del(mockCtx, "key"))
}
