/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/artmint/base/env"
	"github.com/x-xyz/artmint/base/log"
)

// DdPort is the dogstatsd port of the datadog agent
const DdPort = 8125

var (
	initOnce = sync.Once{}
	client   statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// initClient talks to the datadog agent at datadog_host, or logs metrics
// when no agent is configured.
func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		client = &LogClient{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, DdPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	c, err := statsd.New(addr)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, fallback to log")
		client = &LogClient{}
		return
	}
	client = c
}

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	initOnce.Do(initClient)
	return &Metrics{
		pkgName: pkgName,
		cli:     client,
		tags: []string{
			"host:", // drop the host tag
			"pod:" + env.PodName(),
			"env:" + env.EnvName(),
			"app:" + env.AppName(),
		},
	}
}

// Metrics prefixes keys with the package name and adds pod tags.
type Metrics struct {
	pkgName string
	cli     statsCli
	tags    []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

func (mt *Metrics) report(fn string, key string, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": fn}).Error("Bump fail")
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.report("BumpAvg", key, mt.cli.Gauge(mt.key(key), val, mt.withTags(tags), 1))
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.report("BumpSum", key, mt.cli.Count(mt.key(key), int64(val), mt.withTags(tags), 1))
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.report("BumpHistogram", key, mt.cli.Histogram(mt.key(key), val, mt.withTags(tags), 1))
}

// BumpTime starts a timer which is reported when End is called:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{mt: mt, key: key, tags: mt.withTags(tags), start: time.Now()}
}

// withTags turns key/value pairs into datadog tags.
func (mt *Metrics) withTags(tags []string) []string {
	res := make([]string, len(mt.tags), len(mt.tags)+len(tags)/2)
	copy(res, mt.tags)
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Warn("tag length needs to be multiple of 2")
		tags = tags[:len(tags)-1]
	}
	for i := 0; i < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}

type timeTracker struct {
	mt    *Metrics
	key   string
	tags  []string
	start time.Time
}

func (t *timeTracker) End() {
	dur := float64(time.Since(t.start)) / float64(time.Millisecond)
	t.mt.report("BumpTime", t.key, t.mt.cli.TimeInMilliseconds(t.mt.key(t.key), dur, t.tags, 1))
}
