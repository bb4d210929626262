package visited

import (
	"os"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/tail-island/qashogi-go/internal/config"
	"github.com/tail-island/qashogi-go/internal/qlog"
	"github.com/tail-island/qashogi-go/internal/types"
	"github.com/tail-island/qashogi-go/internal/util"
)

var logTest *logging.Logger

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = qlog.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestInsertReportsNovelty(t *testing.T) {
	s := New(16)
	k := types.Key{Hi: 1, Lo: 2}
	assert.True(t, s.Insert(k))
	assert.False(t, s.Insert(k))
	assert.Equal(t, 1, s.Len())
}

func TestContainsAfterInsert(t *testing.T) {
	s := New(16)
	k := types.Key{Hi: 7, Lo: 9}
	assert.False(t, s.Contains(k))
	s.Insert(k)
	assert.True(t, s.Contains(k))
}

func TestGrowsPastInitialCapacityWithoutLosingEntries(t *testing.T) {
	s := New(4)
	n := 200
	for i := 0; i < n; i++ {
		s.Insert(types.Key{Hi: uint64(i), Lo: uint64(i * 31)})
	}
	assert.Equal(t, n, s.Len())
	for i := 0; i < n; i++ {
		assert.True(t, s.Contains(types.Key{Hi: uint64(i), Lo: uint64(i * 31)}))
	}
	logTest.Debugf("Memory statistics: %s", util.MemStat())
}

func TestZeroKeyIsAnOrdinaryKey(t *testing.T) {
	s := New(16)
	assert.True(t, s.Insert(types.Key{}))
	assert.True(t, s.Contains(types.Key{}))
}
