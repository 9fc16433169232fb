package useragent

import (
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomReturnsListMembers(t *testing.T) {
	all := All()
	require.Greater(t, len(all), 1)

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		ua := Random()
		require.True(t, lo.Contains(all, ua), "unexpected user agent %q", ua)
		seen[ua] = struct{}{}
	}

	assert.GreaterOrEqual(t, len(seen), 2)
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0] = "mutated"

	assert.NotEqual(t, "mutated", All()[0])
	assert.Equal(t, len(userAgents), len(All()))
}

func TestListHasNoBlankEntries(t *testing.T) {
	for _, ua := range userAgents {
		assert.NotEmpty(t, ua)
		assert.Contains(t, ua, "Mozilla/5.0")
	}
}

func TestRandomConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NotEmpty(t, Random())
			}
		}()
	}
	wg.Wait()
}
