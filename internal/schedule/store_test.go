package schedule

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUpsertAndRemove(t *testing.T) {
	s := NewStore()
	require.Equal(t, 0, s.Len())

	s.Upsert(placement(1, "first", []int{1}, "General"))
	s.Upsert(placement(2, "second", []int{2}, "General"))
	assert.Equal(t, 2, s.Len())

	// upsert replaces the whole record
	renamed := placement(1, "renamed", []int{1}, "General")
	s.Upsert(renamed)
	assert.Equal(t, 2, s.Len())

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "renamed", all[0].Name)
	assert.Equal(t, []int{1, 2}, []int{all[0].ID, all[1].ID})

	s.Remove(1)
	assert.Equal(t, 1, s.Len())
	s.Remove(99) // unknown id is a no-op
	assert.Equal(t, 1, s.Len())
}

func TestStoreListActiveByChannelAndCategory(t *testing.T) {
	s := NewStore()

	match := placement(1, "match", []int{1, 2}, "Sports")
	s.Upsert(match)

	blankCategory := placement(2, "blank", []int{1}, "")
	s.Upsert(blankCategory)

	otherChannel := placement(3, "elsewhere", []int{9}, "Sports")
	s.Upsert(otherChannel)

	inactive := placement(4, "off", []int{1}, "Sports")
	inactive.Active = false
	s.Upsert(inactive)

	got := s.ListActiveByChannelAndCategory([]int{2, 3}, "Sports")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// blank stored category is reachable via the normalized key
	got = s.ListActiveByChannelAndCategory([]int{1}, "General")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	assert.Empty(t, s.ListActiveByChannelAndCategory([]int{7}, "Sports"))
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore()
	s.Upsert(placement(1, "original", []int{1}, "General"))

	snap := s.All()
	s.Upsert(placement(1, "changed", []int{1}, "General"))

	assert.Equal(t, "original", snap[0].Name)
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Upsert(placement(base*100+j, "p", []int{1}, "General"))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.ListActiveByChannelAndCategory([]int{1}, "General")
				_ = s.All()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8*50, s.Len())
}
