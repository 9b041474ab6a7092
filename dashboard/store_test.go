package dashboard

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"wizard-spelldash/models"
)

func TestStorePublishOnce(t *testing.T) {
	store := NewStore()
	assert.True(t, store.Snapshot().Loading())

	select {
	case <-store.Loaded():
		t.Fatal("store reported loaded before publish")
	default:
	}

	store.Publish(models.LoadResult{Spells: []models.SpellDetail{spell("Shield", 1)}})
	store.Publish(models.LoadResult{Err: errors.New("late failure")})

	<-store.Loaded()
	snap := store.Snapshot()
	assert.False(t, snap.Loading())
	assert.Equal(t, []string{"Shield"}, spellNames(snap.Spells()))
}

func TestStoreConcurrentReaders(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-store.Loaded()
			snap := store.Snapshot().WithSearch("fire")
			assert.Equal(t, 1, snap.Stats().Visible)
		}()
	}

	store.Publish(models.LoadResult{Spells: []models.SpellDetail{spell("Fireball", 3), spell("Shield", 1)}})
	wg.Wait()

	assert.Equal(t, "", store.Snapshot().Search(), "per-reader view state is never stored")
}
