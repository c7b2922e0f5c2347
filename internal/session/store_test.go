package session

import (
	"context"
	"testing"
	"time"

	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initial = model.FormInput{Gender: model.GenderMan, Age: 25, PriceMin: 30, PriceMax: 100}

func newStore(t *testing.T, gen gift.Generator) *Store {
	t.Helper()
	s, err := NewStore(func(in model.FormInput) *gift.Controller {
		return gift.NewController(gen, in)
	}, initial, time.Minute)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNewStore(t *testing.T) {
	_, err := NewStore(nil, initial, time.Minute)
	assert.Error(t, err)

	_, err = NewStore(func(model.FormInput) *gift.Controller { return nil }, initial, 0)
	assert.Error(t, err)
}

func TestStore_Get(t *testing.T) {
	s := newStore(t, nil)

	t.Run("empty id creates session", func(t *testing.T) {
		id, ctrl := s.Get("")
		require.NotEmpty(t, id)
		require.NotNil(t, ctrl)
		assert.Equal(t, initial, ctrl.State().Form)
	})

	t.Run("known id returns same controller", func(t *testing.T) {
		id, ctrl := s.Get("")
		ctrl.UpdateField(model.FieldHobbies, "chess")

		again, same := s.Get(id)
		assert.Equal(t, id, again)
		assert.Same(t, ctrl, same)
		assert.Equal(t, "chess", same.State().Form.Hobbies)
	})

	t.Run("unknown id creates fresh session", func(t *testing.T) {
		id, _ := s.Get("does-not-exist")
		assert.NotEqual(t, "does-not-exist", id)
	})

	t.Run("sessions are independent", func(t *testing.T) {
		_, a := s.Get("")
		_, b := s.Get("")
		a.UpdateField(model.FieldAge, "70")
		assert.Equal(t, 25, b.State().Form.Age)
	})
}

func TestStore_Lookup(t *testing.T) {
	s := newStore(t, nil)
	id, ctrl := s.Get("")

	got, ok := s.Lookup(id)
	assert.True(t, ok)
	assert.Same(t, ctrl, got)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}

func TestStore_Cleanup(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) {
		<-release
		return "ideas", nil
	})
	s := newStore(t, gen)

	now := time.Now()
	s.now = func() time.Time { return now }

	idleID, _ := s.Get("")
	loadingID, loading := s.Get("")
	_, err := loading.Submit(context.Background())
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	freshID, _ := s.Get("")

	now = now.Add(45 * time.Second)
	removed := s.cleanup()

	assert.Equal(t, 1, removed)
	_, ok := s.Lookup(idleID)
	assert.False(t, ok, "idle session past TTL should expire")
	_, ok = s.Lookup(loadingID)
	assert.True(t, ok, "loading session must not expire")
	_, ok = s.Lookup(freshID)
	assert.True(t, ok, "recent session must be kept")
	assert.Equal(t, 2, s.Len())
}

func TestStore_MultipleClose(t *testing.T) {
	s := newStore(t, nil)
	s.Close()
	s.Close()
}
