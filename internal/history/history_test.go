package history

import (
	"context"
	"errors"
	"testing"

	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = model.FormInput{Gender: model.GenderWoman, Age: 30, PriceMin: 20, PriceMax: 80, Hobbies: "reading"}

func TestNewRepository(t *testing.T) {
	t.Run("nil pool returns error", func(t *testing.T) {
		repo, err := NewRepository(nil)
		assert.Nil(t, repo)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database pool is required")
	})
}

func TestSaveQuery(t *testing.T) {
	query, args, err := saveQuery(sample, "a lamp").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO suggestions (gender,age,price_min,price_max,hobbies,result) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id",
		query)
	assert.Equal(t, []any{"woman", 30, 20, 80, "reading", "a lamp"}, args)
}

func TestRecentQuery(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  string
	}{
		{"positive limit", 50, "LIMIT 50"},
		{"zero clamps to one", 0, "LIMIT 1"},
		{"negative clamps to one", -4, "LIMIT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := recentQuery(tt.limit).ToSql()
			require.NoError(t, err)
			assert.Contains(t, query, "FROM suggestions ORDER BY created_at DESC, id DESC")
			assert.Contains(t, query, tt.want)
			assert.Empty(t, args)
		})
	}
}

type fakeSaver struct {
	saved  []model.FormInput
	result string
	err    error
	ctxErr error
}

func (f *fakeSaver) Save(ctx context.Context, in model.FormInput, result string) (int64, error) {
	f.saved = append(f.saved, in)
	f.result = result
	f.ctxErr = ctx.Err()
	return int64(len(f.saved)), f.err
}

func TestNewRecorder(t *testing.T) {
	gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) { return "", nil })

	_, err := NewRecorder(nil, &fakeSaver{})
	assert.Error(t, err)

	_, err = NewRecorder(gen, nil)
	assert.Error(t, err)
}

func TestRecorder_Generate(t *testing.T) {
	t.Run("success is saved", func(t *testing.T) {
		saver := &fakeSaver{}
		gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) {
			return "a lamp", nil
		})
		rec, err := NewRecorder(gen, saver)
		require.NoError(t, err)

		result, err := rec.Generate(context.Background(), sample)
		require.NoError(t, err)
		assert.Equal(t, "a lamp", result)
		assert.Equal(t, []model.FormInput{sample}, saver.saved)
		assert.Equal(t, "a lamp", saver.result)
	})

	t.Run("failure is not saved", func(t *testing.T) {
		saver := &fakeSaver{}
		upstream := errors.New("bad gateway")
		gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) {
			return "", upstream
		})
		rec, err := NewRecorder(gen, saver)
		require.NoError(t, err)

		_, err = rec.Generate(context.Background(), sample)
		assert.ErrorIs(t, err, upstream)
		assert.Empty(t, saver.saved)
	})

	t.Run("storage error does not affect result", func(t *testing.T) {
		saver := &fakeSaver{err: errors.New("db down")}
		gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) {
			return "a lamp", nil
		})
		rec, err := NewRecorder(gen, saver)
		require.NoError(t, err)

		result, err := rec.Generate(context.Background(), sample)
		assert.NoError(t, err)
		assert.Equal(t, "a lamp", result)
	})

	t.Run("save outlives cancelled request context", func(t *testing.T) {
		saver := &fakeSaver{}
		ctx, cancel := context.WithCancel(context.Background())
		gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) {
			cancel()
			return "a lamp", nil
		})
		rec, err := NewRecorder(gen, saver)
		require.NoError(t, err)

		_, err = rec.Generate(ctx, sample)
		require.NoError(t, err)
		assert.NoError(t, saver.ctxErr)
	})

	t.Run("plugs into the controller", func(t *testing.T) {
		saver := &fakeSaver{}
		gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) {
			return "a lamp", nil
		})
		rec, err := NewRecorder(gen, saver)
		require.NoError(t, err)

		ctrl := gift.NewController(rec, sample)
		done, err := ctrl.Submit(context.Background())
		require.NoError(t, err)
		state := <-done
		assert.Equal(t, gift.StatusResult, state.Status)
		assert.Len(t, saver.saved, 1)
	})
}
