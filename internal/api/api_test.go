package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaults = model.FormInput{Gender: model.GenderMan, Age: 25, PriceMin: 30, PriceMax: 100}

type fakeHistory struct {
	entries []model.HistoryEntry
	err     error
	limit   int
}

func (f *fakeHistory) Recent(_ context.Context, limit int) ([]model.HistoryEntry, error) {
	f.limit = limit
	return f.entries, f.err
}

func newMux(t *testing.T, gen gift.Generator, history historyLister) *http.ServeMux {
	t.Helper()
	h, err := New(gen, defaults, history)
	require.NoError(t, err)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func doJSON(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestNew(t *testing.T) {
	h, err := New(nil, defaults, nil)
	assert.Nil(t, h)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "generator")
}

func TestFieldValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FieldValue
		wantErr bool
	}{
		{name: "number", input: `30`, want: FieldValue{Raw: "30", Set: true}},
		{name: "negative number", input: `-5`, want: FieldValue{Raw: "-5", Set: true}},
		{name: "fraction", input: `3.7`, want: FieldValue{Raw: "3.7", Set: true}},
		{name: "string", input: `"12x"`, want: FieldValue{Raw: "12x", Set: true}},
		{name: "empty string", input: `""`, want: FieldValue{Raw: "", Set: true}},
		{name: "null", input: `null`, want: FieldValue{}},
		{name: "bool", input: `true`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FieldValue
			err := json.Unmarshal([]byte(tt.input), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestGenerateIdeas(t *testing.T) {
	t.Run("success echoes coerced input", func(t *testing.T) {
		var sent model.FormInput
		gen := gift.GeneratorFunc(func(_ context.Context, in model.FormInput) (string, error) {
			sent = in
			return "1. Kindle", nil
		})
		mux := newMux(t, gen, nil)

		w := doJSON(mux, http.MethodPost, "/api/v1/gift-ideas",
			`{"gender":"woman","age":30,"priceMin":"20","priceMax":"80 dollars","hobbies":"reading"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp GiftIdeasResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "1. Kindle", resp.Result)
		assert.Equal(t, InputEcho{Gender: "woman", Age: 30, PriceMin: 20, PriceMax: 80, Hobbies: "reading"}, resp.Input)
		assert.Equal(t, model.FormInput{Gender: model.GenderWoman, Age: 30, PriceMin: 20, PriceMax: 80, Hobbies: "reading"}, sent)
	})

	t.Run("omitted fields use defaults", func(t *testing.T) {
		var sent model.FormInput
		gen := gift.GeneratorFunc(func(_ context.Context, in model.FormInput) (string, error) {
			sent = in
			return "ideas", nil
		})
		mux := newMux(t, gen, nil)

		w := doJSON(mux, http.MethodPost, "/api/v1/gift-ideas", `{"hobbies":"chess","age":null}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, model.FormInput{Gender: model.GenderMan, Age: 25, PriceMin: 30, PriceMax: 100, Hobbies: "chess"}, sent)
	})

	t.Run("malformed numbers become zero", func(t *testing.T) {
		var sent model.FormInput
		gen := gift.GeneratorFunc(func(_ context.Context, in model.FormInput) (string, error) {
			sent = in
			return "ideas", nil
		})
		mux := newMux(t, gen, nil)

		w := doJSON(mux, http.MethodPost, "/api/v1/gift-ideas", `{"age":"abc","priceMin":-5,"priceMax":"99999999999999999999"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, sent.Age)
		assert.Equal(t, 0, sent.PriceMin)
		assert.Equal(t, 0, sent.PriceMax)
	})

	t.Run("upstream failure returns 502 with alert text", func(t *testing.T) {
		gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) {
			return "", errors.New("connection refused")
		})
		mux := newMux(t, gen, nil)

		w := doJSON(mux, http.MethodPost, "/api/v1/gift-ideas", `{}`)

		require.Equal(t, http.StatusBadGateway, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, config.FailureMessage, resp.Error)
		assert.Equal(t, http.StatusBadGateway, resp.Code)
	})

	badBodies := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: `gender=woman`},
		{name: "unknown field", body: `{"budget":10}`},
		{name: "wrong type", body: `{"age":true}`},
		{name: "empty body", body: ``},
	}
	for _, tt := range badBodies {
		t.Run("bad request: "+tt.name, func(t *testing.T) {
			calls := 0
			gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) {
				calls++
				return "ideas", nil
			})
			mux := newMux(t, gen, nil)

			w := doJSON(mux, http.MethodPost, "/api/v1/gift-ideas", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, 0, calls)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestListHistory(t *testing.T) {
	created := time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC)
	gen := gift.GeneratorFunc(func(context.Context, model.FormInput) (string, error) { return "", nil })

	t.Run("disabled returns 404", func(t *testing.T) {
		mux := newMux(t, gen, nil)
		w := doJSON(mux, http.MethodGet, "/api/v1/history", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("lists entries", func(t *testing.T) {
		history := &fakeHistory{entries: []model.HistoryEntry{
			{ID: 7, Form: defaults, Result: "a scarf", CreatedAt: created},
		}}
		mux := newMux(t, gen, history)

		w := doJSON(mux, http.MethodGet, "/api/v1/history?limit=5", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, history.limit)

		var resp HistoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 5, resp.Limit)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, int64(7), resp.Data[0].ID)
		assert.Equal(t, "a scarf", resp.Data[0].Result)
		assert.Equal(t, "man", resp.Data[0].Input.Gender)
		assert.True(t, created.Equal(resp.Data[0].CreatedAt))
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		mux := newMux(t, gen, &fakeHistory{})
		w := doJSON(mux, http.MethodGet, "/api/v1/history", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		tests := []struct {
			query string
			want  int
		}{
			{"", config.DefaultHistoryLimit},
			{"?limit=abc", config.DefaultHistoryLimit},
			{"?limit=0", config.DefaultHistoryLimit},
			{"?limit=-3", config.DefaultHistoryLimit},
			{"?limit=1000", maxHistoryLimit},
		}
		for _, tt := range tests {
			history := &fakeHistory{}
			mux := newMux(t, gen, history)
			doJSON(mux, http.MethodGet, "/api/v1/history"+tt.query, "")
			assert.Equal(t, tt.want, history.limit, tt.query)
		}
	})

	t.Run("storage error returns 500", func(t *testing.T) {
		mux := newMux(t, gen, &fakeHistory{err: errors.New("db down")})
		w := doJSON(mux, http.MethodGet, "/api/v1/history", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
