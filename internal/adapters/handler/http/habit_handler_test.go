package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

func TestHabitHandler_Create(t *testing.T) {
	t.Run("Success: 201 Created with default score", func(t *testing.T) {
		env := setupRouter(t, envOptions{})

		w := env.do(t, http.MethodPost, "/api/v1/habits", `{"name":"Read"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		h := decode[domain.Habit](t, w)
		assert.NotEmpty(t, h.ID)
		assert.Equal(t, "Read", h.Name)
		assert.Equal(t, domain.DefaultHabitScore, h.Score)
	})

	t.Run("Success: Score is clamped", func(t *testing.T) {
		env := setupRouter(t, envOptions{})

		w := env.do(t, http.MethodPost, "/api/v1/habits", `{"name":"Run","score":99}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, domain.MaxHabitScore, decode[domain.Habit](t, w).Score)
	})

	t.Run("Success: Explicit zero score is clamped to the minimum", func(t *testing.T) {
		env := setupRouter(t, envOptions{})

		w := env.do(t, http.MethodPost, "/api/v1/habits", `{"name":"Floss","score":0}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, domain.MinHabitScore, decode[domain.Habit](t, w).Score)
	})

	t.Run("Fail: 400 Missing or blank name", func(t *testing.T) {
		env := setupRouter(t, envOptions{})

		for _, body := range []string{`{}`, `{"name":"   "}`, `not json`} {
			w := env.do(t, http.MethodPost, "/api/v1/habits", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})
}

func TestHabitHandler_ListUpdateDelete(t *testing.T) {
	env := setupRouter(t, envOptions{})

	created := decode[domain.Habit](t, env.do(t, http.MethodPost, "/api/v1/habits", `{"name":"Stretch","score":5}`))

	t.Run("List", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/habits", "")
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[[]domain.Habit](t, w)
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
	})

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/v1/habits/"+created.ID, `{"score":20}`)
		require.Equal(t, http.StatusOK, w.Code)

		h := decode[domain.Habit](t, w)
		assert.Equal(t, "Stretch", h.Name)
		assert.Equal(t, 20, h.Score)
	})

	t.Run("Fail: 404 Unknown habit", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/v1/habits/missing", "").Code)
		assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPut, "/api/v1/habits/missing", `{"name":"x"}`).Code)
		assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/api/v1/habits/missing", "").Code)
	})

	t.Run("Delete", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/api/v1/habits/"+created.ID, "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		_, err := env.habits.GetByID(context.Background(), created.ID)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}

func TestHabitHandler_ToggleCheck(t *testing.T) {
	env := setupRouter(t, envOptions{})
	h := decode[domain.Habit](t, env.do(t, http.MethodPost, "/api/v1/habits", `{"name":"Meditate","score":24}`))

	t.Run("Success: Check on a past day rescores it", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/weeks/2026-W42/habits/"+h.ID+"/checks/Tue/toggle", "")

		require.Equal(t, http.StatusOK, w.Code)
		res := decode[services.CheckResult](t, w)
		assert.True(t, res.Checked)
		assert.True(t, res.Score.Applied)
		// 24 of 48 points.
		assert.Equal(t, 5, res.Score.Score)
	})

	t.Run("Success: Second toggle unchecks", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/weeks/2026-W42/habits/"+h.ID+"/checks/Tue/toggle", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decode[services.CheckResult](t, w).Checked)
	})

	t.Run("Fail: 404 Unknown habit", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/weeks/2026-W42/habits/nope/checks/Tue/toggle", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Fail: 400 Bad day", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/weeks/2026-W42/habits/"+h.ID+"/checks/Someday/toggle", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 Blank habit id", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/weeks/2026-W42/habits/%20/checks/Tue/toggle", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrHabitIDRequired.Error())
	})

	t.Run("Fail: 400 Week with trailing text", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/weeks/2026-W42junk/habits/"+h.ID+"/checks/Tue/toggle", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
