package household

import (
	"testing"

	"family-health-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestReducers(t *testing.T) {
	base := []models.Appointment{{ID: "a"}, {ID: "b"}}

	t.Run("Append Allocates", func(t *testing.T) {
		next := appendItem(base[:1], models.Appointment{ID: "c"})

		assert.Equal(t, []models.Appointment{{ID: "a"}, {ID: "c"}}, next)
		assert.Equal(t, "b", base[1].ID, "shared backing array must not be overwritten")
	})

	t.Run("Prepend", func(t *testing.T) {
		next := prependItem(base, models.Appointment{ID: "z"})

		assert.Equal(t, []string{"z", "a", "b"}, []string{next[0].ID, next[1].ID, next[2].ID})
	})

	t.Run("Replace By Id", func(t *testing.T) {
		next, found := replaceByID(base, models.Appointment{ID: "b", Title: "updated"})

		assert.True(t, found)
		assert.Equal(t, "updated", next[1].Title)
		assert.Empty(t, base[1].Title)
	})

	t.Run("Remove By Id", func(t *testing.T) {
		next, found := removeByID(base, "a")

		assert.True(t, found)
		assert.Equal(t, []models.Appointment{{ID: "b"}}, next)
		assert.Len(t, base, 2)

		_, found = removeByID(base, "missing")
		assert.False(t, found)
	})
}
