package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var filterFixture = []Question{
	{ID: 1, Question: "Who wrote Hamlet?", Answer: "Shakespeare", Category: 2, Difficulty: 1},
	{ID: 2, Question: "What is the capital of Peru?", Answer: "Lima", Category: 3, Difficulty: 2},
	{ID: 3, Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Category: 2, Difficulty: 1},
	{ID: 4, Question: "WHO declared smallpox eradicated in what year?", Answer: "1980", Category: 1, Difficulty: 4},
	{ID: 5, Question: "How many moons does Mars have?", Answer: "Two", Category: 1, Difficulty: 2},
}

func TestByCategoryExactMatch(t *testing.T) {
	got := ByCategory(filterFixture, 2)

	assert.Len(t, got, 2)
	for _, q := range got {
		assert.Equal(t, int64(2), q.Category)
	}
	// relative order preserved
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestByCategoryNoMatches(t *testing.T) {
	assert.Empty(t, ByCategory(filterFixture, 99))
}

func TestMatchingTextCaseInsensitive(t *testing.T) {
	for _, term := range []string{"who", "Who", "WHO"} {
		got := MatchingText(filterFixture, term)
		assert.Len(t, got, 3, "term %q", term)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
		assert.Equal(t, int64(4), got[2].ID)
	}
}

func TestMatchingTextEmptyTermMatchesNothing(t *testing.T) {
	assert.Empty(t, MatchingText(filterFixture, ""))
}

func TestExcludingRemovesExactlyListedIDs(t *testing.T) {
	got := Excluding(filterFixture, []int64{2, 4, 99})

	assert.Len(t, got, len(filterFixture)-2)
	for _, q := range got {
		assert.NotContains(t, []int64{2, 4}, q.ID)
	}
}

func TestExcludingEmptySetKeepsEverything(t *testing.T) {
	assert.Equal(t, filterFixture, Excluding(filterFixture, nil))
}
