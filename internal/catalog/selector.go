package catalog

import "math/rand/v2"

// NextQuestion draws one question uniformly at random from pool, restricted
// to categoryID (AllCategories lifts the restriction) and skipping ids in
// previous. ok is false once every eligible question has been shown; that is
// the normal end of a quiz session, not an error.
//
// The draw uses the process-seeded shared generator and keeps no state
// between calls. The caller owns the session history: append the returned
// question's id to previous before the next call.
func NextQuestion(pool []Question, categoryID int64, previous []int64) (Question, bool) {
	eligible := pool
	if categoryID != AllCategories {
		eligible = ByCategory(eligible, categoryID)
	}
	eligible = Excluding(eligible, previous)
	if len(eligible) == 0 {
		return Question{}, false
	}
	return eligible[rand.IntN(len(eligible))], true
}
