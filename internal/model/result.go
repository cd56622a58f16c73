package model

// DeleteResult reports how many records a delete removed. Zero is a normal
// outcome: deleting something that is already gone is not an error.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateResult reports how many records an update matched and changed.
// MatchedCount is zero when the id does not exist.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
