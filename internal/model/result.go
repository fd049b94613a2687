package model

// InsertResult mirrors the raw outcome of a single insert.
// InsertedID is nil when nothing was inserted, and Acknowledged is then omitted.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged,omitempty"`
	InsertedID   *string `json:"insertedId"`
	Message      string  `json:"message,omitempty"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Inserted builds an acknowledged InsertResult for id.
func Inserted(id string) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: &id}
}

// Updated builds an UpdateResult from the number of rows touched.
func Updated(n int64) UpdateResult {
	return UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}
}

func Deleted(n int64) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: n}
}
