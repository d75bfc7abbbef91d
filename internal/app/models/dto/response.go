package dto

// MessageResponse carries a single informational message
type MessageResponse struct {
	Message string `json:"message" example:"User Already Exists"`
}

// InsertResult reports a created record
type InsertResult struct {
	Acknowledged bool  `json:"acknowledged" example:"true"`
	InsertedID   int64 `json:"insertedId" example:"42"`
}

// UpdateResult reports how many records matched and changed. Updating an id that does not
// exist is a success with zero counts.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged" example:"true"`
	MatchedCount  int64 `json:"matchedCount" example:"1"`
	ModifiedCount int64 `json:"modifiedCount" example:"1"`
}

// DeleteResult reports how many records were removed
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged" example:"true"`
	DeletedCount int64 `json:"deletedCount" example:"1"`
}

// NewInsertResult wraps an inserted id
func NewInsertResult(id int64) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: id}
}

// NewUpdateResult wraps affected row counts
func NewUpdateResult(matched, modified int64) UpdateResult {
	return UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}
}

// NewDeleteResult wraps a deleted row count
func NewDeleteResult(deleted int64) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: deleted}
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
