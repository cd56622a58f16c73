package model

import "time"

// Tuit is a post authored by a user.
//
// PostedBy is the author's user id. PostedOn is set once on create and is
// never changed by an update; only Text is replaced.
type Tuit struct {
	ID       string    `json:"_id"      bson:"_id"`
	Text     string    `json:"tuit"     bson:"tuit"     validate:"required,max=280"`
	PostedBy string    `json:"postedBy" bson:"postedBy" validate:"required"`
	PostedOn time.Time `json:"postedOn" bson:"postedOn"`
}
