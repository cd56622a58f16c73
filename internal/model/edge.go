package model

import "time"

// The edge types below are directed relationship records between two ids.
// None of them is ever updated in place, and no store rejects a duplicate
// (from, to) pair: repeating an action records it again.

// Follower records that Follower follows Followee.
type Follower struct {
	ID       string `json:"_id"      bson:"_id"`
	Follower string `json:"follower" bson:"follower"`
	Followee string `json:"followee" bson:"followee"`
}

// Like records that LikedBy liked Tuit.
type Like struct {
	ID      string `json:"_id"     bson:"_id"`
	Tuit    string `json:"tuit"    bson:"tuit"`
	LikedBy string `json:"likedBy" bson:"likedBy"`
}

// Bookmark records that BookmarkedBy bookmarked Tuit at BookmarkedAt.
type Bookmark struct {
	ID           string    `json:"_id"          bson:"_id"`
	Tuit         string    `json:"tuit"         bson:"tuit"`
	BookmarkedBy string    `json:"bookmarkedBy" bson:"bookmarkedBy"`
	BookmarkedAt time.Time `json:"bookmarkedAt" bson:"bookmarkedAt"`
}

// Message is a direct message from Sender to Receiver.
type Message struct {
	ID          string    `json:"_id"         bson:"_id"`
	Sender      string    `json:"sender"      bson:"sender"      validate:"required"`
	Receiver    string    `json:"receiver"    bson:"receiver"    validate:"required"`
	MessageBody string    `json:"messageBody" bson:"messageBody" validate:"required,max=2000"`
	SentOn      time.Time `json:"sentOn"      bson:"sentOn"`
}

// FollowCount is one row of the most-followed aggregation: a followee and
// the number of follow edges pointing at it.
type FollowCount struct {
	Followee string `json:"followee" bson:"_id"`
	Count    int64  `json:"count"    bson:"count"`
}
