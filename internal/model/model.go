// Package model defines the persisted entities of the API.
//
// Field names mirror the database columns so the JSON wire format and
// the relational schema stay in lockstep.
package model

// Account is a registered user identity.
//
// AccountID is generated by the database on insert; it is ignored on
// input and always populated on output.
type Account struct {
	AccountID int    `json:"account_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Message is a timestamped text post authored by an Account.
//
// PostedBy references account.account_id. TimePostedEpoch is supplied by
// the client and stored verbatim.
type Message struct {
	MessageID       int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}
