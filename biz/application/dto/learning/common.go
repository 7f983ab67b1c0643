package learning

type IDReq struct {
	ID string `path:"id"`
}

type EmailReq struct {
	Email string `path:"email" query:"email"`
}

type MessageResp struct {
	Message string `json:"message"`
}

type InsertResp struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResp struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
}

type DeleteResp struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
