package learning

type SignTokenResp struct {
	Token string `json:"token"`
}

type CreateUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email" vd:"len($)>0"`
	PhotoURL string `json:"photoURL"`
}

type UserInfo struct {
	ID       string `json:"_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
	Role     string `json:"role,omitempty"`
}

type AdminResp struct {
	Admin bool `json:"admin"`
}

type InstructorResp struct {
	Instructor bool `json:"instructor"`
}

// CreateUserResp 邮箱已存在时只返回 Message
type CreateUserResp struct {
	Acknowledged bool   `json:"acknowledged,omitempty"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
