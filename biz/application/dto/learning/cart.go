package learning

type AddCartReq struct {
	ClassItemID    string `json:"classItemId" vd:"len($)>0"`
	Email          string `json:"email" vd:"len($)>0"`
	ClassName      string `json:"className"`
	ClassPhotoURL  string `json:"classPhotoURL"`
	InstructorName string `json:"instructorName"`
	Price          any    `json:"price"`
}

type CartItemInfo struct {
	ID             string  `json:"_id"`
	ClassItemID    string  `json:"classItemId"`
	Email          string  `json:"email"`
	ClassName      string  `json:"className,omitempty"`
	ClassPhotoURL  string  `json:"classPhotoURL,omitempty"`
	InstructorName string  `json:"instructorName,omitempty"`
	Price          float64 `json:"price"`
}
