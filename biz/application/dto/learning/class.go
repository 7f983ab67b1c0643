package learning

type CreateClassReq struct {
	ClassName       string `json:"className" vd:"len($)>0"`
	ClassPhotoURL   string `json:"classPhotoURL"`
	InstructorName  string `json:"instructorName"`
	InstructorEmail string `json:"instructorEmail"`
	// 前端可能以字符串提交数字
	AvailableSeats any `json:"availableSeats"`
	Price          any `json:"price"`
}

type ListClassesReq struct {
	Email string `query:"email"`
}

type UpdateClassStatusReq struct {
	ClassID  string  `path:"classId"`
	Status   string  `json:"status"`
	Feedback *string `json:"feedback,omitempty"`
}

type IncClassCountersReq struct {
	ClassItemID      string `path:"classItemId"`
	EnrolledStudents *int64 `json:"enrolledStudents,omitempty"`
	AvailableSeats   *int64 `json:"availableSeats,omitempty"`
}

type ClassInfo struct {
	ID               string  `json:"_id"`
	ClassName        string  `json:"className"`
	ClassPhotoURL    string  `json:"classPhotoURL"`
	InstructorName   string  `json:"instructorName"`
	InstructorEmail  string  `json:"instructorEmail"`
	AvailableSeats   int64   `json:"availableSeats"`
	EnrolledStudents int64   `json:"enrolledStudents"`
	Price            float64 `json:"price"`
	Status           string  `json:"status"`
	Feedback         string  `json:"feedback,omitempty"`
}
