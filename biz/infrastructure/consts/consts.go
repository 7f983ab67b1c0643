package consts

// 数据库相关
const (
	ID               = "_id"
	Email            = "email"
	Role             = "role"
	Status           = "status"
	ClassItemID      = "classItemId"
	InstructorEmail  = "instructorEmail"
	AvailableSeats   = "availableSeats"
	EnrolledStudents = "enrolledStudents"
	Date             = "date"
	In               = "$in"
	Inc              = "$inc"
	Set              = "$set"
	Gte              = "$gte"
	SetOnInsert      = "$setOnInsert"
)

// 角色
const (
	RoleNone       = ""
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// 课程审核状态
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// 支付状态
const (
	PaymentSucceeded = "succeeded"
)

// 默认值
const (
	PaymentMethodCard = "card"
	CentsPerUnit      = 100
)
