package show

import "time"

type CreateStudentReq struct {
	Name     string `json:"name"`
	Dob      string `json:"dob"` // 2006-01-02 或 RFC3339
	Level    string `json:"level"`
	BatchId  string `json:"batchId"`
	ClassDay any    `json:"classDay"` // 0=周日 ... 6=周六, 可为空
	OwnerId  string `json:"ownerId"`
}

type UpdateStudentReq struct {
	Id string `path:"id" json:"id"`
	CreateStudentReq
}

type StudentInfo struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Dob       time.Time `json:"dob"`
	Level     string    `json:"level"`
	BatchId   string    `json:"batchId,omitempty"`
	BatchName string    `json:"batchName,omitempty"`
	ClassDay  *int64    `json:"classDay,omitempty"`
	OwnerId   string    `json:"ownerId,omitempty"`
}

type ListStudentsReq struct{}

type ListStudentsResp struct {
	Students []*StudentInfo `json:"students"`
	Total    int64          `json:"total"`
}

type IdReq struct {
	Id string `path:"id" json:"id"`
}
