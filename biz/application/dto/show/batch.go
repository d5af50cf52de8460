package show

type CreateBatchReq struct {
	Name     string   `json:"name"`
	Schedule string   `json:"schedule"`
	Students []string `json:"students"`
}

type UpdateBatchReq struct {
	Id string `path:"id" json:"id"`
	CreateBatchReq
}

type StudentBrief struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type BatchInfo struct {
	Id           string          `json:"id"`
	Name         string          `json:"name"`
	Schedule     string          `json:"schedule"`
	InstructorId string          `json:"instructorId"`
	Students     []*StudentBrief `json:"students"`
}

type ListBatchesReq struct{}

type ListBatchesResp struct {
	Batches []*BatchInfo `json:"batches"`
	Total   int64        `json:"total"`
}
