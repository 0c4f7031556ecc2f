package model

// ProgressRecord 用户在某门课程上的完成台账，(UserID, CourseID) 唯一。
// 首次上报课时完成时懒创建，之后只追加，不删除。
type ProgressRecord struct {
	UserID           string   `json:"userId"`
	CourseID         string   `json:"courseId"`
	CompletedLessons []string `json:"completedLessons"`
	Progress         int      `json:"progress"`
	Completed        bool     `json:"completed"`
	CertificateID    string   `json:"certificateId,omitempty"`
}

// HasCompleted 判断课时是否已在完成集合中
func (r *ProgressRecord) HasCompleted(lessonID string) bool {
	for _, id := range r.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// ProgressSnapshot 单次上报后的进度快照
type ProgressSnapshot struct {
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}
