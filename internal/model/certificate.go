package model

import "time"

// Certificate 结课证书，签发后不可变更、不可撤销。
// CourseTitle 为签发时刻课程标题的冗余快照，课程改名不影响已发证书。
type Certificate struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	IssuedAt    time.Time `json:"issuedAt"`
	Score       *int      `json:"score,omitempty"`
}
