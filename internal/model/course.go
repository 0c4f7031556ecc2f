package model

import "time"

type LessonType string

const (
	LessonDocument  LessonType = "document"
	LessonVideo     LessonType = "video"
	LessonSlideshow LessonType = "slideshow"
)

// Lesson 课程内的最小学习单元，创建后只能随整个课程一起更新
type Lesson struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	ContentRef string     `json:"contentRef"`
	Type       LessonType `json:"type"`
	Duration   string     `json:"duration,omitempty"`
}

type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
}

// Quiz 附属于课程的测验，PassingScore 为及格分数线（0-100）
type Quiz struct {
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passingScore"`
}

// Course 课程实体。Progress/Completed 是目录中的默认占位值，
// 前端会用 /api/progress 的按用户数据覆盖它们
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Duration    string    `json:"duration,omitempty"`
	Lessons     []Lesson  `json:"lessons"`
	Quiz        *Quiz     `json:"quiz,omitempty"`
	Progress    int       `json:"progress"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasLesson 判断课时是否属于该课程
func (c *Course) HasLesson(lessonID string) bool {
	for _, l := range c.Lessons {
		if l.ID == lessonID {
			return true
		}
	}
	return false
}
