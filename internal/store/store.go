package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"
)

// State 整个应用的持久化状态，磁盘上就是一份 JSON 文档，
// 顶层三个数组：courses / progress / certificates
type State struct {
	Courses      []model.Course         `json:"courses"`
	Progress     []model.ProgressRecord `json:"progress"`
	Certificates []model.Certificate    `json:"certificates"`
}

// Course 按 ID 查找课程，不存在返回 nil
func (st *State) Course(id string) *model.Course {
	for i := range st.Courses {
		if st.Courses[i].ID == id {
			return &st.Courses[i]
		}
	}
	return nil
}

// ProgressFor 查找 (userID, courseID) 的进度记录，不存在返回 nil
func (st *State) ProgressFor(userID, courseID string) *model.ProgressRecord {
	for i := range st.Progress {
		if st.Progress[i].UserID == userID && st.Progress[i].CourseID == courseID {
			return &st.Progress[i]
		}
	}
	return nil
}

// Store 把整份状态读进内存，每次变更后全量落盘。
// 互斥锁粗粒度地罩住 读-改-写-落盘 全过程，变更只能经由 Update 进行，
// 由它统一执行"改完必存"的规则。
type Store struct {
	mu    sync.Mutex
	path  string
	state State
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load 读取磁盘文档；文件不存在时以三个空集合起步
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.state = State{
				Courses:      []model.Course{},
				Progress:     []model.ProgressRecord{},
				Certificates: []model.Certificate{},
			}
			return nil
		}
		return fmt.Errorf("read store file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("parse store file %s: %w", s.path, err)
	}
	if st.Courses == nil {
		st.Courses = []model.Course{}
	}
	if st.Progress == nil {
		st.Progress = []model.ProgressRecord{}
	}
	if st.Certificates == nil {
		st.Certificates = []model.Certificate{}
	}
	s.state = st
	return nil
}

// View 在锁内执行只读访问，fn 不得保留对内部切片的引用
func (s *Store) View(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Update 在锁内执行变更，fn 成功返回后立即全量落盘。
// fn 返回错误则不落盘（内存中的改动由调用方保证不产生，
// 即先校验再变更）。
func (s *Store) Update(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.state); err != nil {
		return err
	}
	return s.save()
}

// save 先写同目录临时文件再 rename，避免崩溃留下半截文档
func (s *Store) save() error {
	data, err := json.MarshalIndent(&s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".learnhub-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	monitoring.StoreWrites.Inc()
	return nil
}

// Ping 健康检查用：确认存储目录仍然可访问
func (s *Store) Ping() error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}
