package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/model"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
	// createErr 非 nil 时 Create 直接返回该错误
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByRollNumber(_ context.Context, rollNumber string) (*model.User, error) {
	for _, u := range m.users {
		if u.Role == model.RoleStudent && u.RollNumber != nil && *u.RollNumber == rollNumber {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListStudents(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role == model.RoleStudent {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return *result[i].RollNumber < *result[j].RollNumber })
	return result, nil
}

func (m *mockUserRepo) AssignCourse(_ context.Context, facultyID, courseID uint) error {
	u, ok := m.users[facultyID]
	if !ok || u.Role != model.RoleFaculty {
		return gorm.ErrRecordNotFound
	}
	u.AssignedCourseID = &courseID
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[uint]*model.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[uint]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.ID == 0 {
		course.ID = uint(len(m.courses) + 1)
	}
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetByCode(_ context.Context, code string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.CourseCode == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock MarkRepository ──

type markKey struct {
	studentID uint
	courseID  uint
}

type mockMarkRepo struct {
	marks  map[markKey]*model.Mark
	users  *mockUserRepo
	course *mockCourseRepo
	nextID uint
	// upsertErr 非 nil 时 Upsert 直接返回该错误
	upsertErr error
	// listByCourseCalls ListByCourse 调用次数
	listByCourseCalls int
}

func newMockMarkRepo(users *mockUserRepo, courses *mockCourseRepo) *mockMarkRepo {
	return &mockMarkRepo{marks: make(map[markKey]*model.Mark), users: users, course: courses, nextID: 1}
}

func (m *mockMarkRepo) Upsert(_ context.Context, mark *model.Mark) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	key := markKey{mark.StudentID, mark.CourseID}
	now := time.Now()
	if existing, ok := m.marks[key]; ok {
		existing.MarksValue = mark.MarksValue
		existing.UploadedBy = mark.UploadedBy
		existing.UpdatedAt = now
		return nil
	}
	cp := *mark
	cp.ID = m.nextID
	m.nextID++
	cp.CreatedAt, cp.UpdatedAt = now, now
	m.marks[key] = &cp
	return nil
}

func (m *mockMarkRepo) ListByCourse(_ context.Context, courseID uint) ([]model.Mark, error) {
	m.listByCourseCalls++
	var result []model.Mark
	for k, v := range m.marks {
		if k.courseID != courseID {
			continue
		}
		row := *v
		row.Student = m.users.users[k.studentID]
		row.Course = m.course.courses[k.courseID]
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool {
		return *result[i].Student.RollNumber < *result[j].Student.RollNumber
	})
	return result, nil
}

func (m *mockMarkRepo) ListByStudent(_ context.Context, studentID uint) ([]model.Mark, error) {
	var result []model.Mark
	for k, v := range m.marks {
		if k.studentID != studentID {
			continue
		}
		row := *v
		row.Course = m.course.courses[k.courseID]
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	return result, nil
}

// ── Fixture ──

type testRepos struct {
	repo    *repository.Repository
	users   *mockUserRepo
	courses *mockCourseRepo
	marks   *mockMarkRepo
}

func newTestRepos() *testRepos {
	users := newMockUserRepo()
	courses := newMockCourseRepo()
	marks := newMockMarkRepo(users, courses)
	return &testRepos{
		repo: &repository.Repository{
			User:   users,
			Course: courses,
			Mark:   marks,
		},
		users:   users,
		courses: courses,
		marks:   marks,
	}
}

func strPtr(s string) *string     { return &s }
func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
