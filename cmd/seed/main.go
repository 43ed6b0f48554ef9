// seed 清空并写入演示数据：三门课程、三位教师（各负责一门）、十名学生
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AbhinandanNM/internal-assessment-portal/config"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/model"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/repository"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/database"
	applogger "github.com/AbhinandanNM/internal-assessment-portal/pkg/logger"
)

const (
	facultyPassword = "faculty123"
	studentPassword = "student123"
)

var courses = []model.Course{
	{CourseCode: "CS101", CourseName: "Data Structures and Algorithms", MaxMarks: model.DefaultMaxMarks},
	{CourseCode: "CS102", CourseName: "Web Development", MaxMarks: model.DefaultMaxMarks},
	{CourseCode: "CS103", CourseName: "Database Management Systems", MaxMarks: model.DefaultMaxMarks},
}

var faculty = []struct {
	email, name, courseCode string
}{
	{"faculty1@college.edu", "Dr. Rajesh Kumar", "CS101"},
	{"faculty2@college.edu", "Prof. Priya Sharma", "CS102"},
	{"faculty3@college.edu", "Dr. Amit Patel", "CS103"},
}

var students = []struct {
	email, name, roll string
}{
	{"john@college.edu", "John Michael", "2024CS001"},
	{"sarah@college.edu", "Sarah Williams", "2024CS002"},
	{"raj@college.edu", "Raj Patel", "2024CS003"},
	{"priya@college.edu", "Priya Singh", "2024CS004"},
	{"david@college.edu", "David Chen", "2024CS005"},
	{"maria@college.edu", "Maria Garcia", "2024CS006"},
	{"amit@college.edu", "Amit Verma", "2024CS007"},
	{"emily@college.edu", "Emily Johnson", "2024CS008"},
	{"rohan@college.edu", "Rohan Desai", "2024CS009"},
	{"lisa@college.edu", "Lisa Anderson", "2024CS010"},
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	if err := seed(context.Background(), db, logger); err != nil {
		logger.Fatal("写入演示数据失败", zap.Error(err))
	}

	logger.Info("演示数据写入完成",
		zap.Int("courses", len(courses)),
		zap.Int("faculty", len(faculty)),
		zap.Int("students", len(students)),
		zap.String("faculty_password", facultyPassword),
		zap.String("student_password", studentPassword),
	)
}

// seed 单事务内清空 marks / users / courses 后重建
func seed(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	facultyHash, err := bcrypt.GenerateFromPassword([]byte(facultyPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	studentHash, err := bcrypt.GenerateFromPassword([]byte(studentPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("TRUNCATE TABLE marks, users, courses RESTART IDENTITY CASCADE").Error; err != nil {
			return fmt.Errorf("清空数据失败: %w", err)
		}
		repo := repository.NewRepository(tx)

		courseIDs := make(map[string]uint, len(courses))
		for i := range courses {
			c := courses[i]
			if err := repo.Course.Create(ctx, &c); err != nil {
				return fmt.Errorf("创建课程 %s 失败: %w", c.CourseCode, err)
			}
			courseIDs[c.CourseCode] = c.ID
		}

		for _, f := range faculty {
			u := &model.User{
				Email:        f.email,
				PasswordHash: string(facultyHash),
				Name:         f.name,
				Role:         model.RoleFaculty,
			}
			if err := repo.User.Create(ctx, u); err != nil {
				return fmt.Errorf("创建教师 %s 失败: %w", f.email, err)
			}
			if err := repo.User.AssignCourse(ctx, u.ID, courseIDs[f.courseCode]); err != nil {
				return fmt.Errorf("分配课程 %s 失败: %w", f.courseCode, err)
			}
			logger.Info("教师", zap.String("email", f.email), zap.String("course", f.courseCode))
		}

		for _, s := range students {
			roll := s.roll
			u := &model.User{
				Email:        s.email,
				PasswordHash: string(studentHash),
				Name:         s.name,
				Role:         model.RoleStudent,
				RollNumber:   &roll,
			}
			if err := repo.User.Create(ctx, u); err != nil {
				return fmt.Errorf("创建学生 %s 失败: %w", s.email, err)
			}
		}
		return nil
	})
}
