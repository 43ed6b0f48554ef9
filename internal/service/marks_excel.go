package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/dto"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/grading"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/jwt"
)

// MarksImporter 从 Excel 批量导入某课程成绩
type MarksImporter interface {
	ParseMarksImport(reader io.Reader) ([]ImportMarkRow, error)
	ImportMarks(ctx context.Context, caller *jwt.Claims, courseID uint, rows []ImportMarkRow) (*dto.BulkUpsertMarksResponse, error)
}

// MarksExporter 导出某课程成绩为 Excel
type MarksExporter interface {
	// ExportCourseMarks 返回 Excel 内容与建议文件名
	ExportCourseMarks(ctx context.Context, caller *jwt.Claims, courseID uint) (*bytes.Buffer, string, error)
}

// ImportMarkRow Excel 导入解析后的单行数据
type ImportMarkRow struct {
	Row        int
	RollNumber string
	Marks      string
}

// ═══════════════════════════════════════════════════════════
// ParseMarksImport 解析成绩导入文件
// ═══════════════════════════════════════════════════════════
//
// 表头支持灵活列序：学号/roll number、分数/marks，首个工作表生效。

func (s *facultyService) ParseMarksImport(reader io.Reader) ([]ImportMarkRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		s.logger.Warn("解析成绩导入文件失败", zap.Error(err))
		return nil, ErrImportBadFile
	}
	defer f.Close()

	excelRows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		s.logger.Warn("读取工作表失败", zap.Error(err))
		return nil, ErrImportBadFile
	}
	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}

	colIndex := parseMarksHeader(excelRows[0])
	if colIndex["roll_number"] < 0 || colIndex["marks"] < 0 {
		return nil, ErrImportBadHeader
	}

	var rows []ImportMarkRow
	for i := 1; i < len(excelRows); i++ {
		row := excelRows[i]
		item := ImportMarkRow{Row: i + 1}
		if idx := colIndex["roll_number"]; idx < len(row) {
			item.RollNumber = strings.TrimSpace(row[idx])
		}
		if idx := colIndex["marks"]; idx < len(row) {
			item.Marks = strings.TrimSpace(row[idx])
		}
		if item.RollNumber == "" && item.Marks == "" {
			continue
		}
		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, ErrImportTooManyRows
	}
	return rows, nil
}

// parseMarksHeader 解析表头，返回列名 -> 列索引
func parseMarksHeader(header []string) map[string]int {
	idx := map[string]int{
		"roll_number": -1,
		"marks":       -1,
	}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "学号", "roll number", "roll_number", "rollnumber":
			idx["roll_number"] = i
		case "分数", "成绩", "marks":
			idx["marks"] = i
		}
	}
	return idx
}

// ═══════════════════════════════════════════════════════════
// ImportMarks 按行写入，单行失败不影响其余行
// ═══════════════════════════════════════════════════════════

func (s *facultyService) ImportMarks(ctx context.Context, caller *jwt.Claims, courseID uint, rows []ImportMarkRow) (*dto.BulkUpsertMarksResponse, error) {
	if err := s.checkScope(caller, courseID); err != nil {
		return nil, err
	}
	course, err := s.getCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	resp := &dto.BulkUpsertMarksResponse{Total: len(rows)}
	fail := func(row ImportMarkRow, studentID uint, reason string) {
		resp.Failed++
		resp.Errors = append(resp.Errors, dto.MarkEntryError{Index: row.Row, StudentID: studentID, Reason: reason})
	}

	for _, row := range rows {
		if row.RollNumber == "" {
			fail(row, 0, "学号不能为空")
			continue
		}
		value, err := strconv.ParseFloat(row.Marks, 64)
		if err != nil {
			fail(row, 0, fmt.Sprintf("分数格式错误: %q", row.Marks))
			continue
		}

		student, err := s.repo.User.GetByRollNumber(ctx, row.RollNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fail(row, 0, fmt.Sprintf("学号 %s 不存在", row.RollNumber))
				continue
			}
			s.logger.Error("按学号查询学生失败", zap.Error(err), zap.String("roll_number", row.RollNumber))
			fail(row, 0, "保存失败")
			continue
		}

		if _, err := s.saveMark(ctx, caller.UserID, course, student.ID, &value); err != nil {
			fail(row, student.ID, s.entryReason(err))
			continue
		}
		resp.Saved++
	}

	s.logger.Info("导入成绩",
		zap.Uint("faculty_id", caller.UserID),
		zap.Uint("course_id", courseID),
		zap.Int("total", resp.Total),
		zap.Int("saved", resp.Saved),
		zap.Int("failed", resp.Failed),
	)
	return resp, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCourseMarks 导出课程成绩
// ═══════════════════════════════════════════════════════════
//
// 单 Sheet，列：学号 | 姓名 | 分数 | 满分 | 百分比 | 等级，按学号排序；
// 末尾附平均分与等级分布。

var exportHeaders = []string{"学号", "姓名", "分数", "满分", "百分比", "等级"}

func (s *facultyService) ExportCourseMarks(ctx context.Context, caller *jwt.Claims, courseID uint) (*bytes.Buffer, string, error) {
	if err := s.checkScope(caller, courseID); err != nil {
		return nil, "", err
	}
	course, err := s.getCourse(ctx, courseID)
	if err != nil {
		return nil, "", err
	}

	// 明细与汇总基于同一次查询
	records, err := s.listMarks(ctx, courseID)
	if err != nil {
		return nil, "", err
	}
	marks := courseMarkRows(course, records)
	stats := courseStatistics(course, records)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := sheetNameFor(course.CourseCode)
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err), zap.String("sheet", sheetName))
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	if sheetName != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for r, m := range marks {
		row := r + 2
		values := []interface{}{
			m.RollNumber,
			m.StudentName,
			float64(m.Marks),
			m.MaxMarks,
			float64(m.Percentage),
			string(m.Grade),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	// 汇总区
	summaryRow := len(marks) + 3
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "平均分")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), float64(stats.Average))
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow+1), "人数")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow+1), stats.TotalStudents)
	for i, g := range grading.Grades {
		r := summaryRow + 2 + i
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), "等级 "+string(g))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), stats.GradeDistribution.Count(g))
	}

	_ = f.SetColWidth(sheetName, "A", "A", 14)
	_ = f.SetColWidth(sheetName, "B", "B", 24)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_marks.xlsx", sheetName)
	return buf, filename, nil
}

// maxSheetNameLen Excel 工作表名长度上限
const maxSheetNameLen = 31

// sheetNameFor 将课程代码转为合法工作表名：替换 []:*?/\ 并截断到 31 字符
func sheetNameFor(code string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, strings.TrimSpace(code))
	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	name = strings.Trim(name, "'")
	if name == "" {
		return "Marks"
	}
	return name
}
