// Package grading 成绩等级换算与课程统计
//
// 纯函数，无副作用；统计结果是快照，成绩变更后需重新计算。
package grading

import (
	"bytes"
	"math"
	"strconv"
)

// Grade 字母等级
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades 按从高到低排列的全部等级
var Grades = [...]Grade{GradeS, GradeA, GradeB, GradeC, GradeD, GradeF}

// 百分比阈值（含下界），降序排列
var thresholds = [...]struct {
	min   float64
	grade Grade
}{
	{90, GradeS},
	{80, GradeA},
	{70, GradeB},
	{60, GradeC},
	{50, GradeD},
}

// Calculate 根据得分与满分计算等级
// maxMarks <= 0 时返回 F
func Calculate(marks, maxMarks float64) Grade {
	if maxMarks <= 0 {
		return GradeF
	}
	pct := marks / maxMarks * 100
	for _, t := range thresholds {
		if pct >= t.min {
			return t.grade
		}
	}
	return GradeF
}

// Percentage 得分百分比，保留两位小数
func Percentage(marks, maxMarks float64) Score {
	if maxMarks <= 0 {
		return 0
	}
	return Round2(marks / maxMarks * 100)
}

// Round2 四舍五入到两位小数
func Round2(v float64) Score {
	return Score(math.Round(v*100) / 100)
}

// Score 两位小数的分值，JSON 输出固定两位（如 85.00）
type Score float64

// MarshalJSON 输出两位小数的 JSON 数字
func (s Score) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(s), 'f', 2, 64), nil
}

// UnmarshalJSON 接受任意 JSON 数字
func (s *Score) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*s = Score(v)
	return nil
}

// ── 统计 ──

// Record 参与统计的一条成绩
type Record struct {
	Marks    float64
	MaxMarks float64
}

// Distribution 各等级人数，下标与 Grades 对应
type Distribution [len(Grades)]int

// Count 返回指定等级人数
func (d Distribution) Count(g Grade) int {
	for i, gg := range Grades {
		if gg == g {
			return d[i]
		}
	}
	return 0
}

// MarshalJSON 按 S,A,B,C,D,F 顺序输出对象，六个键总是存在
func (d Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range Grades {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(string(g))
		buf.WriteString(`":`)
		buf.WriteString(strconv.Itoa(d[i]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Statistics 课程成绩统计
type Statistics struct {
	Average           Score        `json:"average"`
	TotalStudents     int          `json:"totalStudents"`
	GradeDistribution Distribution `json:"gradeDistribution"`
}

// Aggregate 计算平均分与等级分布；空输入时平均分为 0
func Aggregate(records []Record) Statistics {
	var stats Statistics
	stats.TotalStudents = len(records)
	if len(records) == 0 {
		return stats
	}

	var sum float64
	for _, r := range records {
		sum += r.Marks
		g := Calculate(r.Marks, r.MaxMarks)
		for i, gg := range Grades {
			if gg == g {
				stats.GradeDistribution[i]++
				break
			}
		}
	}
	stats.Average = Round2(sum / float64(len(records)))
	return stats
}
