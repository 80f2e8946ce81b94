package store

import (
	"fmt"
	"time"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// InsertFacultyDetail 追加一条教师基本信息
func (s *Store) InsertFacultyDetail(d *model.FacultyDetail) (int64, error) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	res, err := s.db.Exec(`
		INSERT INTO faculty_details (name, email, phone, department, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, d.Name, d.Email, d.Phone, d.Department, d.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert faculty detail failed: %w", err)
	}
	return res.LastInsertId()
}

// ListFacultyDetails 按提交顺序列出全部教师信息
func (s *Store) ListFacultyDetails() ([]model.FacultyDetail, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, phone, department, created_at
		FROM faculty_details ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query faculty details failed: %w", err)
	}
	defer rows.Close()

	var out []model.FacultyDetail
	for rows.Next() {
		var it model.FacultyDetail
		var createdAt string
		if err := rows.Scan(&it.ID, &it.Name, &it.Email, &it.Phone, &it.Department, &createdAt); err != nil {
			return nil, fmt.Errorf("scan faculty detail failed: %w", err)
		}
		it.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faculty details failed: %w", err)
	}
	return out, nil
}
