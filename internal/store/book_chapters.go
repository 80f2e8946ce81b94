package store

import (
	"fmt"
	"time"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// InsertBookChapter 追加一条专著章节记录
func (s *Store) InsertBookChapter(p *model.BookChapter) (int64, error) {
	if p.SubmittedAt.IsZero() {
		p.SubmittedAt = time.Now()
	}
	res, err := s.db.Exec(`
		INSERT INTO book_chapters (
			faculty_members, author_position, book_title, chapter_title,
			publisher_details, publication_type, isbn, publication_date, link, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.FacultyMembers, p.AuthorPosition, p.BookTitle, p.ChapterTitle,
		p.PublisherDetails, p.PublicationType, p.ISBN, p.PublicationDate, p.Link,
		p.SubmittedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert book chapter failed: %w", err)
	}
	return res.LastInsertId()
}

// ListBookChapters 按提交顺序列出全部专著章节记录
func (s *Store) ListBookChapters() ([]model.BookChapter, error) {
	rows, err := s.db.Query(`
		SELECT id, faculty_members, author_position, book_title, chapter_title,
			publisher_details, publication_type, isbn, publication_date, link, submitted_at
		FROM book_chapters ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query book chapters failed: %w", err)
	}
	defer rows.Close()

	var out []model.BookChapter
	for rows.Next() {
		var it model.BookChapter
		var submittedAt string
		if err := rows.Scan(&it.ID, &it.FacultyMembers, &it.AuthorPosition,
			&it.BookTitle, &it.ChapterTitle, &it.PublisherDetails, &it.PublicationType,
			&it.ISBN, &it.PublicationDate, &it.Link, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan book chapter failed: %w", err)
		}
		it.SubmittedAt, _ = time.Parse(time.RFC3339, submittedAt)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book chapters failed: %w", err)
	}
	return out, nil
}
