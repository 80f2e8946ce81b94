package store

import (
	"fmt"
	"time"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// InsertBookPublication 追加一条专著出版记录
func (s *Store) InsertBookPublication(p *model.BookPublication) (int64, error) {
	if p.SubmittedAt.IsZero() {
		p.SubmittedAt = time.Now()
	}
	res, err := s.db.Exec(`
		INSERT INTO book_publications (
			faculty_members, author_position, book_title, publisher_details,
			publication_type, isbn, publication_date, link, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.FacultyMembers, p.AuthorPosition, p.BookTitle, p.PublisherDetails,
		p.PublicationType, p.ISBN, p.PublicationDate, p.Link,
		p.SubmittedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert book publication failed: %w", err)
	}
	return res.LastInsertId()
}

// ListBookPublications 按提交顺序列出全部专著出版记录
func (s *Store) ListBookPublications() ([]model.BookPublication, error) {
	rows, err := s.db.Query(`
		SELECT id, faculty_members, author_position, book_title, publisher_details,
			publication_type, isbn, publication_date, link, submitted_at
		FROM book_publications ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query book publications failed: %w", err)
	}
	defer rows.Close()

	var out []model.BookPublication
	for rows.Next() {
		var it model.BookPublication
		var submittedAt string
		if err := rows.Scan(&it.ID, &it.FacultyMembers, &it.AuthorPosition,
			&it.BookTitle, &it.PublisherDetails, &it.PublicationType, &it.ISBN,
			&it.PublicationDate, &it.Link, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan book publication failed: %w", err)
		}
		it.SubmittedAt, _ = time.Parse(time.RFC3339, submittedAt)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book publications failed: %w", err)
	}
	return out, nil
}
