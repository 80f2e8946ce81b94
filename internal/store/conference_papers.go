package store

import (
	"fmt"
	"time"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// InsertConferencePaper 追加一条会议论文记录
func (s *Store) InsertConferencePaper(p *model.ConferencePaper) (int64, error) {
	if p.SubmittedAt.IsZero() {
		p.SubmittedAt = time.Now()
	}
	res, err := s.db.Exec(`
		INSERT INTO conference_papers (
			title, authors, author_position, conference_name, conference_date,
			venue, proceedings_title, publication_details, indexing, link, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Title, p.Authors, p.AuthorPosition, p.ConferenceName, p.ConferenceDate,
		p.Venue, p.ProceedingsTitle, p.PublicationDetails, p.Indexing, p.Link,
		p.SubmittedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert conference paper failed: %w", err)
	}
	return res.LastInsertId()
}

// ListConferencePapers 按提交顺序列出全部会议论文
func (s *Store) ListConferencePapers() ([]model.ConferencePaper, error) {
	rows, err := s.db.Query(`
		SELECT id, title, authors, author_position, conference_name, conference_date,
			venue, proceedings_title, publication_details, indexing, link, submitted_at
		FROM conference_papers ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query conference papers failed: %w", err)
	}
	defer rows.Close()

	var out []model.ConferencePaper
	for rows.Next() {
		var it model.ConferencePaper
		var submittedAt string
		if err := rows.Scan(&it.ID, &it.Title, &it.Authors, &it.AuthorPosition,
			&it.ConferenceName, &it.ConferenceDate, &it.Venue, &it.ProceedingsTitle,
			&it.PublicationDetails, &it.Indexing, &it.Link, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan conference paper failed: %w", err)
		}
		it.SubmittedAt, _ = time.Parse(time.RFC3339, submittedAt)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conference papers failed: %w", err)
	}
	return out, nil
}
