package store

import (
	"fmt"
	"time"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// InsertResearchPaper 追加一条期刊论文记录
func (s *Store) InsertResearchPaper(p *model.ResearchPaper) (int64, error) {
	if p.SubmittedAt.IsZero() {
		p.SubmittedAt = time.Now()
	}
	res, err := s.db.Exec(`
		INSERT INTO research_papers (
			title, authors, author_position, journal_name, year, volume, pages,
			isbn_issn, ugc_approved, journal_type, impact_factor, indexing,
			reviewed, link, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Title, p.Authors, p.AuthorPosition, p.JournalName, p.Year, p.Volume, p.Pages,
		p.ISBNISSN, p.UGCApproved, p.JournalType, p.ImpactFactor, p.Indexing,
		p.Reviewed, p.Link, p.SubmittedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert research paper failed: %w", err)
	}
	return res.LastInsertId()
}

// ListResearchPapers 按提交顺序列出全部期刊论文
func (s *Store) ListResearchPapers() ([]model.ResearchPaper, error) {
	rows, err := s.db.Query(`
		SELECT id, title, authors, author_position, journal_name, year, volume, pages,
			isbn_issn, ugc_approved, journal_type, impact_factor, indexing,
			reviewed, link, submitted_at
		FROM research_papers ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query research papers failed: %w", err)
	}
	defer rows.Close()

	var out []model.ResearchPaper
	for rows.Next() {
		var it model.ResearchPaper
		var submittedAt string
		if err := rows.Scan(&it.ID, &it.Title, &it.Authors, &it.AuthorPosition,
			&it.JournalName, &it.Year, &it.Volume, &it.Pages, &it.ISBNISSN,
			&it.UGCApproved, &it.JournalType, &it.ImpactFactor, &it.Indexing,
			&it.Reviewed, &it.Link, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan research paper failed: %w", err)
		}
		it.SubmittedAt, _ = time.Parse(time.RFC3339, submittedAt)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate research papers failed: %w", err)
	}
	return out, nil
}
