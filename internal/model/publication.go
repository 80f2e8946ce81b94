package model

import "time"

// FacultyDetail 教师基本信息登记
type FacultyDetail struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// ResearchPaper 期刊论文提交记录
type ResearchPaper struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Authors        string    `json:"authors"`
	AuthorPosition string    `json:"author_position"`
	JournalName    string    `json:"journal_name"`
	Year           string    `json:"year"`
	Volume         string    `json:"volume"`
	Pages          string    `json:"pages"`
	ISBNISSN       string    `json:"isbn_issn"`
	UGCApproved    string    `json:"ugc_approved"`
	JournalType    string    `json:"journal_type"`
	ImpactFactor   string    `json:"impact_factor"`
	Indexing       string    `json:"indexing"`
	Reviewed       string    `json:"reviewed"`
	Link           string    `json:"link"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// ConferencePaper 会议论文提交记录
type ConferencePaper struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Authors            string    `json:"authors"`
	AuthorPosition     string    `json:"author_position"`
	ConferenceName     string    `json:"conference_name"`
	ConferenceDate     string    `json:"conference_date"`
	Venue              string    `json:"venue"`
	ProceedingsTitle   string    `json:"proceedings_title"`
	PublicationDetails string    `json:"publication_details"`
	Indexing           string    `json:"indexing"`
	Link               string    `json:"link"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

// BookPublication 专著出版记录
type BookPublication struct {
	ID               int64     `json:"id"`
	FacultyMembers   string    `json:"faculty_members"`
	AuthorPosition   string    `json:"author_position"`
	BookTitle        string    `json:"book_title"`
	PublisherDetails string    `json:"publisher_details"`
	PublicationType  string    `json:"publication_type"`
	ISBN             string    `json:"isbn"`
	PublicationDate  string    `json:"publication_date"`
	Link             string    `json:"link"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

// BookChapter 专著章节记录
type BookChapter struct {
	ID               int64     `json:"id"`
	FacultyMembers   string    `json:"faculty_members"`
	AuthorPosition   string    `json:"author_position"`
	BookTitle        string    `json:"book_title"`
	ChapterTitle     string    `json:"chapter_title"`
	PublisherDetails string    `json:"publisher_details"`
	PublicationType  string    `json:"publication_type"`
	ISBN             string    `json:"isbn"`
	PublicationDate  string    `json:"publication_date"`
	Link             string    `json:"link"`
	SubmittedAt      time.Time `json:"submitted_at"`
}
