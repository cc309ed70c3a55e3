// Package contenttest builds in-memory WordPress-shaped databases for tests.
package contenttest

import (
	"testing"

	"content-validator/feature/content"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Prefix is the table prefix used by fixture sites.
const Prefix = "wp_"

// Pair is one meta entry.
type Pair struct {
	Key   string
	Value string
}

// Site is an in-memory content database.
type Site struct {
	t  testing.TB
	DB *gorm.DB
}

// NewSite opens an empty in-memory site with every content table created.
func NewSite(t testing.TB) *Site {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	tables := map[string]any{
		"posts":              &content.PostRow{},
		"postmeta":           &content.PostMetaRow{},
		"terms":              &content.TermRow{},
		"term_taxonomy":      &content.TermTaxonomyRow{},
		"term_relationships": &content.TermRelationshipRow{},
		"termmeta":           &content.TermMetaRow{},
		"users":              &content.UserRow{},
		"usermeta":           &content.UserMetaRow{},
	}
	for name, model := range tables {
		if err := db.Table(Prefix + name).AutoMigrate(model); err != nil {
			t.Fatalf("Failed to migrate %s: %v", name, err)
		}
	}
	return &Site{t: t, DB: db}
}

func (s *Site) create(table string, value any) {
	s.t.Helper()
	if err := s.DB.Table(Prefix + table).Create(value).Error; err != nil {
		s.t.Fatalf("Failed to insert into %s: %v", table, err)
	}
}

// AddPost inserts a post and its meta in order.
func (s *Site) AddPost(row content.PostRow, meta ...Pair) *Site {
	s.create("posts", &row)
	for _, m := range meta {
		s.create("postmeta", &content.PostMetaRow{PostID: row.ID, MetaKey: m.Key, MetaValue: m.Value})
	}
	return s
}

// AddTerm inserts a term, its taxonomy row and meta.
func (s *Site) AddTerm(term content.TermRow, tax content.TermTaxonomyRow, meta ...Pair) *Site {
	s.create("terms", &term)
	tax.TermID = term.TermID
	s.create("term_taxonomy", &tax)
	for _, m := range meta {
		s.create("termmeta", &content.TermMetaRow{TermID: term.TermID, MetaKey: m.Key, MetaValue: m.Value})
	}
	return s
}

// ShareTerm attaches an existing term to another taxonomy.
func (s *Site) ShareTerm(termID int64, tax content.TermTaxonomyRow) *Site {
	tax.TermID = termID
	s.create("term_taxonomy", &tax)
	return s
}

// Assign links a post to a term taxonomy row.
func (s *Site) Assign(postID, termTaxonomyID int64) *Site {
	s.create("term_relationships", &content.TermRelationshipRow{ObjectID: postID, TermTaxonomyID: termTaxonomyID})
	return s
}

// AddUser inserts a user and its meta.
func (s *Site) AddUser(row content.UserRow, meta ...Pair) *Site {
	s.create("users", &row)
	for _, m := range meta {
		s.create("usermeta", &content.UserMetaRow{UserID: row.ID, MetaKey: m.Key, MetaValue: m.Value})
	}
	return s
}

// Seed fills the site with a small blog: three listed posts plus a
// revision and an auto draft, two terms and two users.
func Seed(s *Site) *Site {
	return s.
		AddPost(content.PostRow{ID: 1, PostTitle: "Hello", PostName: "hello", PostType: "post", PostStatus: "publish", PostDate: "2024-01-01 10:00:00", PostContent: "Welcome"},
			Pair{"_thumbnail_id", "5"}, Pair{"_edit_lock", "1700000000:1"}, Pair{"tags", "a"}, Pair{"tags", "b"}).
		AddPost(content.PostRow{ID: 2, PostTitle: "About", PostName: "about", PostType: "page", PostStatus: "publish", PostDate: "2024-01-02 10:00:00"}).
		AddPost(content.PostRow{ID: 3, PostTitle: "Hello", PostName: "1-revision-v1", PostType: "revision", PostStatus: "inherit", PostDate: "2024-01-03 10:00:00"}).
		AddPost(content.PostRow{ID: 4, PostTitle: "Soon", PostName: "soon", PostType: "post", PostStatus: "draft", PostDate: "2024-01-04 10:00:00"}).
		AddPost(content.PostRow{ID: 5, PostTitle: "Auto Draft", PostType: "post", PostStatus: "auto-draft", PostDate: "2024-01-05 10:00:00"}).
		AddTerm(content.TermRow{TermID: 10, Name: "News", Slug: "news"},
			content.TermTaxonomyRow{TermTaxonomyID: 100, Taxonomy: "category", Count: 1},
			Pair{"color", "red"}).
		AddTerm(content.TermRow{TermID: 11, Name: "Go", Slug: "go"},
			content.TermTaxonomyRow{TermTaxonomyID: 101, Taxonomy: "post_tag", Description: "Gophers", Count: 1}).
		Assign(1, 100).
		Assign(1, 101).
		AddUser(content.UserRow{ID: 1, UserLogin: "admin", UserEmail: "admin@example.com", UserNicename: "admin", DisplayName: "Admin", UserRegistered: "2023-12-31 00:00:00"},
			Pair{"nickname", "admin"}, Pair{"session_tokens", "secret"}).
		AddUser(content.UserRow{ID: 2, UserLogin: "editor", UserEmail: "editor@example.com", UserNicename: "editor", DisplayName: "Editor", UserRegistered: "2024-01-01 00:00:00"})
}
